package nlp

import "strings"

var nounSuffixes = []string{
	"tion", "sion", "ment", "ness", "ity", "ance", "ence", "ship", "hood",
	"ism", "ist", "ology", "ure",
}

var adjSuffixes = []string{
	"ous", "ful", "ive", "able", "ible", "ical", "ic", "ish", "less",
	"ary", "ual", "ial",
}

var verbSuffixes = []string{"ize", "ise", "ify"}

// tagSentence assigns coarse POS tags to one sentence worth of raw tokens.
// Order matters: punctuation and numbers first, then the closed-class
// lexicon, then proper nouns, then suffix heuristics, defaulting to NOUN.
func (e *English) tagSentence(raws []rawToken) []Tag {
	tags := make([]Tag, len(raws))

	prevWord := func(i int) (string, Tag) {
		for j := i - 1; j >= 0; j-- {
			if !raws[j].punct {
				return strings.ToLower(raws[j].text), tags[j]
			}
		}
		return "", ""
	}

	for i, raw := range raws {
		if raw.punct {
			if strings.ContainsAny(raw.text, "$%€£+=<>") {
				tags[i] = TagSym
			} else {
				tags[i] = TagPunct
			}
			continue
		}

		lower := strings.ToLower(raw.text)

		if isNumeric(raw.text) {
			tags[i] = TagNum
			continue
		}

		if tag, ok := e.lex.Tags[lower]; ok {
			tags[i] = e.adjustLexTag(raws, tags, i, lower, tag)
			continue
		}

		if i > 0 && isCapitalized(raw.text) {
			tags[i] = TagPropn
			continue
		}

		tags[i] = e.tagBySuffix(lower, func() (string, Tag) { return prevWord(i) })
	}

	return tags
}

// adjustLexTag resolves the few context-dependent closed-class words.
func (e *English) adjustLexTag(raws []rawToken, tags []Tag, i int, lower string, tag Tag) Tag {
	if lower != "to" {
		return tag
	}
	// Infinitival "to" before a base verb is a particle, otherwise a
	// preposition.
	for j := i + 1; j < len(raws); j++ {
		if raws[j].punct {
			break
		}
		next := strings.ToLower(raws[j].text)
		if t, ok := e.lex.Tags[next]; ok && t == TagVerb {
			return TagPart
		}
		return TagAdp
	}
	return TagAdp
}

func (e *English) tagBySuffix(lower string, prev func() (string, Tag)) Tag {
	n := len(lower)

	if n > 4 && strings.HasSuffix(lower, "ly") {
		return TagAdv
	}

	if n > 4 && (strings.HasSuffix(lower, "ing") || strings.HasSuffix(lower, "ed")) {
		prevLower, prevTag := prev()
		switch {
		case prevTag == TagAux || prevTag == TagPart:
			return TagVerb
		case prevTag == TagDet || prevTag == TagAdj:
			// "the meeting", "the tired man"
			if strings.HasSuffix(lower, "ing") {
				return TagNoun
			}
			return TagAdj
		case prevLower == "":
			return TagVerb
		default:
			return TagVerb
		}
	}

	for _, s := range verbSuffixes {
		if n > len(s)+1 && strings.HasSuffix(lower, s) {
			return TagVerb
		}
	}
	for _, s := range nounSuffixes {
		if n > len(s)+1 && strings.HasSuffix(lower, s) {
			return TagNoun
		}
	}
	for _, s := range adjSuffixes {
		if n > len(s)+1 && strings.HasSuffix(lower, s) {
			return TagAdj
		}
	}

	if n > 3 && strings.HasSuffix(lower, "s") &&
		!strings.HasSuffix(lower, "ss") &&
		!strings.HasSuffix(lower, "us") &&
		!strings.HasSuffix(lower, "is") {
		prevLower, _ := prev()
		switch prevLower {
		case "he", "she", "it":
			return TagVerb
		}
		return TagNoun
	}

	return TagNoun
}
