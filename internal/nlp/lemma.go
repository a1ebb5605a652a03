package nlp

import (
	"strings"

	"github.com/kljensen/snowball"
)

// lemma derives the base form of a word. Irregular forms come from the
// lexicon table; regular inflection is stripped by rule, with a snowball
// stem as the last resort for -ed/-ing forms (keep the surface form when
// stemming fails, as unknown lemmas only cost a dictionary miss).
func (e *English) lemma(lower string, tag Tag) string {
	if base, ok := e.lex.Lemmas[lower]; ok {
		return base
	}

	switch tag {
	case TagNoun, TagVerb, TagAdj, TagPropn:
	default:
		return lower
	}

	n := len(lower)

	if n > 4 && strings.HasSuffix(lower, "ies") {
		return lower[:n-3] + "y"
	}
	if n > 4 && strings.HasSuffix(lower, "ied") {
		return lower[:n-3] + "y"
	}

	if tag == TagVerb && n > 4 &&
		(strings.HasSuffix(lower, "ing") || strings.HasSuffix(lower, "ed")) {
		return stemFallback(lower)
	}

	for _, s := range []string{"ches", "shes", "sses", "xes", "zes", "oes"} {
		if n > len(s)+1 && strings.HasSuffix(lower, s) {
			return lower[:n-2]
		}
	}
	if n > 3 && strings.HasSuffix(lower, "s") &&
		!strings.HasSuffix(lower, "ss") &&
		!strings.HasSuffix(lower, "us") &&
		!strings.HasSuffix(lower, "is") {
		return lower[:n-1]
	}

	return lower
}

// stemFallback runs the snowball English stemmer, repairing its y→i
// normalization. Stems shorter than 3 runes are rejected.
func stemFallback(lower string) string {
	stem, err := snowball.Stem(lower, "english", true)
	if err != nil || len(stem) < 3 {
		return lower
	}
	if strings.HasSuffix(stem, "i") {
		stem = stem[:len(stem)-1] + "y"
	}
	return stem
}
