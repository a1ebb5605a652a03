package metrics

import (
	"math"
	"sort"

	"github.com/straygizmo/gocefrizer/internal/cefr"
	"github.com/straygizmo/gocefrizer/internal/nlp"
	"github.com/straygizmo/gocefrizer/internal/readability"
	"github.com/straygizmo/gocefrizer/internal/resources"
)

// beVerbs are excluded from verb-variation counts.
var beVerbs = map[string]struct{}{
	"be": {}, "am": {}, "is": {}, "are": {},
	"was": {}, "were": {}, "been": {}, "being": {},
}

var contentTags = map[nlp.Tag]struct{}{
	nlp.TagNoun: {}, nlp.TagVerb: {}, nlp.TagAdj: {}, nlp.TagAdv: {},
}

// contentWords selects open-class, non-stopword tokens.
func contentWords(doc *nlp.Document) []nlp.Token {
	var out []nlp.Token
	for _, tok := range doc.Tokens {
		if tok.Punct || tok.Stop {
			continue
		}
		if _, ok := contentTags[tok.Tag]; ok {
			out = append(out, tok)
		}
	}
	return out
}

// lookupLevel resolves a token in the dictionary, surface form first,
// base form second.
func lookupLevel(store *resources.Store, tok nlp.Token) (cefr.Level, bool) {
	if level, ok := store.WordLevel(tok.Lower); ok {
		return level, true
	}
	return store.WordLevel(tok.Lemma)
}

// avrDiff averages the numeric difficulty of content words that appear
// in the dictionary. Unmatched words do not dilute the mean.
func avrDiff(in Input) (float64, error) {
	var sum float64
	var n int
	for _, tok := range contentWords(in.Doc) {
		if level, ok := lookupLevel(in.Store, tok); ok {
			sum += cefr.Difficulty(level)
			n++
		}
	}
	if n == 0 {
		return 0, nil
	}
	return sum / float64(n), nil
}

// bPerA divides the B1/B2 content-word count by the A1/A2 count.
func bPerA(in Input) (float64, error) {
	var a, b int
	for _, tok := range contentWords(in.Doc) {
		level, ok := lookupLevel(in.Store, tok)
		if !ok {
			continue
		}
		switch level {
		case cefr.A1, cefr.A2:
			a++
		case cefr.B1, cefr.B2:
			b++
		}
	}
	if a == 0 {
		return 0, nil
	}
	return float64(b) / float64(a), nil
}

// cvv1 is the corrected verb variation index: verb tokens over the
// square root of twice the verb lemma types. Forms of "be" are ignored.
func cvv1(in Input) (float64, error) {
	types := map[string]struct{}{}
	var tokens int
	for _, tok := range in.Doc.Tokens {
		if tok.Tag != nlp.TagVerb {
			continue
		}
		if _, isBe := beVerbs[tok.Lemma]; isBe {
			continue
		}
		tokens++
		types[tok.Lemma] = struct{}{}
	}
	if len(types) == 0 {
		return 0, nil
	}
	return float64(tokens) / math.Sqrt(2*float64(len(types))), nil
}

// avrFreqRank averages the frequency rank of non-punctuation tokens.
// With more than three tokens the three rarest (highest-ranked) are
// dropped so a few exotic words cannot dominate the mean.
func avrFreqRank(in Input) (float64, error) {
	var ranks []int
	for _, tok := range in.Doc.Tokens {
		if tok.Punct {
			continue
		}
		ranks = append(ranks, in.Store.FrequencyRank(tok.Lower))
	}
	if len(ranks) == 0 {
		return 0, nil
	}
	if len(ranks) > 3 {
		sort.Ints(ranks)
		ranks = ranks[:len(ranks)-3]
	}
	var sum int
	for _, r := range ranks {
		sum += r
	}
	return float64(sum) / float64(len(ranks)), nil
}

func ari(in Input) (float64, error) {
	return readability.ARI(in.Text), nil
}

// verbsPerSentence averages the VERB-tagged token count per sentence.
func verbsPerSentence(in Input) (float64, error) {
	if len(in.Doc.Sentences) == 0 {
		return 0, nil
	}
	var verbs int
	for _, tok := range in.Doc.Tokens {
		if tok.Tag == nlp.TagVerb {
			verbs++
		}
	}
	return float64(verbs) / float64(len(in.Doc.Sentences)), nil
}

// posTypes averages the number of distinct non-punctuation POS tags
// per sentence.
func posTypes(in Input) (float64, error) {
	if len(in.Doc.Sentences) == 0 {
		return 0, nil
	}
	var sum int
	for _, span := range in.Doc.Sentences {
		seen := map[nlp.Tag]struct{}{}
		for _, tok := range in.Doc.SentenceTokens(span) {
			if tok.Punct {
				continue
			}
			seen[tok.Tag] = struct{}{}
		}
		sum += len(seen)
	}
	return float64(sum) / float64(len(in.Doc.Sentences)), nil
}

// nounPhraseLength averages the non-punctuation token count of noun
// chunks. Chunks that hold only punctuation are skipped.
func nounPhraseLength(in Input) (float64, error) {
	var sum, chunks int
	for _, span := range in.Doc.Chunks {
		var n int
		for _, tok := range in.Doc.ChunkTokens(span) {
			if !tok.Punct {
				n++
			}
		}
		if n == 0 {
			continue
		}
		sum += n
		chunks++
	}
	if chunks == 0 {
		return 0, nil
	}
	return float64(sum) / float64(chunks), nil
}
