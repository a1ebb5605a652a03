package nlp

// Possessive pronouns act like determiners inside a noun phrase.
var possessives = map[string]struct{}{
	"my": {}, "your": {}, "his": {}, "her": {}, "its": {}, "our": {}, "their": {},
}

// chunkSentence finds base noun-phrase spans in one sentence.
// A chunk is a maximal run of DET/possessive/ADJ/NUM/NOUN/PROPN tokens
// containing at least one NOUN or PROPN; a non-possessive pronoun forms
// a chunk of its own (mirrors the noun_chunks contract of common NLP
// toolkits).
func chunkSentence(tokens []Token, offset int) []Span {
	var chunks []Span
	start := -1
	hasHead := false

	flush := func(end int) {
		if start >= 0 && hasHead {
			chunks = append(chunks, Span{Start: offset + start, End: offset + end})
		}
		start = -1
		hasHead = false
	}

	for i, tok := range tokens {
		_, poss := possessives[tok.Lower]

		switch {
		case tok.Tag == TagPron && !poss:
			flush(i)
			chunks = append(chunks, Span{Start: offset + i, End: offset + i + 1})
		case tok.Tag == TagNoun || tok.Tag == TagPropn:
			if start < 0 {
				start = i
			}
			hasHead = true
		case tok.Tag == TagDet || tok.Tag == TagAdj || tok.Tag == TagNum || poss:
			if start < 0 {
				start = i
			}
		default:
			flush(i)
		}
	}
	flush(len(tokens))

	return chunks
}
