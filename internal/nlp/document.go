// Package nlp defines the annotated-document contract consumed by the
// metric extractors, plus a self-contained English annotation pipeline.
package nlp

// Tag is a coarse part-of-speech tag (Universal Dependencies style).
type Tag string

// Coarse POS tags produced by the English pipeline.
const (
	TagAdj   Tag = "ADJ"
	TagAdp   Tag = "ADP"
	TagAdv   Tag = "ADV"
	TagAux   Tag = "AUX"
	TagCconj Tag = "CCONJ"
	TagDet   Tag = "DET"
	TagIntj  Tag = "INTJ"
	TagNoun  Tag = "NOUN"
	TagNum   Tag = "NUM"
	TagPart  Tag = "PART"
	TagPron  Tag = "PRON"
	TagPropn Tag = "PROPN"
	TagPunct Tag = "PUNCT"
	TagSconj Tag = "SCONJ"
	TagSym   Tag = "SYM"
	TagVerb  Tag = "VERB"
	TagX     Tag = "X"
)

// Token is a single annotated token.
type Token struct {
	Text  string // surface form
	Lower string // lowercased surface form
	Lemma string // base form, lowercased
	Tag   Tag
	Punct bool
	Stop  bool
}

// Span is a half-open token index range [Start, End).
type Span struct {
	Start int
	End   int
}

// Len returns the number of tokens covered by the span.
func (s Span) Len() int { return s.End - s.Start }

// Document is the annotated representation of one input text:
// an ordered token sequence with sentence and noun-chunk spans over it.
// It is immutable once produced by an Annotator.
type Document struct {
	Text      string
	Tokens    []Token
	Sentences []Span
	Chunks    []Span
}

// SentenceTokens returns the tokens covered by a sentence span.
func (d *Document) SentenceTokens(s Span) []Token {
	return d.Tokens[s.Start:s.End]
}

// ChunkTokens returns the tokens covered by a noun-chunk span.
func (d *Document) ChunkTokens(s Span) []Token {
	return d.Tokens[s.Start:s.End]
}

// Annotator turns raw text into an annotated Document.
// Implementations must be safe for concurrent use.
type Annotator interface {
	Annotate(text string) (*Document, error)
}
