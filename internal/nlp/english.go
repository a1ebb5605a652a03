package nlp

import (
	"fmt"
	"strings"

	vlog "github.com/straygizmo/gocefrizer/internal/log"
	"github.com/straygizmo/gocefrizer/internal/textio"
)

// English is the built-in English annotation pipeline: sentence
// splitting, tokenization, coarse POS tagging, lemmatization, stopword
// flagging and base noun-phrase chunking. It is stateless after
// construction and safe for concurrent use.
type English struct {
	lex *lexicon
	log *vlog.Logger
}

// NewEnglish constructs the English pipeline, verifying the embedded
// lexicon artifact. A nil logger disables diagnostics.
func NewEnglish(logger *vlog.Logger) (*English, error) {
	lex, err := loadLexicon()
	if err != nil {
		return nil, fmt.Errorf("loading english pipeline: %w", err)
	}
	e := &English{lex: lex, log: logger.WithPrefix("nlp")}
	e.log.Printf("lexicon %s/%s: %d tags, %d lemmas, %d stopwords",
		lex.ModelID, lex.Version, len(lex.Tags), len(lex.Lemmas), len(lex.Stopwords))
	return e, nil
}

// Annotate implements Annotator. Empty or whitespace-only input yields
// an empty document, not an error.
func (e *English) Annotate(text string) (*Document, error) {
	doc := &Document{Text: text}

	for _, sentence := range textio.SplitSentences(text) {
		raws := tokenize(sentence)
		if len(raws) == 0 {
			continue
		}
		tags := e.tagSentence(raws)

		start := len(doc.Tokens)
		for i, raw := range raws {
			lower := strings.ToLower(raw.text)
			tok := Token{
				Text:  raw.text,
				Lower: lower,
				Tag:   tags[i],
				Punct: raw.punct,
			}
			if raw.punct {
				tok.Lemma = lower
			} else {
				tok.Lemma = e.lemma(lower, tags[i])
				tok.Stop = e.lex.isStop(lower)
			}
			doc.Tokens = append(doc.Tokens, tok)
		}
		span := Span{Start: start, End: len(doc.Tokens)}
		doc.Sentences = append(doc.Sentences, span)
		doc.Chunks = append(doc.Chunks, chunkSentence(doc.Tokens[span.Start:span.End], span.Start)...)
	}

	e.log.Printf("annotated %d tokens, %d sentences, %d chunks",
		len(doc.Tokens), len(doc.Sentences), len(doc.Chunks))
	return doc, nil
}
