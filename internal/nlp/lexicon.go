package nlp

import (
	"crypto/sha256"
	_ "embed"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// Embedded lexicon artifact metadata used for checksum and loading validation.
const (
	embeddedLexiconPath   = "data/english-lexicon-v1.json"
	embeddedLexiconSHA256 = "d05586cdb06576a6466907a39f2943da2bf4d5c30210731445581dc0137b088a"
)

//go:embed data/english-lexicon-v1.json
var embeddedLexicon []byte

// lexicon holds the closed-class tag table, the irregular lemma table
// and the stopword list backing the English pipeline.
type lexicon struct {
	ModelID   string            `json:"model_id"`
	Version   string            `json:"version"`
	Tags      map[string]Tag    `json:"tags"`
	Lemmas    map[string]string `json:"lemmas"`
	Stopwords []string          `json:"stopwords"`

	stopSet map[string]struct{}
}

// loadLexicon loads and verifies the embedded lexicon artifact.
// A checksum or decode failure means the binary was built from a
// corrupted source tree; the error says how to recover.
func loadLexicon() (*lexicon, error) {
	sum := sha256.Sum256(embeddedLexicon)
	if got := hex.EncodeToString(sum[:]); got != embeddedLexiconSHA256 {
		return nil, fmt.Errorf(
			"nlp: embedded lexicon %s checksum mismatch (got %s, want %s); rebuild gocefrizer from a clean checkout",
			embeddedLexiconPath, got, embeddedLexiconSHA256,
		)
	}

	var lex lexicon
	if err := json.Unmarshal(embeddedLexicon, &lex); err != nil {
		return nil, fmt.Errorf("nlp: decode embedded lexicon: %w", err)
	}
	if lex.ModelID == "" || lex.Version == "" {
		return nil, fmt.Errorf("nlp: embedded lexicon missing model_id/version")
	}
	if len(lex.Tags) == 0 || len(lex.Stopwords) == 0 {
		return nil, fmt.Errorf("nlp: embedded lexicon is empty")
	}

	lex.stopSet = make(map[string]struct{}, len(lex.Stopwords))
	for _, w := range lex.Stopwords {
		lex.stopSet[w] = struct{}{}
	}
	return &lex, nil
}

func (l *lexicon) isStop(lower string) bool {
	_, ok := l.stopSet[lower]
	return ok
}
