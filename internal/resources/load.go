package resources

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	vlog "github.com/straygizmo/gocefrizer/internal/log"
)

// Resource file names inside a data directory.
const (
	WordLookupFile = "word_lookup.json"
	FrequencyFile  = "coca_frequencies.json"
)

// senseList accepts either a single sense object or an ordered array of
// senses for one dictionary word.
type senseList []Sense

func (sl *senseList) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var list []Sense
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return err
		}
		*sl = list
		return nil
	}

	var one Sense
	if err := json.Unmarshal(trimmed, &one); err != nil {
		return err
	}
	*sl = senseList{one}
	return nil
}

// Load builds a Store from word_lookup.json and coca_frequencies.json
// in dir. Missing or malformed files yield a *LoadError.
func Load(dir string, logger *vlog.Logger) (*Store, error) {
	wordPath := filepath.Join(dir, WordLookupFile)
	wordData, err := os.ReadFile(wordPath)
	if err != nil {
		return nil, &LoadError{Path: wordPath, Err: err}
	}
	words, err := parseWordLookup(wordData)
	if err != nil {
		return nil, &LoadError{Path: wordPath, Err: err}
	}

	rankPath := filepath.Join(dir, FrequencyFile)
	rankData, err := os.ReadFile(rankPath)
	if err != nil {
		return nil, &LoadError{Path: rankPath, Err: err}
	}
	ranks, err := parseFrequencies(rankData)
	if err != nil {
		return nil, &LoadError{Path: rankPath, Err: err}
	}

	return newStore(words, ranks, logger), nil
}

func parseWordLookup(data []byte) (map[string][]Sense, error) {
	if err := validateSchema(wordLookupSchema, data); err != nil {
		return nil, fmt.Errorf("word lookup schema: %w", err)
	}

	var raw map[string]senseList
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse word lookup: %w", err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("word lookup is empty")
	}

	words := make(map[string][]Sense, len(raw))
	for word, senses := range raw {
		words[word] = []Sense(senses)
	}
	return words, nil
}

func parseFrequencies(data []byte) (map[string]int, error) {
	if err := validateSchema(frequencySchema, data); err != nil {
		return nil, fmt.Errorf("frequency table schema: %w", err)
	}

	var ranks map[string]int
	if err := json.Unmarshal(data, &ranks); err != nil {
		return nil, fmt.Errorf("parse frequency table: %w", err)
	}
	if len(ranks) == 0 {
		return nil, fmt.Errorf("frequency table is empty")
	}
	return ranks, nil
}
