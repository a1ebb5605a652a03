// Package resources holds the lexical resource store: the word-to-CEFR
// dictionary and the word-to-frequency-rank table, with memoized
// case-insensitive lookups.
package resources

import (
	"strings"
	"sync"

	"github.com/straygizmo/gocefrizer/internal/cefr"
	vlog "github.com/straygizmo/gocefrizer/internal/log"
)

// DefaultRank is returned for words absent from the frequency table.
const DefaultRank = 10000

// Sense is one dictionary reading of a word: its base form, coarse part
// of speech and CEFR level.
type Sense struct {
	Base  string     `json:"base_form"`
	POS   string     `json:"pos"`
	Level cefr.Level `json:"CEFR"`
}

// Store answers word-level, word-difficulty and frequency-rank queries.
// Lookups are memoized; the cache survives until ClearCache. Safe for
// concurrent use.
type Store struct {
	words       map[string][]Sense
	ranks       map[string]int
	defaultRank int
	log         *vlog.Logger

	mu     sync.RWMutex
	levels map[string]cefr.Level
	freqs  map[string]int
}

func newStore(words map[string][]Sense, ranks map[string]int, logger *vlog.Logger) *Store {
	s := &Store{
		words:       words,
		ranks:       ranks,
		defaultRank: DefaultRank,
		log:         logger.WithPrefix("resources"),
	}
	s.resetCaches()
	s.log.Printf("store ready: %d dictionary words, %d frequency ranks", len(words), len(ranks))
	return s
}

func (s *Store) resetCaches() {
	s.levels = make(map[string]cefr.Level)
	s.freqs = make(map[string]int)
}

// WordLevel returns the CEFR level of a word, case-insensitively. The
// first listed sense wins for words with several readings. The second
// return is false when the word is not in the dictionary.
func (s *Store) WordLevel(word string) (cefr.Level, bool) {
	key := strings.ToLower(strings.TrimSpace(word))

	s.mu.RLock()
	level, hit := s.levels[key]
	s.mu.RUnlock()
	if hit {
		return level, level != ""
	}

	if senses, ok := s.words[key]; ok && len(senses) > 0 {
		level = senses[0].Level
	}
	s.mu.Lock()
	s.levels[key] = level
	s.mu.Unlock()
	return level, level != ""
}

// WordDifficulty returns the numeric difficulty of a word (A1=1 up to
// C2=6), or 0 for words not in the dictionary.
func (s *Store) WordDifficulty(word string) float64 {
	level, ok := s.WordLevel(word)
	if !ok {
		return 0
	}
	return cefr.Difficulty(level)
}

// FrequencyRank returns the corpus frequency rank of a word,
// case-insensitively, or DefaultRank when the word is unranked.
func (s *Store) FrequencyRank(word string) int {
	key := strings.ToLower(strings.TrimSpace(word))

	s.mu.RLock()
	rank, hit := s.freqs[key]
	s.mu.RUnlock()
	if hit {
		return rank
	}

	rank, ok := s.ranks[key]
	if !ok {
		rank = s.defaultRank
	}
	s.mu.Lock()
	s.freqs[key] = rank
	s.mu.Unlock()
	return rank
}

// Senses returns all dictionary readings of a word, in listed order,
// or nil when absent.
func (s *Store) Senses(word string) []Sense {
	return s.words[strings.ToLower(strings.TrimSpace(word))]
}

// SensesAtLevel returns, keyed by dictionary word, the first sense of
// every word whose primary reading sits at the given level.
func (s *Store) SensesAtLevel(level cefr.Level) map[string]Sense {
	out := make(map[string]Sense)
	for word, senses := range s.words {
		if len(senses) > 0 && senses[0].Level == level {
			out[word] = senses[0]
		}
	}
	return out
}

// SetDefaultRank overrides the rank used for unranked words and drops
// memoized ranks. Non-positive values are ignored.
func (s *Store) SetDefaultRank(rank int) {
	if rank <= 0 {
		return
	}
	s.mu.Lock()
	s.defaultRank = rank
	s.freqs = make(map[string]int)
	s.mu.Unlock()
}

// Len reports the number of dictionary words.
func (s *Store) Len() int { return len(s.words) }

// ClearCache drops all memoized lookups.
func (s *Store) ClearCache() {
	s.mu.Lock()
	s.resetCaches()
	s.mu.Unlock()
	s.log.Printf("lookup caches cleared")
}
