// Package analyze orchestrates the full difficulty estimate: input
// validation, annotation, metric extraction, score mapping and level
// assignment.
package analyze

import (
	"fmt"
	"math"
	"strings"
	"unicode"

	"github.com/straygizmo/gocefrizer/internal/cefr"
	vlog "github.com/straygizmo/gocefrizer/internal/log"
	"github.com/straygizmo/gocefrizer/internal/mapping"
	"github.com/straygizmo/gocefrizer/internal/metrics"
	"github.com/straygizmo/gocefrizer/internal/nlp"
	"github.com/straygizmo/gocefrizer/internal/resources"
	"github.com/straygizmo/gocefrizer/internal/textio"
)

// Default text length bounds, in words, both inclusive.
const (
	MinWords = 10
	MaxWords = 10000
)

// LengthError reports input text outside the accepted word range.
type LengthError struct {
	Words int
	Min   int
	Max   int
}

func (e *LengthError) Error() string {
	if e.Words == 0 {
		return "input text is empty"
	}
	if e.Words < e.Min {
		return fmt.Sprintf("text contains %d words, need at least %d", e.Words, e.Min)
	}
	return fmt.Sprintf("text contains %d words, limit is %d", e.Words, e.Max)
}

// Analyzer estimates CEFR-J difficulty for English text.
type Analyzer struct {
	Annotator nlp.Annotator
	Store     *resources.Store
	MinWords  int
	MaxWords  int

	log *vlog.Logger
}

// New builds an Analyzer with the default word-count bounds.
func New(ann nlp.Annotator, store *resources.Store, logger *vlog.Logger) *Analyzer {
	return &Analyzer{
		Annotator: ann,
		Store:     store,
		MinWords:  MinWords,
		MaxWords:  MaxWords,
		log:       logger.WithPrefix("analyze"),
	}
}

// Validate checks the input word count against the analyzer's bounds.
func (a *Analyzer) Validate(text string) error {
	words := textio.CountWords(text)
	if words < a.MinWords || words > a.MaxWords {
		return &LengthError{Words: words, Min: a.MinWords, Max: a.MaxWords}
	}
	return nil
}

// Analyze estimates the CEFR-J level of text. The result maps
// "CEFR-J_Level" to the level label and "<Metric>_CEFR" to each
// two-decimal metric score. A single word bypasses the pipeline and
// returns a dictionary lookup instead.
func (a *Analyzer) Analyze(text string) (map[string]string, error) {
	if word, ok := singleWord(text); ok {
		a.log.Printf("single-word input, dictionary lookup for %q", word)
		return a.WordLevel(word), nil
	}

	run, err := a.run(text)
	if err != nil {
		return nil, err
	}

	out := map[string]string{"CEFR-J_Level": run.level}
	for name, score := range run.scores {
		out[name] = fmt.Sprintf("%.2f", score)
	}
	return out, nil
}

// Stats summarizes the analyzed text.
type Stats struct {
	WordCount     int `json:"word_count"`
	SentenceCount int `json:"sentence_count"`
	TokenCount    int `json:"token_count"`
}

// Detailed is the full analysis breakdown.
type Detailed struct {
	Level      string             `json:"CEFR-J_Level"`
	FinalScore float64            `json:"Final_Score"`
	Scores     map[string]string  `json:"CEFR_Scores"`
	RawMetrics map[string]float64 `json:"Raw_Metrics"`
	Stats      Stats              `json:"Text_Statistics"`
}

// DetailedAnalyze runs the full pipeline and returns per-metric scores,
// raw metric values rounded to four decimals and text statistics.
func (a *Analyzer) DetailedAnalyze(text string) (*Detailed, error) {
	run, err := a.run(text)
	if err != nil {
		return nil, err
	}

	scores := make(map[string]string, len(run.scores))
	for name, score := range run.scores {
		scores[name] = fmt.Sprintf("%.2f", score)
	}
	raw := make(map[string]float64, len(run.raw))
	for name, v := range run.raw {
		raw[name] = round4(v)
	}

	return &Detailed{
		Level:      run.level,
		FinalScore: round4(run.final),
		Scores:     scores,
		RawMetrics: raw,
		Stats: Stats{
			WordCount:     textio.CountWords(text),
			SentenceCount: len(run.doc.Sentences),
			TokenCount:    len(run.doc.Tokens),
		},
	}, nil
}

// WordLevel looks up one word in the dictionary. The value is empty
// when the word is unknown.
func (a *Analyzer) WordLevel(word string) map[string]string {
	level, _ := a.Store.WordLevel(word)
	return map[string]string{"CEFR_Level": string(level)}
}

// CheckWordLevel reports whether the word's dictionary level is at or
// below the target level. Unknown words report false. The target must
// be one of A1 through C2.
func (a *Analyzer) CheckWordLevel(word, target string) (bool, error) {
	tv, err := cefr.Parse(target)
	if err != nil {
		return false, err
	}
	level, ok := a.Store.WordLevel(word)
	if !ok {
		return false, nil
	}
	return cefr.Difficulty(level) <= cefr.Difficulty(tv), nil
}

// UnusedWords lists dictionary words of the given level whose base form
// does not occur in the text, keyed by base form with the part of
// speech as value. The level must be one of A1 through C2.
func (a *Analyzer) UnusedWords(level, text string) (map[string]string, error) {
	lv, err := cefr.Parse(level)
	if err != nil {
		return nil, err
	}

	doc, err := a.Annotator.Annotate(text)
	if err != nil {
		return nil, err
	}

	used := make(map[string]struct{}, 2*len(doc.Tokens))
	for _, tok := range doc.Tokens {
		if tok.Punct {
			continue
		}
		used[tok.Lower] = struct{}{}
		used[tok.Lemma] = struct{}{}
	}

	out := make(map[string]string)
	for _, sense := range a.Store.SensesAtLevel(lv) {
		if _, ok := used[strings.ToLower(sense.Base)]; !ok {
			out[sense.Base] = sense.POS
		}
	}
	return out, nil
}

type pipelineRun struct {
	doc    *nlp.Document
	raw    map[string]float64
	scores map[string]float64
	final  float64
	level  string
}

func (a *Analyzer) run(text string) (*pipelineRun, error) {
	if err := a.Validate(text); err != nil {
		return nil, err
	}

	doc, err := a.Annotator.Annotate(text)
	if err != nil {
		return nil, err
	}

	raw, err := metrics.ComputeAll(metrics.Input{Doc: doc, Text: text, Store: a.Store})
	if err != nil {
		return nil, err
	}

	scores, err := mapping.ScoreAll(raw)
	if err != nil {
		return nil, err
	}

	final := mapping.FinalScore(scores)
	level := mapping.LevelFor(final)
	a.log.Printf("final score %.3f, level %s", final, level)

	return &pipelineRun{doc: doc, raw: raw, scores: scores, final: final, level: level}, nil
}

// singleWord reports whether the trimmed input is exactly one word.
func singleWord(text string) (string, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", false
	}
	if strings.ContainsFunc(trimmed, unicode.IsSpace) {
		return "", false
	}
	return trimmed, true
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
