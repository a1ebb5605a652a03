package analyze

import (
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/straygizmo/gocefrizer/internal/metrics"
	"github.com/straygizmo/gocefrizer/internal/nlp"
	"github.com/straygizmo/gocefrizer/internal/resources"
)

func newTestAnalyzer(t *testing.T) *Analyzer {
	t.Helper()
	ann, err := nlp.NewEnglish(nil)
	if err != nil {
		t.Fatalf("NewEnglish: %v", err)
	}
	store, err := resources.NewEmbedded(nil)
	if err != nil {
		t.Fatalf("NewEmbedded: %v", err)
	}
	return New(ann, store, nil)
}

func newScenarioAnalyzer(t *testing.T) *Analyzer {
	t.Helper()
	dir := t.TempDir()

	lookup := `{
		"the":   {"base_form": "the", "pos": "determiner", "CEFR": "A1"},
		"cat":   {"base_form": "cat", "pos": "noun", "CEFR": "A1"},
		"on":    {"base_form": "on", "pos": "preposition", "CEFR": "A1"},
		"mat":   {"base_form": "mat", "pos": "noun", "CEFR": "A1"},
		"dog":   {"base_form": "dog", "pos": "noun", "CEFR": "A1"},
		"house": {"base_form": "house", "pos": "noun", "CEFR": "A1"},
		"run":   {"base_form": "run", "pos": "verb", "CEFR": "A1"}
	}`
	freq := `{"the": 1, "cat": 3421, "on": 25, "mat": 8204}`
	if err := os.WriteFile(filepath.Join(dir, resources.WordLookupFile), []byte(lookup), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, resources.FrequencyFile), []byte(freq), 0o644); err != nil {
		t.Fatal(err)
	}

	store, err := resources.Load(dir, nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	ann, err := nlp.NewEnglish(nil)
	if err != nil {
		t.Fatalf("NewEnglish: %v", err)
	}
	return New(ann, store, nil)
}

func TestValidate_Bounds(t *testing.T) {
	a := newTestAnalyzer(t)

	nine := strings.TrimSpace(strings.Repeat("word ", 9))
	if err := a.Validate(nine); err == nil {
		t.Error("9 words should be rejected")
	}
	ten := strings.TrimSpace(strings.Repeat("word ", 10))
	if err := a.Validate(ten); err != nil {
		t.Errorf("10 words should pass: %v", err)
	}
	max := strings.TrimSpace(strings.Repeat("word ", 10000))
	if err := a.Validate(max); err != nil {
		t.Errorf("10000 words should pass: %v", err)
	}
	over := strings.TrimSpace(strings.Repeat("word ", 10001))
	if err := a.Validate(over); err == nil {
		t.Error("10001 words should be rejected")
	}

	var lerr *LengthError
	if err := a.Validate(""); !errors.As(err, &lerr) {
		t.Errorf("empty text error = %v, want *LengthError", err)
	}
}

func TestAnalyze_SingleWordBypass(t *testing.T) {
	a := newTestAnalyzer(t)

	got, err := a.Analyze("paradigm")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	want := map[string]string{"CEFR_Level": "C1"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("single-word result mismatch (-want +got):\n%s", diff)
	}

	got, err = a.Analyze("  zzgrobble  ")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if got["CEFR_Level"] != "" {
		t.Errorf("unknown word level = %q, want empty", got["CEFR_Level"])
	}
}

func TestAnalyze_FullText(t *testing.T) {
	a := newTestAnalyzer(t)

	text := "The cat sat on the mat. The dog ran in the park. " +
		"The children were playing near the river and the mountain."
	got, err := a.Analyze(text)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	if got["CEFR-J_Level"] == "" {
		t.Error("missing CEFR-J_Level")
	}
	twoDec := regexp.MustCompile(`^-?\d+\.\d\d$`)
	for _, name := range metrics.Names() {
		key := name + "_CEFR"
		v, ok := got[key]
		if !ok {
			t.Errorf("missing %s", key)
			continue
		}
		if !twoDec.MatchString(v) {
			t.Errorf("%s = %q, want two-decimal number", key, v)
		}
	}
	if len(got) != len(metrics.Names())+1 {
		t.Errorf("result has %d keys, want %d", len(got), len(metrics.Names())+1)
	}
}

func TestAnalyze_RejectsShortText(t *testing.T) {
	a := newTestAnalyzer(t)

	var lerr *LengthError
	_, err := a.Analyze("Too short to analyze.")
	if !errors.As(err, &lerr) {
		t.Fatalf("error = %v, want *LengthError", err)
	}
}

func TestDetailedAnalyze(t *testing.T) {
	a := newTestAnalyzer(t)

	text := "The cat sat on the mat. The dog ran in the park."
	got, err := a.DetailedAnalyze(text)
	if err != nil {
		t.Fatalf("DetailedAnalyze: %v", err)
	}

	if got.Level == "" {
		t.Error("missing level")
	}
	if len(got.Scores) != len(metrics.Names()) {
		t.Errorf("scores = %d, want %d", len(got.Scores), len(metrics.Names()))
	}
	if len(got.RawMetrics) != len(metrics.Names()) {
		t.Errorf("raw metrics = %d, want %d", len(got.RawMetrics), len(metrics.Names()))
	}
	if got.Stats.WordCount != 12 {
		t.Errorf("word count = %d, want 12", got.Stats.WordCount)
	}
	if got.Stats.SentenceCount != 2 {
		t.Errorf("sentence count = %d, want 2", got.Stats.SentenceCount)
	}
	if got.Stats.TokenCount != 14 {
		t.Errorf("token count = %d, want 14", got.Stats.TokenCount)
	}
}

func TestUnusedWords(t *testing.T) {
	a := newScenarioAnalyzer(t)

	got, err := a.UnusedWords("A1", "The cat sat on the mat.")
	if err != nil {
		t.Fatalf("UnusedWords: %v", err)
	}
	want := map[string]string{
		"dog":   "noun",
		"house": "noun",
		"run":   "verb",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unused words mismatch (-want +got):\n%s", diff)
	}
}

func TestUnusedWords_InvalidLevel(t *testing.T) {
	a := newScenarioAnalyzer(t)

	if _, err := a.UnusedWords("A7", "The cat sat on the mat."); err == nil {
		t.Fatal("expected error for invalid level")
	}
}

func TestWordLevel(t *testing.T) {
	a := newTestAnalyzer(t)

	got := a.WordLevel("cat")
	if got["CEFR_Level"] != "A1" {
		t.Errorf("WordLevel(cat) = %q, want A1", got["CEFR_Level"])
	}
}

func TestCheckWordLevel(t *testing.T) {
	a := newTestAnalyzer(t)

	cases := []struct {
		word   string
		target string
		want   bool
	}{
		{"paradigm", "B1", false},
		{"paradigm", "C1", true},
		{"paradigm", "C2", true},
		{"cat", "A1", true},
		{"cat", "B2", true},
		{"quixotry", "C2", false},
	}
	for _, tc := range cases {
		got, err := a.CheckWordLevel(tc.word, tc.target)
		if err != nil {
			t.Fatalf("CheckWordLevel(%q, %q): %v", tc.word, tc.target, err)
		}
		if got != tc.want {
			t.Errorf("CheckWordLevel(%q, %q) = %v, want %v", tc.word, tc.target, got, tc.want)
		}
	}
}

func TestCheckWordLevel_InvalidTarget(t *testing.T) {
	a := newTestAnalyzer(t)

	if _, err := a.CheckWordLevel("cat", "A7"); err == nil {
		t.Fatal("expected error for invalid target level")
	}
}
