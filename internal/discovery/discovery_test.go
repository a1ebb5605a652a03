package discovery

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/straygizmo/gocefrizer/internal/config"
)

func writeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		path := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte("The cat sat on the mat.\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestDiscover_MatchesAndSorts(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "b.txt", "a.txt", "docs/c.md", "docs/skip.json")

	got, err := Discover(Options{
		Patterns: []string{"**/*.txt", "**/*.md"},
		BaseDir:  dir,
	})
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	want := []string{"a.txt", "b.txt", "docs/c.md"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("files mismatch (-want +got):\n%s", diff)
	}
}

func TestDiscover_AppliesIgnorePatterns(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "keep.txt", "drafts/skip.txt")

	cfg := config.Defaults()
	cfg.Ignore = []string{"drafts/**"}
	matchers, err := cfg.IgnoreMatchers()
	if err != nil {
		t.Fatal(err)
	}

	got, err := Discover(Options{
		Patterns: []string{"**/*.txt"},
		BaseDir:  dir,
		Ignore:   matchers,
	})
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	want := []string{"keep.txt"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("files mismatch (-want +got):\n%s", diff)
	}
}

func TestDiscover_NoPatterns(t *testing.T) {
	got, err := Discover(Options{BaseDir: t.TempDir()})
	if err != nil || got != nil {
		t.Errorf("Discover = %v, %v; want nil, nil", got, err)
	}
}
