// Package discovery expands glob patterns into the corpus files to
// analyze.
package discovery

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/gobwas/glob"

	"github.com/straygizmo/gocefrizer/internal/config"
)

// Options controls how corpus discovery behaves.
type Options struct {
	// Patterns is the list of glob patterns to match files against.
	// An empty list discovers nothing.
	Patterns []string

	// BaseDir is the directory to walk from. Defaults to "." if empty.
	BaseDir string

	// Ignore holds compiled config ignore patterns. Matching files and
	// directories are skipped.
	Ignore []glob.Glob
}

// Discover walks BaseDir and returns files matching any pattern,
// relative to BaseDir with '/' separators. Results are deduplicated
// and sorted.
func Discover(opts Options) ([]string, error) {
	if len(opts.Patterns) == 0 {
		return nil, nil
	}

	baseDir := opts.BaseDir
	if baseDir == "" {
		baseDir = "."
	}
	absBase, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, err
	}

	patterns := validPatterns(opts.Patterns)
	if len(patterns) == 0 {
		return nil, nil
	}

	w := &walker{
		absBase:  absBase,
		patterns: patterns,
		ignore:   opts.Ignore,
		seen:     make(map[string]bool),
	}
	if err := filepath.Walk(absBase, w.visit); err != nil {
		return nil, err
	}

	sort.Strings(w.result)
	return w.result, nil
}

func validPatterns(patterns []string) []string {
	valid := make([]string, 0, len(patterns))
	for _, p := range patterns {
		if doublestar.ValidatePattern(p) {
			valid = append(valid, p)
		}
	}
	return valid
}

type walker struct {
	absBase  string
	patterns []string
	ignore   []glob.Glob
	seen     map[string]bool
	result   []string
}

func (w *walker) visit(path string, info os.FileInfo, walkErr error) error {
	if walkErr != nil {
		return walkErr
	}

	rel, err := filepath.Rel(w.absBase, path)
	if err != nil || rel == "." {
		return nil
	}
	rel = filepath.ToSlash(rel)

	if config.Ignored(w.ignore, rel) {
		if info.IsDir() {
			return filepath.SkipDir
		}
		return nil
	}
	if info.IsDir() {
		return nil
	}

	if w.matchesAny(rel) {
		w.add(rel)
	}
	return nil
}

func (w *walker) matchesAny(rel string) bool {
	for _, p := range w.patterns {
		matched, err := doublestar.Match(p, rel)
		if err == nil && matched {
			return true
		}
	}
	return false
}

func (w *walker) add(rel string) {
	if !w.seen[rel] {
		w.seen[rel] = true
		w.result = append(w.result, rel)
	}
}
