// Package rank scores a corpus of text files by estimated difficulty.
package rank

import (
	"context"
	"fmt"
	"math"
	"path/filepath"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/straygizmo/gocefrizer/internal/analyze"
	"github.com/straygizmo/gocefrizer/internal/textio"
)

// Row holds the analysis outcome for a single corpus file.
type Row struct {
	Path  string  `json:"path"`
	Level string  `json:"level,omitempty"`
	Score float64 `json:"score"`
	Words int     `json:"words"`
	Err   string  `json:"error,omitempty"`
}

// Order defines row sort order.
type Order string

const (
	// OrderAsc sorts from easiest to hardest.
	OrderAsc Order = "asc"
	// OrderDesc sorts from hardest to easiest.
	OrderDesc Order = "desc"
)

// ParseOrder parses a user-provided sort order.
func ParseOrder(raw string) (Order, error) {
	switch raw {
	case "", string(OrderDesc):
		return OrderDesc, nil
	case string(OrderAsc):
		return OrderAsc, nil
	default:
		return "", fmt.Errorf("unknown order %q (supported: asc, desc)", raw)
	}
}

// Collect analyzes every file with bounded concurrency. A file that
// fails to analyze yields a Row with Err set instead of aborting the
// batch. Paths are slash-separated and resolved against baseDir.
func Collect(ctx context.Context, a *analyze.Analyzer, baseDir string, paths []string, workers int) ([]Row, error) {
	if workers < 1 {
		workers = 4
	}

	rows := make([]Row, len(paths))
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			row := collectOne(a, filepath.Join(baseDir, filepath.FromSlash(path)))
			row.Path = path
			mu.Lock()
			rows[i] = row
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return rows, nil
}

func collectOne(a *analyze.Analyzer, path string) Row {
	text, err := textio.FromFile(path)
	if err != nil {
		return Row{Err: err.Error()}
	}

	detail, err := a.DetailedAnalyze(text)
	if err != nil {
		return Row{Words: textio.CountWords(text), Err: err.Error()}
	}

	return Row{
		Level: detail.Level,
		Score: detail.FinalScore,
		Words: detail.Stats.WordCount,
	}
}

// SortRows orders rows by score with a path tie-break. Rows with
// errors sort last regardless of order.
func SortRows(rows []Row, order Order) {
	sort.Slice(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if (a.Err == "") != (b.Err == "") {
			return a.Err == ""
		}
		if a.Err == "" && math.Abs(a.Score-b.Score) > 1e-9 {
			if order == OrderAsc {
				return a.Score < b.Score
			}
			return a.Score > b.Score
		}
		return a.Path < b.Path
	})
}

// Limit returns at most top rows (if top > 0).
func Limit(rows []Row, top int) []Row {
	if top <= 0 || top >= len(rows) {
		return rows
	}
	return rows[:top]
}
