// Package output renders analysis results for the CLI.
package output

import (
	"fmt"
	"io"

	"github.com/straygizmo/gocefrizer/internal/analyze"
	"github.com/straygizmo/gocefrizer/internal/rank"
)

// Formatter renders command results in one output format.
type Formatter interface {
	Analysis(w io.Writer, result map[string]string) error
	Detailed(w io.Writer, d *analyze.Detailed) error
	Words(w io.Writer, words map[string]string) error
	Rows(w io.Writer, rows []rank.Row) error
}

// New returns the formatter for a user-selected format name.
func New(format string) (Formatter, error) {
	switch format {
	case "", "text":
		return &TextFormatter{}, nil
	case "json":
		return &JSONFormatter{}, nil
	default:
		return nil, fmt.Errorf("unknown format %q (supported: text, json)", format)
	}
}
