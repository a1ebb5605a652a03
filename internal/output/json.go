package output

import (
	"encoding/json"
	"io"

	"github.com/straygizmo/gocefrizer/internal/analyze"
	"github.com/straygizmo/gocefrizer/internal/rank"
)

// JSONFormatter renders results as pretty-printed JSON.
type JSONFormatter struct{}

func (f *JSONFormatter) encode(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Analysis writes the level and per-metric scores as a JSON object.
func (f *JSONFormatter) Analysis(w io.Writer, result map[string]string) error {
	return f.encode(w, result)
}

// Detailed writes the full breakdown as a JSON object.
func (f *JSONFormatter) Detailed(w io.Writer, d *analyze.Detailed) error {
	return f.encode(w, d)
}

// Words writes a word-to-POS map as a JSON object.
func (f *JSONFormatter) Words(w io.Writer, words map[string]string) error {
	if words == nil {
		words = map[string]string{}
	}
	return f.encode(w, words)
}

// Rows writes corpus ranking rows as a JSON array.
func (f *JSONFormatter) Rows(w io.Writer, rows []rank.Row) error {
	if rows == nil {
		rows = []rank.Row{}
	}
	return f.encode(w, rows)
}
