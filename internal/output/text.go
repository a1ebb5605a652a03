package output

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/straygizmo/gocefrizer/internal/analyze"
	"github.com/straygizmo/gocefrizer/internal/metrics"
	"github.com/straygizmo/gocefrizer/internal/rank"
)

// TextFormatter renders results as aligned plain text.
type TextFormatter struct{}

// Analysis prints the level first, then metric scores in canonical
// metric order.
func (f *TextFormatter) Analysis(w io.Writer, result map[string]string) error {
	if level, ok := result["CEFR_Level"]; ok {
		// Single-word lookup result.
		if level == "" {
			level = "(not in dictionary)"
		}
		if _, err := fmt.Fprintf(w, "CEFR level: %s\n", level); err != nil {
			return err
		}
		if within, ok := result["Within_Level"]; ok {
			_, err := fmt.Fprintf(w, "Within level: %s\n", within)
			return err
		}
		return nil
	}

	if _, err := fmt.Fprintf(w, "CEFR-J level: %s\n", result["CEFR-J_Level"]); err != nil {
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, name := range metrics.Names() {
		key := name + "_CEFR"
		if score, ok := result[key]; ok {
			fmt.Fprintf(tw, "  %s\t%s\n", name, score)
		}
	}
	return tw.Flush()
}

// Detailed prints the full breakdown: level, final score, per-metric
// scores with raw values, and text statistics.
func (f *TextFormatter) Detailed(w io.Writer, d *analyze.Detailed) error {
	fmt.Fprintf(w, "CEFR-J level: %s\n", d.Level)
	fmt.Fprintf(w, "Final score:  %.2f\n", d.FinalScore)

	fmt.Fprintln(w, "Metrics:")
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "  name\tscore\traw\n")
	for _, name := range metrics.Names() {
		fmt.Fprintf(tw, "  %s\t%s\t%.4f\n", name, d.Scores[name+"_CEFR"], d.RawMetrics[name])
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "Statistics: %d words, %d sentences, %d tokens\n",
		d.Stats.WordCount, d.Stats.SentenceCount, d.Stats.TokenCount)
	return err
}

// Words prints a word-to-POS map sorted by word.
func (f *TextFormatter) Words(w io.Writer, words map[string]string) error {
	keys := make([]string, 0, len(words))
	for k := range words {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, k := range keys {
		fmt.Fprintf(tw, "%s\t%s\n", k, words[k])
	}
	return tw.Flush()
}

// Rows prints corpus ranking rows as an aligned table.
func (f *TextFormatter) Rows(w io.Writer, rows []rank.Row) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "path\tlevel\tscore\twords\n")
	for _, row := range rows {
		if row.Err != "" {
			fmt.Fprintf(tw, "%s\t-\t-\t%d\t(%s)\n", row.Path, row.Words, row.Err)
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\t%.2f\t%d\n", row.Path, row.Level, row.Score, row.Words)
	}
	return tw.Flush()
}
