package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	flag "github.com/spf13/pflag"

	"github.com/straygizmo/gocefrizer/internal/analyze"
	"github.com/straygizmo/gocefrizer/internal/config"
	"github.com/straygizmo/gocefrizer/internal/discovery"
	vlog "github.com/straygizmo/gocefrizer/internal/log"
	"github.com/straygizmo/gocefrizer/internal/metrics"
	"github.com/straygizmo/gocefrizer/internal/nlp"
	"github.com/straygizmo/gocefrizer/internal/output"
	"github.com/straygizmo/gocefrizer/internal/rank"
	"github.com/straygizmo/gocefrizer/internal/resources"
	"github.com/straygizmo/gocefrizer/internal/textio"
)

// buildAnalyzer resolves config and assembles the analysis pipeline.
func buildAnalyzer(configPath, dataDir string, logger *vlog.Logger) (*analyze.Analyzer, *config.Config, error) {
	cfg, err := config.Resolve(configPath, ".")
	if err != nil {
		return nil, nil, err
	}
	if dataDir != "" {
		cfg.DataDir = dataDir
	}

	var store *resources.Store
	if cfg.DataDir != "" {
		store, err = resources.Load(cfg.DataDir, logger)
	} else {
		store, err = resources.NewEmbedded(logger)
	}
	if err != nil {
		return nil, nil, err
	}
	store.SetDefaultRank(cfg.DefaultRank)

	ann, err := nlp.NewEnglish(logger)
	if err != nil {
		return nil, nil, err
	}

	a := analyze.New(ann, store, logger)
	a.MinWords = cfg.MinWords
	a.MaxWords = cfg.MaxWords
	return a, cfg, nil
}

// readInput gathers the text to analyze: an explicit file wins, then
// positional arguments, then piped stdin.
func readInput(file string, args []string) (string, error) {
	if file != "" {
		return textio.FromFile(file)
	}
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	if !isStdinPipe() {
		return "", fmt.Errorf("no input: pass text as arguments, use --file, or pipe stdin")
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}

func isStdinPipe() bool {
	info, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice == 0
}

// runAnalyze implements the "analyze" subcommand.
func runAnalyze(args []string) int {
	fs := flag.NewFlagSet("analyze", flag.ContinueOnError)
	var (
		configPath string
		dataDir    string
		file       string
		format     string
		detailed   bool
		verbose    bool
	)
	fs.StringVarP(&configPath, "config", "c", "", "Override config file path")
	fs.StringVar(&dataDir, "data-dir", "", "Override lexical resource directory")
	fs.StringVarP(&file, "file", "f", "", "Read text from a .txt, .md or .html file")
	fs.StringVarP(&format, "format", "o", "text", "Output format: text, json")
	fs.BoolVarP(&detailed, "detailed", "d", false, "Include raw metrics and text statistics")
	fs.BoolVarP(&verbose, "verbose", "v", false, "Show pipeline diagnostics on stderr")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: gocefrizer analyze [flags] [text...]\n\n"+
			"Estimate the CEFR-J difficulty level of English text.\n"+
			"Text comes from arguments, --file, or piped stdin.\n"+
			"A single word is looked up in the dictionary instead.\n\n"+
			"Flags:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	formatter, err := output.New(format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "gocefrizer: %v\n", err)
		return 2
	}

	text, err := readInput(file, fs.Args())
	if err != nil {
		return fail(err)
	}

	a, _, err := buildAnalyzer(configPath, dataDir, newLogger(verbose))
	if err != nil {
		return fail(err)
	}

	if detailed {
		result, err := a.DetailedAnalyze(text)
		if err != nil {
			return fail(err)
		}
		if err := formatter.Detailed(os.Stdout, result); err != nil {
			return fail(err)
		}
		return 0
	}

	result, err := a.Analyze(text)
	if err != nil {
		return fail(err)
	}
	if err := formatter.Analysis(os.Stdout, result); err != nil {
		return fail(err)
	}
	return 0
}

// runWord implements the "word" subcommand.
func runWord(args []string) int {
	fs := flag.NewFlagSet("word", flag.ContinueOnError)
	var (
		configPath string
		dataDir    string
		format     string
		level      string
		verbose    bool
	)
	fs.StringVarP(&configPath, "config", "c", "", "Override config file path")
	fs.StringVar(&dataDir, "data-dir", "", "Override lexical resource directory")
	fs.StringVarP(&format, "format", "o", "text", "Output format: text, json")
	fs.StringVarP(&level, "level", "l", "", "Also report whether the word is at or below this CEFR level")
	fs.BoolVarP(&verbose, "verbose", "v", false, "Show pipeline diagnostics on stderr")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: gocefrizer word [flags] <word>\n\n"+
			"Look up the CEFR level of a single English word.\n"+
			"With --level, also check whether the word is at or below that level.\n\nFlags:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return 2
	}

	formatter, err := output.New(format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "gocefrizer: %v\n", err)
		return 2
	}

	a, _, err := buildAnalyzer(configPath, dataDir, newLogger(verbose))
	if err != nil {
		return fail(err)
	}

	result := a.WordLevel(fs.Arg(0))
	if level != "" {
		within, err := a.CheckWordLevel(fs.Arg(0), level)
		if err != nil {
			return fail(err)
		}
		result["Within_Level"] = strconv.FormatBool(within)
	}

	if err := formatter.Analysis(os.Stdout, result); err != nil {
		return fail(err)
	}
	return 0
}

// runUnused implements the "unused" subcommand.
func runUnused(args []string) int {
	fs := flag.NewFlagSet("unused", flag.ContinueOnError)
	var (
		configPath string
		dataDir    string
		file       string
		level      string
		format     string
		verbose    bool
	)
	fs.StringVarP(&configPath, "config", "c", "", "Override config file path")
	fs.StringVar(&dataDir, "data-dir", "", "Override lexical resource directory")
	fs.StringVarP(&file, "file", "f", "", "Read text from a .txt, .md or .html file")
	fs.StringVarP(&level, "level", "l", "", "CEFR level to check (A1, A2, B1, B2, C1, C2)")
	fs.StringVarP(&format, "format", "o", "text", "Output format: text, json")
	fs.BoolVarP(&verbose, "verbose", "v", false, "Show pipeline diagnostics on stderr")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: gocefrizer unused --level <level> [flags] [text...]\n\n"+
			"List dictionary words of a CEFR level that do not occur in the text.\n\nFlags:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if level == "" {
		fmt.Fprintf(os.Stderr, "gocefrizer: --level is required\n")
		return 2
	}

	formatter, err := output.New(format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "gocefrizer: %v\n", err)
		return 2
	}

	text, err := readInput(file, fs.Args())
	if err != nil {
		return fail(err)
	}

	a, _, err := buildAnalyzer(configPath, dataDir, newLogger(verbose))
	if err != nil {
		return fail(err)
	}

	words, err := a.UnusedWords(level, text)
	if err != nil {
		return fail(err)
	}
	if err := formatter.Words(os.Stdout, words); err != nil {
		return fail(err)
	}
	return 0
}

// runMetrics implements the "metrics" subcommand.
func runMetrics(args []string) int {
	fs := flag.NewFlagSet("metrics", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: gocefrizer metrics\n\n"+
			"List the linguistic metrics that feed the difficulty estimate.\n")
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() > 0 {
		fs.Usage()
		return 2
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, def := range metrics.All() {
		fmt.Fprintf(tw, "%s\t%s\n", def.Name, def.Description)
	}
	if err := tw.Flush(); err != nil {
		return fail(err)
	}
	return 0
}

// runRank implements the "rank" subcommand.
func runRank(args []string) int {
	fs := flag.NewFlagSet("rank", flag.ContinueOnError)
	var (
		configPath string
		dataDir    string
		baseDir    string
		format     string
		order      string
		top        int
		workers    int
		verbose    bool
	)
	fs.StringVarP(&configPath, "config", "c", "", "Override config file path")
	fs.StringVar(&dataDir, "data-dir", "", "Override lexical resource directory")
	fs.StringVar(&baseDir, "base-dir", ".", "Directory to discover corpus files from")
	fs.StringVarP(&format, "format", "o", "text", "Output format: text, json")
	fs.StringVar(&order, "order", "desc", "Sort order: desc (hardest first), asc")
	fs.IntVar(&top, "top", 0, "Show only the top N files (0 = all)")
	fs.IntVar(&workers, "workers", 4, "Concurrent analysis workers")
	fs.BoolVarP(&verbose, "verbose", "v", false, "Show pipeline diagnostics on stderr")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: gocefrizer rank [flags] <glob patterns...>\n\n"+
			"Analyze a corpus of text files and sort them by difficulty.\n"+
			"Patterns are doublestar globs relative to --base-dir, e.g. '**/*.txt'.\n\nFlags:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return 2
	}

	sortOrder, err := rank.ParseOrder(order)
	if err != nil {
		fmt.Fprintf(os.Stderr, "gocefrizer: %v\n", err)
		return 2
	}
	formatter, err := output.New(format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "gocefrizer: %v\n", err)
		return 2
	}

	a, cfg, err := buildAnalyzer(configPath, dataDir, newLogger(verbose))
	if err != nil {
		return fail(err)
	}
	matchers, err := cfg.IgnoreMatchers()
	if err != nil {
		return fail(err)
	}

	paths, err := discovery.Discover(discovery.Options{
		Patterns: fs.Args(),
		BaseDir:  baseDir,
		Ignore:   matchers,
	})
	if err != nil {
		return fail(err)
	}
	if len(paths) == 0 {
		fmt.Fprintf(os.Stderr, "gocefrizer: no files matched\n")
		return 1
	}

	rows, err := rank.Collect(context.Background(), a, baseDir, paths, workers)
	if err != nil {
		return fail(err)
	}
	rank.SortRows(rows, sortOrder)
	rows = rank.Limit(rows, top)

	if err := formatter.Rows(os.Stdout, rows); err != nil {
		return fail(err)
	}
	return 0
}
