// Command cefrizerd serves the CEFR-J difficulty estimator as a JSON
// REST API.
package main

import (
	"fmt"
	"log/slog"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/straygizmo/gocefrizer/internal/analyze"
	"github.com/straygizmo/gocefrizer/internal/config"
	vlog "github.com/straygizmo/gocefrizer/internal/log"
	"github.com/straygizmo/gocefrizer/internal/logging"
	"github.com/straygizmo/gocefrizer/internal/nlp"
	"github.com/straygizmo/gocefrizer/internal/resources"
	"github.com/straygizmo/gocefrizer/internal/server"
)

func main() {
	os.Exit(run())
}

func run() int {
	fs := flag.NewFlagSet("cefrizerd", flag.ContinueOnError)
	var (
		configPath string
		dataDir    string
		addr       string
		logFormat  string
		verbose    bool
	)
	fs.StringVarP(&configPath, "config", "c", "", "Override config file path")
	fs.StringVar(&dataDir, "data-dir", "", "Override lexical resource directory")
	fs.StringVar(&addr, "addr", "", "Listen address (overrides config)")
	fs.StringVar(&logFormat, "log-format", "text", "Log format: text, json")
	fs.BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: cefrizerd [flags]\n\n"+
			"Serve the CEFR-J difficulty estimator over HTTP.\n\nFlags:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(os.Args[1:]); err != nil {
		return 2
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logging.Init(level, logFormat)
	log := logging.New("cefrizerd")

	cfg, err := config.Resolve(configPath, ".")
	if err != nil {
		log.Error("loading config", "error", err)
		return 1
	}
	if dataDir != "" {
		cfg.DataDir = dataDir
	}
	if addr != "" {
		cfg.Server.Addr = addr
	}

	pipelineLog := &vlog.Logger{Enabled: verbose, W: os.Stderr}

	var store *resources.Store
	if cfg.DataDir != "" {
		store, err = resources.Load(cfg.DataDir, pipelineLog)
	} else {
		store, err = resources.NewEmbedded(pipelineLog)
	}
	if err != nil {
		log.Error("loading lexical resources", "error", err)
		return 1
	}
	store.SetDefaultRank(cfg.DefaultRank)

	ann, err := nlp.NewEnglish(pipelineLog)
	if err != nil {
		log.Error("loading annotation pipeline", "error", err)
		return 1
	}

	a := analyze.New(ann, store, pipelineLog)
	a.MinWords = cfg.MinWords
	a.MaxWords = cfg.MaxWords

	srv := server.New(a, cfg.Server, pipelineLog)
	log.Info("starting", "addr", cfg.Server.Addr, "dictionary_words", store.Len())
	if err := srv.ListenAndServe(); err != nil {
		log.Error("server stopped", "error", err)
		return 1
	}
	return 0
}
