// Command cefrizer-mcp serves the CEFR-J difficulty estimator as MCP
// tools over stdio.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	flag "github.com/spf13/pflag"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/straygizmo/gocefrizer/internal/analyze"
	"github.com/straygizmo/gocefrizer/internal/config"
	vlog "github.com/straygizmo/gocefrizer/internal/log"
	"github.com/straygizmo/gocefrizer/internal/logging"
	"github.com/straygizmo/gocefrizer/internal/mcp"
	"github.com/straygizmo/gocefrizer/internal/nlp"
	"github.com/straygizmo/gocefrizer/internal/resources"
)

func main() {
	os.Exit(run())
}

func run() int {
	fs := flag.NewFlagSet("cefrizer-mcp", flag.ContinueOnError)
	var (
		configPath string
		dataDir    string
		logFormat  string
		verbose    bool
	)
	fs.StringVarP(&configPath, "config", "c", "", "Override config file path")
	fs.StringVar(&dataDir, "data-dir", "", "Override lexical resource directory")
	fs.StringVar(&logFormat, "log-format", "text", "Log format: text, json")
	fs.BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: cefrizer-mcp [flags]\n\n"+
			"Serve CEFR-J estimation tools over MCP stdio.\n\nFlags:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(os.Args[1:]); err != nil {
		return 2
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	// Stdout carries the MCP protocol; all logging goes to stderr.
	logging.Init(level, logFormat, os.Stderr)
	log := logging.New("cefrizer-mcp")

	cfg, err := config.Resolve(configPath, ".")
	if err != nil {
		log.Error("loading config", "error", err)
		return 1
	}
	if dataDir != "" {
		cfg.DataDir = dataDir
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

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := mcp.NewServer(a, buildVersion())
	log.Info("starting MCP server over stdio")
	if err := srv.Run(ctx, &sdkmcp.StdioTransport{}); err != nil {
		log.Error("server stopped", "error", err)
		return 1
	}
	return 0
}

func buildVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "(devel)"
}
