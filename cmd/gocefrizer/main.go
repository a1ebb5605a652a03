// Command gocefrizer estimates the CEFR-J difficulty of English text.
package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"gopkg.in/yaml.v3"

	"github.com/straygizmo/gocefrizer/internal/config"
	vlog "github.com/straygizmo/gocefrizer/internal/log"
)

func main() {
	os.Exit(run())
}

const usageText = `Usage: gocefrizer <command> [flags] [args]

Commands:
  analyze   Estimate the CEFR-J level of text (args, --file or stdin)
  word      Look up the CEFR level of a single word
  unused    List dictionary words of a level missing from a text
  rank      Analyze a corpus of files and sort by difficulty
  metrics   List the linguistic metrics behind the estimate
  init      Generate a default .gocefrizer.yml config file
  version   Print version and exit
  help      Show this help

Run 'gocefrizer <command> --help' for more information on a command.
`

func run() int {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usageText)
		return 0
	}

	switch os.Args[1] {
	case "--help", "-h", "help":
		fmt.Fprint(os.Stderr, usageText)
		return 0
	case "analyze":
		return runAnalyze(os.Args[2:])
	case "word":
		return runWord(os.Args[2:])
	case "unused":
		return runUnused(os.Args[2:])
	case "rank":
		return runRank(os.Args[2:])
	case "metrics":
		return runMetrics(os.Args[2:])
	case "init":
		return runInit(os.Args[2:])
	case "version":
		printVersion()
		return 0
	default:
		fmt.Fprintf(os.Stderr, "gocefrizer: unknown command %q\n\n%s", os.Args[1], usageText)
		return 2
	}
}

func printVersion() {
	fmt.Printf("gocefrizer %s\n", buildVersion())
}

func buildVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "(devel)"
}

// runInit generates a default .gocefrizer.yml in the current directory.
func runInit(args []string) int {
	if len(args) > 0 {
		fmt.Fprintf(os.Stderr, "gocefrizer: init takes no arguments\n")
		return 2
	}

	const configFile = ".gocefrizer.yml"
	if _, err := os.Stat(configFile); err == nil {
		fmt.Fprintf(os.Stderr, "gocefrizer: %s already exists\n", configFile)
		return 2
	}

	data, err := yaml.Marshal(config.Defaults())
	if err != nil {
		fmt.Fprintf(os.Stderr, "gocefrizer: marshalling config: %v\n", err)
		return 2
	}
	if err := os.WriteFile(configFile, data, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "gocefrizer: writing %s: %v\n", configFile, err)
		return 2
	}

	fmt.Fprintf(os.Stderr, "gocefrizer: created %s\n", configFile)
	return 0
}

func newLogger(verbose bool) *vlog.Logger {
	return &vlog.Logger{Enabled: verbose, W: os.Stderr}
}

func fail(err error) int {
	fmt.Fprintf(os.Stderr, "gocefrizer: %v\n", err)
	return 1
}
