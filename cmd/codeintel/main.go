// Command codeintel is a thin demonstration binary over pkg/analyzer: it
// wires flags into a Configuration, runs a full project analysis, and
// writes the result as JSON to stdout (plus optional JSONL/Mermaid
// reports). It intentionally has no config-file loader, no watcher, and
// no LLM/markdown integration -- those are external collaborators this
// module exposes a library boundary for, not something this binary
// re-implements. Grounded on the teacher's main.go flag-parsing style
// (flag.StringVar/flag.IntVar for -path/-lang/-workers).
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/codelens-dev/codeintel-core/internal/logging"
	"github.com/codelens-dev/codeintel-core/internal/report"
	"github.com/codelens-dev/codeintel-core/pkg/analyzer"
	"github.com/codelens-dev/codeintel-core/pkg/codeintel"
)

func main() {
	var (
		path       string
		workers    int
		verbose    bool
		jsonlPath  string
		mermaidOut string
	)

	flag.StringVar(&path, "path", ".", "project root to analyze")
	flag.IntVar(&workers, "workers", runtime.NumCPU(), "number of files analyzed concurrently (1 disables concurrency)")
	flag.BoolVar(&verbose, "verbose", false, "log at debug level instead of warn")
	flag.StringVar(&jsonlPath, "jsonl", "", "if set, also write a line-delimited JSON report to this path")
	flag.StringVar(&mermaidOut, "mermaid", "", "if set, also write a Mermaid HTML dependency map to this path")
	flag.Parse()

	cfg := codeintel.Configuration{Concurrency: workers}

	// -verbose is an explicit override of Configuration.logLevel; only set
	// it when the flag was actually passed, so an unset flag lets
	// Configuration.logLevel/debugMode (config-file, e.g.) win instead of
	// silently pinning every run to warn.
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "verbose" {
			if verbose {
				cfg.LogLevel = codeintel.LogDebug
			} else {
				cfg.LogLevel = codeintel.LogWarn
			}
		}
	})

	merged := codeintel.DefaultConfiguration().Merge(cfg)
	logger := logging.New(os.Stderr, logging.Level(merged.LogLevel), "codeintel")

	a := analyzer.New(cfg, logger)

	result, err := a.AnalyzeProject(path, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "analysis failed: %v\n", err)
		os.Exit(1)
	}

	if jsonlPath != "" {
		count, err := report.ExportJSONL(jsonlPath, result)
		if err != nil {
			fmt.Fprintf(os.Stderr, "jsonl export failed: %v\n", err)
			os.Exit(1)
		}
		logger.Info("wrote jsonl report", "path", jsonlPath, "records", count)
	}

	if mermaidOut != "" {
		if err := report.ExportMermaidHTML(mermaidOut, result); err != nil {
			fmt.Fprintf(os.Stderr, "mermaid export failed: %v\n", err)
			os.Exit(1)
		}
		logger.Info("wrote mermaid report", "path", mermaidOut)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		fmt.Fprintf(os.Stderr, "failed to encode result: %v\n", err)
		os.Exit(1)
	}
}
