// Package orchestrator implements the Analyzer Orchestrator (component
// C8): full and incremental project analysis, wiring together the
// parser, unified-node adapters, metric calculators, structure
// analyzers, dependency graph builder, impact analyzer, and rule engine.
// Re-exported to callers as pkg/analyzer. Grounded on the teacher's
// FileProcessor (processor/processor.go) for the optional concurrent
// per-file path, and on its main.go for the sequential discover-then-
// process shape.
package orchestrator

import (
	"errors"
	"fmt"

	"github.com/codelens-dev/codeintel-core/internal/depgraph"
	"github.com/codelens-dev/codeintel-core/internal/fsource"
	"github.com/codelens-dev/codeintel-core/internal/globmatch"
	"github.com/codelens-dev/codeintel-core/internal/impact"
	"github.com/codelens-dev/codeintel-core/internal/langparse"
	"github.com/codelens-dev/codeintel-core/internal/logging"
	"github.com/codelens-dev/codeintel-core/internal/metrics"
	"github.com/codelens-dev/codeintel-core/internal/rules"
	"github.com/codelens-dev/codeintel-core/internal/structure"
	"github.com/codelens-dev/codeintel-core/internal/unify"
	"github.com/codelens-dev/codeintel-core/pkg/codeintel"
)

// Orchestrator runs full and incremental analysis over a project.
type Orchestrator struct {
	cfg    codeintel.Configuration
	logger logging.Logger
	engine *rules.Engine
}

// New builds an Orchestrator from cfg, deep-merged over
// codeintel.DefaultConfiguration, with logger as its injected
// collaborator (spec §6 -- a nil logger becomes logging.Nop()).
func New(cfg codeintel.Configuration, logger logging.Logger) *Orchestrator {
	merged := codeintel.DefaultConfiguration().Merge(cfg)
	if logger == nil {
		logger = logging.Nop()
	}
	return &Orchestrator{
		cfg:    merged,
		logger: logger,
		engine: rules.NewEngine(merged, logger),
	}
}

// AnalyzeProject runs a full analysis rooted at rootPath, per spec §4.8.
func (o *Orchestrator) AnalyzeProject(rootPath string, extraExcludes []string) (*codeintel.AnalysisResult, error) {
	excludes := append(append([]string{}, o.cfg.ExcludePaths...), extraExcludes...)

	paths, err := fsource.Discover(rootPath, func(rel string) bool {
		return globmatch.ShouldAnalyze(rel, o.cfg.AnalyzePaths, excludes)
	})
	if err != nil {
		return nil, fmt.Errorf("orchestrator: discover files under %s: %w", rootPath, err)
	}

	files, err := o.analyzeAll(paths)
	if err != nil {
		return nil, err
	}
	return o.assemble(files), nil
}

// analyzeAll analyzes every path in paths, skipping (and logging) any
// single file that fails with a recoverable error, per spec §4.8 step 2 /
// §7. An unsupported-language failure is not recoverable -- the error
// propagates to the caller instead of being skipped (the sequential loop
// stops at that file; the worker pool finishes its remaining jobs
// first). Dispatches to a bounded worker pool when cfg.Concurrency > 1,
// otherwise runs sequentially; either way results come back in paths'
// order.
func (o *Orchestrator) analyzeAll(paths []string) ([]*codeintel.FileAnalysisResult, error) {
	results := make([]*codeintel.FileAnalysisResult, len(paths))

	var err error
	if o.cfg.Concurrency > 1 {
		err = o.analyzeConcurrently(paths, results)
	} else {
		for i, p := range paths {
			var r *codeintel.FileAnalysisResult
			r, err = o.analyzeFileLogged(p)
			if err != nil {
				break
			}
			results[i] = r
		}
	}
	if err != nil {
		return nil, err
	}

	out := make([]*codeintel.FileAnalysisResult, 0, len(paths))
	for _, r := range results {
		if r != nil {
			out = append(out, r)
		}
	}
	return out, nil
}

// analyzeFileLogged runs AnalyzeFile against path. A recoverable error
// (I/O, parse failure) is logged and reported as a nil result so the
// caller skips the file and continues; an *langparse.ErrUnsupportedLanguage
// is not recoverable per spec §7 ("unsupported language -- immediate
// failure from the parser") and is returned instead, so it propagates
// through analyzeAll/AnalyzeProject rather than being silently dropped.
func (o *Orchestrator) analyzeFileLogged(path string) (*codeintel.FileAnalysisResult, error) {
	result, err := o.AnalyzeFile(path, nil)
	if err != nil {
		var unsupported *langparse.ErrUnsupportedLanguage
		if errors.As(err, &unsupported) {
			return nil, fmt.Errorf("orchestrator: %s: %w", path, err)
		}
		o.logger.Warn("skipping file after analysis error", "path", path, "error", err.Error())
		return nil, nil
	}
	return result, nil
}

// AnalyzeFile runs the single-file pipeline (parse, unify, metrics,
// structure, file-level rules) against path, per spec §6's
// analyzeFile(path, content?) operation. content overrides what's on disk
// when non-nil -- useful for analyzing unsaved editor buffers -- and is
// read from path via internal/fsource otherwise.
func (o *Orchestrator) AnalyzeFile(path string, content []byte) (*codeintel.FileAnalysisResult, error) {
	if content == nil {
		read, err := fsource.Read(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		content = read
	}
	return o.analyzeFile(path, content)
}

// analyzeFile runs the whole per-file pipeline once content is in hand:
// parse, unify (its result is not stored on the FileAnalysisResult; only
// adapter failures are logged), compute metrics and structure, run
// file-level rules.
func (o *Orchestrator) analyzeFile(path string, content []byte) (*codeintel.FileAnalysisResult, error) {
	lang := langparse.DetectLanguage(path)
	parser := langparse.New()
	defer parser.Close()

	parseResult, err := parser.Parse(content, lang, path)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	root := parseResult.Tree.RootNode()

	if _, adaptErr := unify.GetAdapter(lang).ToUnifiedNodes(parseResult.Tree, content, path); adaptErr != nil {
		o.logger.Warn("unified-node adapter failed, continuing with raw tree only", "path", path, "error", adaptErr.Error())
	}

	result := codeintel.NewFileAnalysisResult(path, string(lang))
	result.Dependencies = structure.AnalyzeModuleDependencies(root, content, path)

	functions := structure.AnalyzeFunctions(root, content)
	cyclomatic := worstComplexity(functions, func(f *structure.FunctionInfo) int { return f.CyclomaticComplexity })
	cognitive := worstComplexity(functions, func(f *structure.FunctionInfo) int { return f.CognitiveComplexity })
	if len(functions) == 0 {
		cyclomatic = metrics.CyclomaticComplexity(root)
		cognitive = metrics.CognitiveComplexity(root)
	}

	result.Metrics["cyclomaticComplexity"] = float64(cyclomatic)
	result.Metrics["cognitiveComplexity"] = float64(cognitive)
	result.Metrics["maintainabilityIndex"] = float64(metrics.MaintainabilityIndex(content, cyclomatic))
	result.Metrics["linesOfCode"] = float64(metrics.LinesOfCode(content))
	result.Metrics["halsteadVolume"] = metrics.HalsteadVolume(content)
	result.Metrics["syntaxErrorRatio"] = parseResult.ErrorRatio

	result.Findings = o.engine.EvaluateFile(result)
	return result, nil
}

func worstComplexity(functions []*structure.FunctionInfo, pick func(*structure.FunctionInfo) int) int {
	worst := 0
	for _, f := range functions {
		if v := pick(f); v > worst {
			worst = v
		}
	}
	return worst
}

// GenerateDependencyGraph builds a DependencyGraph from files without
// running metrics/rules again, per spec §6's generateDependencyGraph(files)
// operation -- the same graph-building step assemble runs internally,
// exposed standalone for callers that already have file results in hand
// (e.g. from repeated AnalyzeFile calls) and just want the graph.
func (o *Orchestrator) GenerateDependencyGraph(files []*codeintel.FileAnalysisResult) *codeintel.DependencyGraph {
	return depgraph.Build(files, o.logger)
}

// assemble builds the project-level graph, stability metrics, risk
// scores, and project-rule findings, then flattens everything into one
// AnalysisResult, per spec §4.8 steps 3-5.
func (o *Orchestrator) assemble(files []*codeintel.FileAnalysisResult) *codeintel.AnalysisResult {
	graph := depgraph.Build(files, o.logger)
	stability := impact.ComputeStabilityMetrics(graph)
	risk := impact.ComputeRiskScores(graph, stability)

	var findings []*codeintel.Finding
	for _, f := range files {
		findings = append(findings, f.Findings...)
	}
	findings = append(findings, o.engine.EvaluateProject(files, graph)...)

	return &codeintel.AnalysisResult{
		Files:            files,
		Findings:         findings,
		Graph:            graph,
		StabilityMetrics: stability,
		RiskScores:       risk,
	}
}
