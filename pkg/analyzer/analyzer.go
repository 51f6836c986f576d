// Package analyzer is the public library boundary for this module's
// analysis core: construct an Analyzer with a Configuration and a
// logger, then call AnalyzeProject or AnalyzeFiles. Everything else
// (file watching, config-file loading, CLI, markdown/LLM output) is an
// external collaborator, per spec §1.
package analyzer

import (
	"github.com/codelens-dev/codeintel-core/internal/logging"
	"github.com/codelens-dev/codeintel-core/internal/orchestrator"
	"github.com/codelens-dev/codeintel-core/pkg/codeintel"
)

// Analyzer runs full and incremental static analysis over a project.
type Analyzer struct {
	orch *orchestrator.Orchestrator
}

// New builds an Analyzer. cfg is deep-merged over
// codeintel.DefaultConfiguration; logger may be nil, in which case
// nothing is logged.
func New(cfg codeintel.Configuration, logger logging.Logger) *Analyzer {
	return &Analyzer{orch: orchestrator.New(cfg, logger)}
}

// AnalyzeProject runs a full analysis rooted at rootPath, excluding any
// path matching extraExcludes in addition to the configured excludes.
func (a *Analyzer) AnalyzeProject(rootPath string, extraExcludes []string) (*codeintel.AnalysisResult, error) {
	return a.orch.AnalyzeProject(rootPath, extraExcludes)
}

// AnalyzeFiles runs incremental re-analysis over changedPaths against
// prev, falling back to a full AnalyzeProject(rootPath, extraExcludes)
// on any internal failure.
func (a *Analyzer) AnalyzeFiles(rootPath string, extraExcludes []string, changedPaths []string, prev *codeintel.AnalysisResult) (*codeintel.AnalysisResult, error) {
	return a.orch.AnalyzeFiles(rootPath, extraExcludes, changedPaths, prev)
}

// AnalyzeFile runs the single-file pipeline against path, per spec §6.
// content overrides what's on disk when non-nil, so a caller (e.g. an
// editor integration) can analyze an unsaved buffer without writing it out
// first; pass nil to read path from disk.
func (a *Analyzer) AnalyzeFile(path string, content []byte) (*codeintel.FileAnalysisResult, error) {
	return a.orch.AnalyzeFile(path, content)
}

// GenerateDependencyGraph builds a DependencyGraph from a set of file
// results without re-running metrics or rules, per spec §6.
func (a *Analyzer) GenerateDependencyGraph(files []*codeintel.FileAnalysisResult) *codeintel.DependencyGraph {
	return a.orch.GenerateDependencyGraph(files)
}
