package depgraph

import (
	"github.com/codelens-dev/codeintel-core/internal/logging"
	"github.com/codelens-dev/codeintel-core/pkg/codeintel"
)

// Build assembles a codeintel.DependencyGraph from files, per spec §4.5:
// pre-seed every analyzed file, resolve and insert edges for every raw
// dependency that resolves to another analyzed file, then compute
// instability. logger may be nil, in which case nothing is logged.
func Build(files []*codeintel.FileAnalysisResult, logger logging.Logger) *codeintel.DependencyGraph {
	if logger == nil {
		logger = logging.Nop()
	}
	graph := codeintel.NewDependencyGraph()

	analyzed := make(map[string]bool, len(files))
	for _, f := range files {
		graph.EnsureNode(f.FilePath)
		analyzed[f.FilePath] = true
	}

	for _, f := range files {
		for _, spec := range f.Dependencies {
			resolvedPath, ok := resolve(spec, f.FilePath, f.Language)
			if !ok {
				continue // a bare package specifier, not a project-local edge
			}
			if !analyzed[resolvedPath] {
				logger.Debug("dependency resolution failed, omitting edge", "from", f.FilePath, "specifier", spec, "resolved", resolvedPath)
				continue
			}
			graph.AddEdge(f.FilePath, resolvedPath)
		}
	}

	graph.ComputeInstability()
	return graph
}
