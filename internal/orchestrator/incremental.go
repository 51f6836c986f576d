package orchestrator

import (
	"fmt"
	"sort"

	"github.com/codelens-dev/codeintel-core/internal/fsource"
	"github.com/codelens-dev/codeintel-core/pkg/codeintel"
)

// AnalyzeFiles runs incremental re-analysis, per spec §4.8's incremental
// path. rootPath and extraExcludes are only consulted if a full fallback
// analysis becomes necessary (step 5).
func (o *Orchestrator) AnalyzeFiles(rootPath string, extraExcludes []string, changedPaths []string, prev *codeintel.AnalysisResult) (*codeintel.AnalysisResult, error) {
	result, err := o.tryAnalyzeFiles(changedPaths, prev)
	if err != nil {
		o.logger.Warn("incremental analysis failed, falling back to full analysis", "error", err.Error())
		return o.AnalyzeProject(rootPath, extraExcludes)
	}
	return result, nil
}

// tryAnalyzeFiles recovers from a panic anywhere in the incremental path
// and reports it as an error, so AnalyzeFiles can fall back to a full
// analysis per spec §4.8 step 5 rather than propagating it.
func (o *Orchestrator) tryAnalyzeFiles(changedPaths []string, prev *codeintel.AnalysisResult) (result *codeintel.AnalysisResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			result, err = nil, fmt.Errorf("incremental analysis panicked: %v", r)
		}
	}()

	impacted := impactedSet(changedPaths, prev)

	var prevFiles []*codeintel.FileAnalysisResult
	if prev != nil {
		prevFiles = prev.Files
	}
	retained := make([]*codeintel.FileAnalysisResult, 0, len(prevFiles))
	for _, f := range prevFiles {
		if !impacted[f.FilePath] {
			retained = append(retained, f) // kept by reference, per spec §3 lifecycle
		}
	}

	var toReanalyze []string
	for path := range impacted {
		if fsource.Exists(path) {
			toReanalyze = append(toReanalyze, path)
		}
	}
	sort.Strings(toReanalyze)

	reanalyzed, err := o.analyzeAll(toReanalyze)
	if err != nil {
		return nil, err
	}
	files := append(retained, reanalyzed...)

	return o.assemble(files), nil
}

// impactedSet is the union of changedPaths and, for each such path
// present in prev's graph, its one-hop imports/importedBy neighbors, per
// spec §4.8 step 1 of the incremental path.
func impactedSet(changedPaths []string, prev *codeintel.AnalysisResult) map[string]bool {
	impacted := make(map[string]bool, len(changedPaths)*2)
	for _, p := range changedPaths {
		impacted[p] = true
	}

	if prev == nil || prev.Graph == nil {
		return impacted
	}
	for _, p := range changedPaths {
		node, ok := prev.Graph.Nodes[p]
		if !ok {
			continue
		}
		for _, n := range node.Imports {
			impacted[n] = true
		}
		for _, n := range node.ImportedBy {
			impacted[n] = true
		}
	}
	return impacted
}

