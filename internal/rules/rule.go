// Package rules implements the Rule Engine (component C7): building rule
// instances from configuration and dispatching them over file and
// project results. Grounded on the teacher's RegisterExtractor/
// GetExtractor registry idiom (extractor/extractor.go), generalized from
// "one factory per language" to "one factory per rule id", plus an
// open-ended dispatch table for any id the built-in rule shapes don't
// already cover -- every plugin registry in the pack is a map, never a
// switch, and this follows suit even though only a handful of rule
// shapes exist today.
package rules

import "github.com/codelens-dev/codeintel-core/pkg/codeintel"

// Rule is the common contract every rule instance satisfies.
type Rule interface {
	ID() string
}

// FileRule evaluates a single file's result.
type FileRule interface {
	Rule
	Evaluate(file *codeintel.FileAnalysisResult) []*codeintel.Finding
}

// ProjectRule evaluates the whole project, optionally given a
// precomputed dependency graph.
type ProjectRule interface {
	Rule
	Evaluate(files []*codeintel.FileAnalysisResult, graph *codeintel.DependencyGraph) []*codeintel.Finding
}
