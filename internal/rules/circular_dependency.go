package rules

import (
	"strings"

	"github.com/codelens-dev/codeintel-core/internal/depgraph"
	"github.com/codelens-dev/codeintel-core/internal/logging"
	"github.com/codelens-dev/codeintel-core/pkg/codeintel"
)

// CircularDependencyRule emits one finding per detected cycle, per spec
// §4.7.
type CircularDependencyRule struct {
	RuleID   string
	Severity codeintel.Severity
}

func newCircularDependencyRule(ruleID string, cfg codeintel.RuleConfig) (Rule, error) {
	return &CircularDependencyRule{RuleID: ruleID, Severity: cfg.Severity}, nil
}

func (r *CircularDependencyRule) ID() string { return r.RuleID }

func (r *CircularDependencyRule) Evaluate(files []*codeintel.FileAnalysisResult, graph *codeintel.DependencyGraph) []*codeintel.Finding {
	if graph == nil {
		// EvaluateProject always passes the orchestrator's already-built
		// graph in production; this fallback only rebuilds one when a
		// caller runs the rule standalone (e.g. a test), where there's no
		// logger in scope to thread through the Factory signature for.
		graph = depgraph.Build(files, logging.Nop())
	}

	var findings []*codeintel.Finding
	for _, cycle := range graph.GetCircularDependencies() {
		findings = append(findings, codeintel.NewFinding(
			r.RuleID,
			codeintel.FindingArchitecture,
			"found cycle: "+strings.Join(cycle, " -> "),
			r.Severity,
		).WithDetail("cycle", cycle))
	}
	return findings
}
