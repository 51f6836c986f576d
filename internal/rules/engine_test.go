package rules_test

import (
	"testing"

	"github.com/codelens-dev/codeintel-core/internal/logging"
	"github.com/codelens-dev/codeintel-core/internal/rules"
	"github.com/codelens-dev/codeintel-core/pkg/codeintel"
)

func threshold(v float64) *float64 { return &v }

func TestEngine_MetricThresholdRuleFiresAboveThreshold(t *testing.T) {
	cfg := codeintel.Configuration{
		Rules: map[string]codeintel.RuleConfig{
			"function.complexity": {
				Enabled:   true,
				Severity:  codeintel.SeverityWarning,
				Metric:    "cyclomaticComplexity",
				Threshold: threshold(10),
			},
		},
	}
	engine := rules.NewEngine(cfg, logging.Nop())

	file := codeintel.NewFileAnalysisResult("/proj/a.ts", "typescript")
	file.Metrics["cyclomaticComplexity"] = 15

	findings := engine.EvaluateFile(file)
	if len(findings) != 1 {
		t.Fatalf("EvaluateFile() = %d findings, want 1", len(findings))
	}
	f := findings[0]
	if f.ID != "function.complexity.exceeded" {
		t.Fatalf("ID = %q, want function.complexity.exceeded", f.ID)
	}
	if f.Details["value"] != 15.0 || f.Details["threshold"] != 10.0 {
		t.Fatalf("Details = %v, want value=15 threshold=10", f.Details)
	}
}

func TestEngine_MetricThresholdRuleDoesNotFireAtThreshold(t *testing.T) {
	cfg := codeintel.Configuration{
		Rules: map[string]codeintel.RuleConfig{
			"function.complexity": {
				Enabled: true, Metric: "cyclomaticComplexity", Threshold: threshold(10),
			},
		},
	}
	engine := rules.NewEngine(cfg, logging.Nop())

	file := codeintel.NewFileAnalysisResult("/proj/a.ts", "typescript")
	file.Metrics["cyclomaticComplexity"] = 10

	if findings := engine.EvaluateFile(file); len(findings) != 0 {
		t.Fatalf("EvaluateFile() = %d findings at exactly threshold, want 0", len(findings))
	}
}

func TestEngine_CircularDependencyRuleEmitsOneFindingPerCycle(t *testing.T) {
	cfg := codeintel.Configuration{
		Rules: map[string]codeintel.RuleConfig{
			"module.circularDependency": {Enabled: true, Severity: codeintel.SeverityError},
		},
	}
	engine := rules.NewEngine(cfg, logging.Nop())

	graph := codeintel.NewDependencyGraph()
	graph.AddEdge("/proj/a.ts", "/proj/b.ts")
	graph.AddEdge("/proj/b.ts", "/proj/a.ts")

	findings := engine.EvaluateProject(nil, graph)
	if len(findings) != 1 {
		t.Fatalf("EvaluateProject() = %d findings, want 1", len(findings))
	}
	if findings[0].ID != "module.circularDependency" {
		t.Fatalf("ID = %q, want module.circularDependency", findings[0].ID)
	}
}

func TestEngine_SyntaxErrorRuleUsesDedicatedIDAndKind(t *testing.T) {
	cfg := codeintel.Configuration{
		Rules: map[string]codeintel.RuleConfig{
			"syntax.error": {
				Enabled:   true,
				Severity:  codeintel.SeverityError,
				Metric:    "syntaxErrorRatio",
				Threshold: threshold(0),
			},
		},
	}
	engine := rules.NewEngine(cfg, logging.Nop())

	file := codeintel.NewFileAnalysisResult("/proj/broken.ts", "typescript")
	file.Metrics["syntaxErrorRatio"] = 0.2

	findings := engine.EvaluateFile(file)
	if len(findings) != 1 {
		t.Fatalf("EvaluateFile() = %d findings, want 1", len(findings))
	}
	f := findings[0]
	if f.ID != "syntax.error" {
		t.Fatalf("ID = %q, want syntax.error", f.ID)
	}
	if f.Kind != codeintel.FindingSyntaxError {
		t.Fatalf("Kind = %q, want %q", f.Kind, codeintel.FindingSyntaxError)
	}
}

func TestEngine_DisabledRuleBuildsNothing(t *testing.T) {
	cfg := codeintel.Configuration{
		Rules: map[string]codeintel.RuleConfig{
			"function.complexity": {Enabled: false, Metric: "cyclomaticComplexity", Threshold: threshold(10)},
		},
	}
	engine := rules.NewEngine(cfg, logging.Nop())

	file := codeintel.NewFileAnalysisResult("/proj/a.ts", "typescript")
	file.Metrics["cyclomaticComplexity"] = 999

	if findings := engine.EvaluateFile(file); len(findings) != 0 {
		t.Fatalf("EvaluateFile() = %d findings for disabled rule, want 0", len(findings))
	}
}
