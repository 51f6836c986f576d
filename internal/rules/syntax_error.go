package rules

import "github.com/codelens-dev/codeintel-core/pkg/codeintel"

// SyntaxErrorRule fires when a file's syntax-error-ratio metric exceeds a
// threshold. It compares a named metric against a threshold the same way
// MetricThresholdRule does, but spec §7 fixes this rule's finding id to
// "syntax.error" and its kind to FindingSyntaxError rather than the
// generic ruleID+".exceeded" / FindingMetric shape, so it gets its own
// registered factory instead of falling through to the generic rule.
type SyntaxErrorRule struct {
	RuleID    string
	Metric    string
	Threshold float64
	Severity  codeintel.Severity
}

func newSyntaxErrorRule(ruleID string, cfg codeintel.RuleConfig) (Rule, error) {
	metric := cfg.Metric
	if metric == "" {
		metric = "syntaxErrorRatio"
	}
	var threshold float64
	if cfg.Threshold != nil {
		threshold = *cfg.Threshold
	}
	return &SyntaxErrorRule{
		RuleID:    ruleID,
		Metric:    metric,
		Threshold: threshold,
		Severity:  cfg.Severity,
	}, nil
}

func (r *SyntaxErrorRule) ID() string { return r.RuleID }

func (r *SyntaxErrorRule) Evaluate(file *codeintel.FileAnalysisResult) []*codeintel.Finding {
	value, ok := file.Metrics[r.Metric]
	if !ok || value <= r.Threshold {
		return nil
	}

	finding := codeintel.NewFinding(
		r.RuleID,
		codeintel.FindingSyntaxError,
		"syntax errors detected in file",
		r.Severity,
	).WithDetail("metricName", r.Metric).
		WithDetail("value", value).
		WithDetail("threshold", r.Threshold).
		WithDetail("filePath", file.FilePath)

	return []*codeintel.Finding{finding}
}
