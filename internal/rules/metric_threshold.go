package rules

import "github.com/codelens-dev/codeintel-core/pkg/codeintel"

// MetricThresholdRule fires when a file's named metric exceeds a fixed
// threshold, per spec §4.7.
type MetricThresholdRule struct {
	RuleID    string
	Metric    string
	Threshold float64
	Severity  codeintel.Severity
}

func (r *MetricThresholdRule) ID() string { return r.RuleID }

func (r *MetricThresholdRule) Evaluate(file *codeintel.FileAnalysisResult) []*codeintel.Finding {
	value, ok := file.Metrics[r.Metric]
	if !ok || value <= r.Threshold {
		return nil
	}

	finding := codeintel.NewFinding(
		r.RuleID+".exceeded",
		codeintel.FindingMetric,
		r.RuleID+": "+r.Metric+" exceeds threshold",
		r.Severity,
	).WithDetail("metricName", r.Metric).
		WithDetail("value", value).
		WithDetail("threshold", r.Threshold).
		WithDetail("filePath", file.FilePath)

	return []*codeintel.Finding{finding}
}
