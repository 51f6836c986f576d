package rules

import "github.com/codelens-dev/codeintel-core/pkg/codeintel"

// Factory builds a Rule for ruleID from its configuration.
type Factory func(ruleID string, cfg codeintel.RuleConfig) (Rule, error)

var factories = make(map[string]Factory)

// RegisterRuleFactory registers factory as the builder for ruleID.
func RegisterRuleFactory(ruleID string, factory Factory) {
	factories[ruleID] = factory
}

func init() {
	RegisterRuleFactory("module.circularDependency", newCircularDependencyRule)
	RegisterRuleFactory("syntax.error", newSyntaxErrorRule)
}

// Build constructs the rule for ruleID per spec §4.7's priority order:
// disabled rules build nothing; the open, ruleID-keyed factory table is
// consulted first, so a ruleID with a dedicated factory (module
// .circularDependency, syntax.error) always gets its own rule type even
// when its config also happens to carry Metric/Threshold; only when no
// factory is registered for ruleID does a config with both Metric and
// Threshold set fall back to the generic MetricThresholdRule. unknown is
// true when ruleID matched neither a factory nor the metric/threshold
// shape -- the caller logs and skips in that case.
func Build(ruleID string, cfg codeintel.RuleConfig) (rule Rule, unknown bool) {
	if !cfg.Enabled {
		return nil, false
	}
	if factory, ok := factories[ruleID]; ok {
		r, err := factory(ruleID, cfg)
		if err != nil {
			return nil, true
		}
		return r, false
	}
	if cfg.Metric != "" && cfg.Threshold != nil {
		return &MetricThresholdRule{
			RuleID:    ruleID,
			Metric:    cfg.Metric,
			Threshold: *cfg.Threshold,
			Severity:  cfg.Severity,
		}, false
	}
	return nil, true
}
