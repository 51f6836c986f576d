package codeintel

// LogLevel selects the verbosity of the logger the core is handed.
type LogLevel string

const (
	LogSilent LogLevel = "silent"
	LogInfo   LogLevel = "info"
	LogWarn   LogLevel = "warn"
	LogDebug  LogLevel = "debug"
)

// RuleConfig configures one rule instance. Which fields matter depends on
// the rule id: a MetricThresholdRule reads Metric/Threshold, the
// module.circularDependency rule reads none beyond Enabled/Severity.
type RuleConfig struct {
	Enabled   bool     `json:"enabled"`
	Severity  Severity `json:"severity"`
	Threshold *float64 `json:"threshold,omitempty"`
	Metric    string   `json:"metric,omitempty"`
}

// IncrementalConfig controls the incremental re-analysis path.
// DebounceSeconds is consumed entirely outside this module (by the
// file-watcher collaborator) and is carried here only so the whole
// configuration record round-trips without the core needing to know its
// shape beyond a number.
type IncrementalConfig struct {
	Enabled         bool `json:"enabled"`
	DebounceSeconds int  `json:"debounceSeconds"`
}

// Configuration is the structured record the core is constructed with.
// No file parsing happens inside this module: a config file loader is an
// external collaborator that produces one of these.
type Configuration struct {
	AnalyzePaths  []string              `json:"analyzePaths"`
	ExcludePaths  []string              `json:"excludePaths"`
	Rules         map[string]RuleConfig `json:"rules"`
	Incremental   IncrementalConfig     `json:"incremental"`
	LogLevel      LogLevel              `json:"logLevel"`
	DebugMode     bool                  `json:"debugMode"`
	Concurrency   int                   `json:"concurrency"`
}

// DefaultConfiguration returns the baseline configuration every
// Configuration passed to the analyzer is deep-merged over.
func DefaultConfiguration() Configuration {
	return Configuration{
		AnalyzePaths: []string{"**/*.ts", "**/*.tsx", "**/*.js", "**/*.jsx"},
		ExcludePaths: []string{"**/node_modules/**", "**/*.d.ts"},
		Rules: map[string]RuleConfig{
			"complexity.cyclomatic": {Enabled: true, Severity: SeverityWarning, Metric: "cyclomaticComplexity", Threshold: floatPtr(10)},
			"complexity.cognitive":  {Enabled: true, Severity: SeverityWarning, Metric: "cognitiveComplexity", Threshold: floatPtr(15)},
			"maintainability.low":   {Enabled: true, Severity: SeverityWarning, Metric: "maintainabilityIndex", Threshold: floatPtr(65)},
			"syntax.error":          {Enabled: true, Severity: SeverityError, Metric: "syntaxErrorRatio", Threshold: floatPtr(0)},
			"module.circularDependency": {Enabled: true, Severity: SeverityError},
		},
		Incremental: IncrementalConfig{Enabled: true, DebounceSeconds: 2},
		LogLevel:    LogWarn,
		Concurrency: 1,
	}
}

func floatPtr(v float64) *float64 { return &v }

// Merge deep-merges override on top of the receiver and returns the
// result; fields left at their Go zero value in override are treated as
// "unset" and the base value is kept. Unknown configuration fields are a
// compile error in Go (there is no open bag), which trivially satisfies
// spec §6's "unknown configuration fields are ignored".
func (base Configuration) Merge(override Configuration) Configuration {
	merged := base

	if len(override.AnalyzePaths) > 0 {
		merged.AnalyzePaths = override.AnalyzePaths
	}
	if len(override.ExcludePaths) > 0 {
		merged.ExcludePaths = override.ExcludePaths
	}
	if len(override.Rules) > 0 {
		merged.Rules = make(map[string]RuleConfig, len(base.Rules)+len(override.Rules))
		for id, rc := range base.Rules {
			merged.Rules[id] = rc
		}
		for id, rc := range override.Rules {
			merged.Rules[id] = rc
		}
	}
	if override.Incremental != (IncrementalConfig{}) {
		merged.Incremental = override.Incremental
	}
	if override.LogLevel != "" {
		merged.LogLevel = override.LogLevel
	} else if override.DebugMode {
		// Legacy alias: debugMode=true => logLevel=debug when the override
		// itself didn't name a logLevel. Keyed off override, not base --
		// base always carries a real LogLevel (DefaultConfiguration sets
		// LogWarn), so testing base here would make this branch dead.
		merged.LogLevel = LogDebug
	}
	if override.DebugMode {
		merged.DebugMode = true
	}
	if override.Concurrency > 0 {
		merged.Concurrency = override.Concurrency
	}
	return merged
}
