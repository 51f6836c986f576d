package rules

import (
	"fmt"
	"sort"

	"github.com/codelens-dev/codeintel-core/internal/logging"
	"github.com/codelens-dev/codeintel-core/pkg/codeintel"
)

// Engine holds the built rule instances for one analysis run, split by
// level, in deterministic registration order (configuration rule ids
// sorted lexicographically -- a Go map has no order of its own).
type Engine struct {
	fileRules    []FileRule
	projectRules []ProjectRule
	logger       logging.Logger
}

// NewEngine builds every enabled rule in cfg.Rules. A rule id that
// resolves to neither shape is logged as a warning and skipped, per spec
// §4.7 ("otherwise -> unknown rule, log a warning and skip").
func NewEngine(cfg codeintel.Configuration, logger logging.Logger) *Engine {
	if logger == nil {
		logger = logging.Nop()
	}
	e := &Engine{logger: logger}

	ids := make([]string, 0, len(cfg.Rules))
	for id := range cfg.Rules {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		rule, unknown := Build(id, cfg.Rules[id])
		if rule == nil {
			if unknown {
				logger.Warn("unknown rule configuration, skipping", "ruleId", id)
			}
			continue
		}
		switch r := rule.(type) {
		case FileRule:
			e.fileRules = append(e.fileRules, r)
		case ProjectRule:
			e.projectRules = append(e.projectRules, r)
		}
	}
	return e
}

// EvaluateFile runs every file rule against file in registration order.
// A rule that panics is logged and skipped rather than aborting the
// batch, per spec §4.7.
func (e *Engine) EvaluateFile(file *codeintel.FileAnalysisResult) []*codeintel.Finding {
	var findings []*codeintel.Finding
	for _, rule := range e.fileRules {
		findings = append(findings, e.safeEvaluateFile(rule, file)...)
	}
	return findings
}

func (e *Engine) safeEvaluateFile(rule FileRule, file *codeintel.FileAnalysisResult) (result []*codeintel.Finding) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("file rule panicked, skipping", "ruleId", rule.ID(), "error", fmt.Sprint(r))
			result = nil
		}
	}()
	return rule.Evaluate(file)
}

// EvaluateProject runs every project rule against the full file set and
// optional precomputed graph.
func (e *Engine) EvaluateProject(files []*codeintel.FileAnalysisResult, graph *codeintel.DependencyGraph) []*codeintel.Finding {
	var findings []*codeintel.Finding
	for _, rule := range e.projectRules {
		findings = append(findings, e.safeEvaluateProject(rule, files, graph)...)
	}
	return findings
}

func (e *Engine) safeEvaluateProject(rule ProjectRule, files []*codeintel.FileAnalysisResult, graph *codeintel.DependencyGraph) (result []*codeintel.Finding) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("project rule panicked, skipping", "ruleId", rule.ID(), "error", fmt.Sprint(r))
			result = nil
		}
	}()
	return rule.Evaluate(files, graph)
}
