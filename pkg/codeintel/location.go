// Package codeintel holds the shared vocabulary of the static code
// intelligence core: source locations, findings, the unified node model,
// per-file and per-project results, the dependency graph, and the
// configuration record every other package is handed at construction time.
package codeintel

// SourceLocation is a 1-based inclusive span in a source file.
type SourceLocation struct {
	StartLine   int `json:"startLine"`
	StartColumn int `json:"startColumn"`
	EndLine     int `json:"endLine"`
	EndColumn   int `json:"endColumn"`
}

// Severity orders findings for reporting, lowest-to-highest concern.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// severityRank gives Severity a total order for sorting/comparison.
var severityRank = map[Severity]int{
	SeverityInfo:    0,
	SeverityWarning: 1,
	SeverityError:   2,
}

// Less reports whether s is a strictly lower severity than other.
func (s Severity) Less(other Severity) bool {
	return severityRank[s] < severityRank[other]
}
