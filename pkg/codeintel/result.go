package codeintel

// FileAnalysisResult is the per-file output of the analysis pipeline:
// computed metrics, findings raised by file-level rules, and the raw
// (unresolved) import specifiers as written in source. Instances are
// treated as immutable once returned from the orchestrator -- the
// incremental path relies on being able to share them by reference across
// snapshots (see AnalysisResult).
type FileAnalysisResult struct {
	FilePath     string             `json:"filePath"`
	Language     string             `json:"language"`
	Metrics      map[string]float64 `json:"metrics"`
	Findings     []*Finding         `json:"findings"`
	Dependencies []string           `json:"dependencies"`
}

// NewFileAnalysisResult builds an empty, ready-to-populate result for path.
func NewFileAnalysisResult(path, language string) *FileAnalysisResult {
	return &FileAnalysisResult{
		FilePath: path,
		Language: language,
		Metrics:  make(map[string]float64),
	}
}

// StabilityMetric is the afferent/efferent coupling pair and the derived
// instability score for one file.
type StabilityMetric struct {
	Ca        int     `json:"ca"`
	Ce        int     `json:"ce"`
	Stability float64 `json:"stability"`
}

// RiskScore is the weighted reverse-reachability change-impact score for
// one file, per spec §4.6.
type RiskScore float64

// AnalysisResult is an immutable snapshot produced by a full or
// incremental analysis run.
type AnalysisResult struct {
	Files           []*FileAnalysisResult       `json:"files"`
	Findings        []*Finding                  `json:"findings"`
	Graph           *DependencyGraph             `json:"graph"`
	StabilityMetrics map[string]*StabilityMetric `json:"stabilityMetrics"`
	RiskScores      map[string]RiskScore         `json:"riskScores"`
}

// FileByPath returns the FileAnalysisResult for path, or nil if path is
// not part of this snapshot.
func (r *AnalysisResult) FileByPath(path string) *FileAnalysisResult {
	if r == nil {
		return nil
	}
	for _, f := range r.Files {
		if f.FilePath == path {
			return f
		}
	}
	return nil
}
