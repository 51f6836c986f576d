package metrics

import (
	"math"
	"strings"
)

func log2(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return math.Log2(x)
}

// LinesOfCode counts non-blank, non-pure-comment lines in source, per
// spec §4.3's LOC definition. A line that mixes code and a trailing
// comment still counts; a line that is only whitespace, or only a
// comment once stripped, does not. Minimum 1.
func LinesOfCode(source []byte) int {
	stripped := stripComments(string(source))
	lines := strings.Split(stripped, "\n")
	count := 0
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			count++
		}
	}
	if count < 1 {
		count = 1
	}
	return count
}

// MaintainabilityIndex computes spec §4.3's MI for one file/function given
// its source text and cyclomatic complexity, clamped to [0,100] and
// rounded to the nearest integer.
func MaintainabilityIndex(source []byte, cyclomaticComplexity int) int {
	hv := HalsteadVolume(source)
	loc := LinesOfCode(source)

	mi := 171 - 5.2*math.Log(hv) - 0.23*float64(cyclomaticComplexity) - 16.2*math.Log(float64(loc))
	if mi < 0 {
		mi = 0
	}
	if mi > 100 {
		mi = 100
	}
	return int(math.Round(mi))
}
