// Package globmatch matches file paths against the analyzePaths/
// excludePaths glob lists of spec §3's Configuration, using
// github.com/bmatcuk/doublestar/v4 for "**" recursive-wildcard support
// that Go's stdlib path/filepath.Match does not provide. No example repo
// in the pack imports a glob-matching library (every teacher-repo path
// filter is either an exact extension check or absent); this dependency
// is adopted from the wider ecosystem as the idiomatic tool for exactly
// this problem rather than grounded in pack code.
package globmatch

import (
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

// Matches reports whether relPath (slash-separated, relative to the
// glob's root) matches any pattern in patterns.
func Matches(relPath string, patterns []string) bool {
	rel := filepath.ToSlash(relPath)
	for _, pattern := range patterns {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}
	return false
}

// ShouldAnalyze reports whether relPath matches includePatterns and
// matches none of excludePatterns, per spec §4.8 step 1.
func ShouldAnalyze(relPath string, includePatterns, excludePatterns []string) bool {
	if !Matches(relPath, includePatterns) {
		return false
	}
	return !Matches(relPath, excludePatterns)
}
