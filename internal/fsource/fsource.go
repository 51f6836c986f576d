// Package fsource isolates filesystem concerns (directory walking, file
// reads) from the orchestrator, so internal/orchestrator deals only in
// paths and byte slices. Grounded on the teacher's main.go discoverFiles
// (filepath.WalkDir + hidden-directory skip), generalized to run the
// glob include/exclude match from internal/globmatch instead of a single
// fixed extension.
package fsource

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Discover walks rootPath and returns the absolute paths of every regular
// file whose path (relative to rootPath) matches shouldAnalyze, sorted
// for deterministic downstream ordering. Hidden directories (dotfiles)
// are skipped entirely, matching the teacher's convention.
func Discover(rootPath string, shouldAnalyze func(relPath string) bool) ([]string, error) {
	var matched []string

	err := filepath.WalkDir(rootPath, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if isHidden(d.Name()) && path != rootPath {
				return filepath.SkipDir
			}
			return nil
		}

		rel, relErr := filepath.Rel(rootPath, path)
		if relErr != nil {
			rel = path
		}
		if shouldAnalyze(rel) {
			abs, absErr := filepath.Abs(path)
			if absErr != nil {
				abs = path
			}
			matched = append(matched, abs)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(matched)
	return matched, nil
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".") && name != "." && name != ".."
}

// Read reads the full contents of path.
func Read(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// Exists reports whether path names an existing entry that is not a
// directory. It does not check that the file is readable.
func Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
