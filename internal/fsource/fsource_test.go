package fsource_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/codelens-dev/codeintel-core/internal/fsource"
)

func TestDiscover_SkipsHiddenDirectoriesAndUnmatchedFiles(t *testing.T) {
	root := t.TempDir()

	mustWrite := func(rel string) {
		full := filepath.Join(root, rel)
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			t.Fatalf("MkdirAll: %v", err)
		}
		if err := os.WriteFile(full, []byte("x"), 0o644); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}
	}

	mustWrite("a.ts")
	mustWrite("b.js")
	mustWrite("readme.md")
	mustWrite(".hidden/c.ts")
	mustWrite("node_modules/pkg/d.ts")

	files, err := fsource.Discover(root, func(rel string) bool {
		ext := filepath.Ext(rel)
		return (ext == ".ts" || ext == ".js") &&
			filepath.Dir(rel) != "node_modules/pkg"
	})
	if err != nil {
		t.Fatalf("Discover() error: %v", err)
	}

	if len(files) != 2 {
		t.Fatalf("Discover() = %v, want 2 files", files)
	}
	for _, f := range files {
		if !filepath.IsAbs(f) {
			t.Fatalf("Discover() returned non-absolute path %q", f)
		}
	}
}
