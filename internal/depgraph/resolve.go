// Package depgraph implements the Dependency Graph Builder (component
// C5): resolving each file's raw, as-written import specifiers against
// the set of analyzed files and assembling a codeintel.DependencyGraph.
// Grounded on the teacher's GlobalContext symbol-resolution pass
// (context/symbol_resolver.go), which likewise runs a second pass over
// already-collected per-file data to wire up cross-file relations.
package depgraph

import (
	"path/filepath"
	"strings"
)

// resolve maps one raw dependency specifier, as written inside
// fromPath, to a candidate in-project path, per spec §4.5 step 2. ok is
// false for package names (external modules, not graph nodes).
func resolve(spec, fromPath, language string) (resolved string, ok bool) {
	switch {
	case strings.HasPrefix(spec, "."):
		resolved = filepath.Clean(filepath.Join(filepath.Dir(fromPath), spec))
	case strings.HasPrefix(spec, "/") || strings.HasPrefix(spec, "~"):
		resolved = spec
	default:
		return "", false
	}

	if !hasKnownExtension(resolved) {
		// A specifier ending in ".d" (a type-declaration module, e.g.
		// "./shim.d") has a non-empty filepath.Ext ("."+"d") but isn't one
		// of the language's own source extensions, so it still gains one
		// here and becomes ".d.ts" -- the "d" suffix is already part of
		// resolved.
		switch language {
		case "typescript":
			resolved += ".ts"
		case "javascript":
			resolved += ".js"
		}
	}
	return resolved, true
}

// hasKnownExtension reports whether resolved already ends in one of the
// extensions langparse.DetectLanguage recognizes for TS/JS source, so
// resolve doesn't mistake an unrelated dotted suffix (".d", ".min", ...)
// for an extension and skip appending the real one.
func hasKnownExtension(resolved string) bool {
	switch strings.ToLower(filepath.Ext(resolved)) {
	case ".ts", ".tsx", ".js", ".jsx", ".mjs", ".cjs":
		return true
	default:
		return false
	}
}
