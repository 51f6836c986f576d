// Package langparse implements the Parser & Grammar Registry (component
// C1): mapping a file path to a language tag, parsing source text into a
// concrete syntax tree with the matching tree-sitter grammar, and
// reporting the syntactic error ratio of the result. Grounded on this
// module's teacher repo's RegisterLanguage/GetLanguage registry
// (parser/language_support.go, model/language.go) and its per-language
// init()-time self-registration idiom (x/java/init.go).
package langparse

import (
	"path/filepath"
	"strings"
)

// Language is one of the grammar tags the registry knows how to parse.
type Language string

const (
	LangTypeScript Language = "typescript"
	LangJavaScript Language = "javascript"
	LangPython     Language = "python"
)

// DetectLanguage maps a file path to a language tag using the extension
// table from spec §4.1. Unknown extensions default to javascript.
func DetectLanguage(path string) Language {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ts", ".tsx":
		return LangTypeScript
	case ".js", ".jsx", ".mjs", ".cjs":
		return LangJavaScript
	case ".py":
		return LangPython
	default:
		return LangJavaScript
	}
}

// isTSX reports whether path should be parsed with the TSX grammar
// variant rather than the plain TypeScript grammar. Both are exposed
// under the single "typescript" language tag (spec §4.1's table has no
// separate "tsx" entry), but tree-sitter ships them as distinct grammars.
func isTSX(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".tsx")
}
