package langparse

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_javascript "github.com/tree-sitter/tree-sitter-javascript/bindings/go"
	tree_sitter_typescript "github.com/tree-sitter/tree-sitter-typescript/bindings/go"
)

// grammar wraps one registered tree-sitter Language. The syntax-error node
// kind is not stored here: newResult in parser.go checks for the literal
// "ERROR" kind, which every grammar tree-sitter ships uses.
type grammar struct {
	language *sitter.Language
}

var grammars = map[Language]*grammar{}

// tsxGrammar is registered separately from the plain TypeScript grammar
// since tree-sitter ships them as two distinct parsers; DetectLanguage
// still reports both as LangTypeScript (spec §4.1's extension table has
// no separate tsx entry), and chooseGrammar below picks the variant.
var tsxGrammar *grammar

func init() {
	grammars[LangTypeScript] = &grammar{language: sitter.NewLanguage(tree_sitter_typescript.LanguageTypescript())}
	tsxGrammar = &grammar{language: sitter.NewLanguage(tree_sitter_typescript.LanguageTSX())}
	grammars[LangJavaScript] = &grammar{language: sitter.NewLanguage(tree_sitter_javascript.Language())}
	// LangPython has no registered grammar: DetectLanguage still reports
	// "python" for .py files, but Parse returns *ErrUnsupportedLanguage
	// for them, which the orchestrator propagates as a fatal error.
}

// chooseGrammar resolves the grammar to parse path with, given its
// detected language tag.
func chooseGrammar(lang Language, path string) *grammar {
	if lang == LangTypeScript && isTSX(path) {
		return tsxGrammar
	}
	return grammars[lang]
}

// SupportedLanguages returns every language tag with a registered grammar.
// Python is intentionally absent: it is detected but not parsed (see
// init() above).
func SupportedLanguages() []string {
	return []string{string(LangTypeScript), string(LangJavaScript)}
}
