package langparse

import (
	"fmt"

	sitter "github.com/tree-sitter/go-tree-sitter"
)

// ErrUnsupportedLanguage is returned when no grammar is registered for a
// requested language. Per spec §4.1/§7 this is the one parser-level
// condition that propagates upward rather than degrading gracefully.
type ErrUnsupportedLanguage struct {
	Language Language
}

func (e *ErrUnsupportedLanguage) Error() string {
	return fmt.Sprintf("langparse: unsupported language %q", e.Language)
}

// ParseResult is the outcome of a single parse, before unification. It
// carries no unified view: callers build one from Tree with
// internal/unify, since grammar selection and AST unification are
// separate concerns.
type ParseResult struct {
	Tree       *sitter.Tree
	HasErrors  bool
	ErrorRatio float64
}

// Parser owns one tree-sitter parser instance per language and is not
// safe for concurrent use -- spec §5 gives every analysis invocation its
// own parser for exactly this reason.
type Parser struct {
	byLanguage map[Language]*sitter.Parser
}

// New returns a Parser with no grammar bound yet; bindFor lazily creates
// and caches one *sitter.Parser per language the first time it's needed.
func New() *Parser {
	return &Parser{byLanguage: make(map[Language]*sitter.Parser)}
}

// Close releases every tree-sitter parser this Parser created.
func (p *Parser) Close() {
	for _, sp := range p.byLanguage {
		sp.Close()
	}
}

func (p *Parser) bindFor(lang Language, path string) (*sitter.Parser, error) {
	g := chooseGrammar(lang, path)
	if g == nil {
		return nil, &ErrUnsupportedLanguage{Language: lang}
	}
	// TSX uses a distinct grammar object from plain TypeScript, so key the
	// cache by the chosen grammar's identity rather than just lang.
	key := lang
	if g == tsxGrammar {
		key = Language("typescript+tsx")
	}
	if sp, ok := p.byLanguage[key]; ok {
		return sp, nil
	}
	sp := sitter.NewParser()
	if err := sp.SetLanguage(g.language); err != nil {
		return nil, fmt.Errorf("langparse: set language %s: %w", lang, err)
	}
	p.byLanguage[key] = sp
	return sp, nil
}

// Parse parses content as language, rooted at path (used only to pick the
// TSX vs TypeScript grammar variant; may be empty for non-TS content).
func (p *Parser) Parse(content []byte, lang Language, path string) (*ParseResult, error) {
	sp, err := p.bindFor(lang, path)
	if err != nil {
		return nil, err
	}
	tree := sp.Parse(content, nil)
	if tree == nil {
		return nil, fmt.Errorf("langparse: tree-sitter returned no tree for %s", path)
	}
	return newResult(tree, content), nil
}

// ParseIncremental reuses previous as a starting point for an edited
// parse. Without explicit edit coordinates (the file watcher reports only
// changed paths, not byte ranges -- spec §1 keeps the watcher external)
// this can't call Tree.Edit to mark the changed span, so it degrades to
// a plain reparse that still benefits from tree-sitter's internal error
// recovery; any failure here falls back to Parse silently, per spec §4.1.
func (p *Parser) ParseIncremental(previous *sitter.Tree, content []byte, lang Language, path string) (*ParseResult, error) {
	sp, err := p.bindFor(lang, path)
	if err != nil {
		return p.Parse(content, lang, path)
	}
	tree := sp.Parse(content, previous)
	if tree == nil {
		return p.Parse(content, lang, path)
	}
	return newResult(tree, content), nil
}

func newResult(tree *sitter.Tree, content []byte) *ParseResult {
	total, errorNodes := 0, 0
	walkAll(tree.RootNode(), func(n *sitter.Node) {
		total++
		if n.Kind() == "ERROR" || n.IsError() || n.IsMissing() {
			errorNodes++
		}
	})
	var ratio float64
	if total > 0 {
		ratio = float64(errorNodes) / float64(total)
	}
	return &ParseResult{Tree: tree, HasErrors: ratio > 0, ErrorRatio: ratio}
}

// walkAll visits every node in the tree in DFS pre-order.
func walkAll(n *sitter.Node, visit func(*sitter.Node)) {
	if n == nil {
		return
	}
	visit(n)
	count := n.ChildCount()
	for i := uint(0); i < count; i++ {
		walkAll(n.Child(i), visit)
	}
}
