// Package tsnode holds small tree-sitter node helpers shared by the
// unified-node adapters (internal/unify) and the structure analyzers
// (internal/structure), so the two components agree on what "the text of a node" and "the
// location of a node" mean. Grounded on the teacher repo's
// x/java/java_collector.go getNodeContent/extractLocation helpers,
// generalized to be language-agnostic.
package tsnode

import (
	sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/codelens-dev/codeintel-core/pkg/codeintel"
)

// Text returns n's source text, or "" for a nil node.
func Text(n *sitter.Node, source []byte) string {
	if n == nil {
		return ""
	}
	return n.Utf8Text(source)
}

// Location converts n's span to a 1-based inclusive SourceLocation.
// Tree-sitter rows and columns are 0-based byte offsets and its end
// position is exclusive, so lines and the start column are shifted by
// one, while the exclusive 0-based end column already equals the
// inclusive 1-based end column.
func Location(n *sitter.Node) codeintel.SourceLocation {
	if n == nil {
		return codeintel.SourceLocation{}
	}
	start, end := n.StartPosition(), n.EndPosition()
	return codeintel.SourceLocation{
		StartLine:   int(start.Row) + 1,
		StartColumn: int(start.Column) + 1,
		EndLine:     int(end.Row) + 1,
		EndColumn:   int(end.Column),
	}
}

// Children returns every child of n (named and anonymous).
func Children(n *sitter.Node) []*sitter.Node {
	if n == nil {
		return nil
	}
	count := n.ChildCount()
	out := make([]*sitter.Node, 0, count)
	for i := uint(0); i < count; i++ {
		if c := n.Child(i); c != nil {
			out = append(out, c)
		}
	}
	return out
}

// NamedChildren returns every named child of n.
func NamedChildren(n *sitter.Node) []*sitter.Node {
	if n == nil {
		return nil
	}
	count := n.NamedChildCount()
	out := make([]*sitter.Node, 0, count)
	for i := uint(0); i < count; i++ {
		if c := n.NamedChild(i); c != nil {
			out = append(out, c)
		}
	}
	return out
}

// FirstChildOfKind returns the first child (named or not) of n whose
// Kind() is one of kinds, or nil.
func FirstChildOfKind(n *sitter.Node, kinds ...string) *sitter.Node {
	for _, c := range Children(n) {
		if matchesKind(c.Kind(), kinds) {
			return c
		}
	}
	return nil
}

// ChildrenOfKind returns every child (named or not) of n whose Kind() is
// one of kinds, in document order.
func ChildrenOfKind(n *sitter.Node, kinds ...string) []*sitter.Node {
	var out []*sitter.Node
	for _, c := range Children(n) {
		if matchesKind(c.Kind(), kinds) {
			out = append(out, c)
		}
	}
	return out
}

func matchesKind(kind string, kinds []string) bool {
	for _, k := range kinds {
		if kind == k {
			return true
		}
	}
	return false
}

// Field returns the child of n bound to field, or nil if n has no such
// field or the field is absent on this particular node.
func Field(n *sitter.Node, field string) *sitter.Node {
	if n == nil {
		return nil
	}
	return n.ChildByFieldName(field)
}

// FirstIdentifier returns the first descendant of n (DFS pre-order,
// n itself included) whose Kind() is "identifier", "type_identifier" or
// "property_identifier".
// Used to recover a declaration's name when no "name" field is bound.
func FirstIdentifier(n *sitter.Node) *sitter.Node {
	if n == nil {
		return nil
	}
	if n.Kind() == "identifier" || n.Kind() == "type_identifier" || n.Kind() == "property_identifier" {
		return n
	}
	for _, c := range Children(n) {
		if found := FirstIdentifier(c); found != nil {
			return found
		}
	}
	return nil
}

// StripQuotes removes a single layer of matching quote characters from a
// string-literal node's text.
func StripQuotes(s string) string {
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if (first == '"' || first == '\'' || first == '`') && first == last {
			return s[1 : len(s)-1]
		}
	}
	return s
}

// Walk visits n and every descendant (named or not) in DFS pre-order.
func Walk(n *sitter.Node, visit func(*sitter.Node)) {
	if n == nil {
		return
	}
	visit(n)
	for _, c := range Children(n) {
		Walk(c, visit)
	}
}
