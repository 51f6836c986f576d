// Package metrics implements the metric calculators (component C3):
// cyclomatic complexity, cognitive complexity, maintainability index, and
// the Halstead/LOC primitives that feed it. Every function here walks a
// raw tree-sitter subtree directly (the unified-node tree doesn't retain
// control-flow structure, since if/for/while/ternary aren't tracked
// UnifiedNode kinds -- see DESIGN.md), matching spec §4.3's "computed
// recursively over the tree" framing.
package metrics

import sitter "github.com/tree-sitter/go-tree-sitter"

// cyclomaticIncrementKinds lists the node kinds that each add one path to
// cyclomatic complexity, per spec §4.3. Short-circuit binaries are
// detected separately since tree-sitter folds them into a generic
// binary_expression node disambiguated by its operator token.
var cyclomaticIncrementKinds = map[string]bool{
	"if_statement":          true,
	"switch_case":           true,
	"for_statement":         true,
	"for_in_statement":      true,
	"while_statement":       true,
	"do_statement":          true,
	"catch_clause":          true,
	"ternary_expression":    true,
	"conditional_expression": true, // tree-sitter-typescript's name for ternary
}

// CyclomaticComplexity computes spec §4.3's cyclomatic complexity: base 1
// plus one for every if/case/for/for-in/while/do-while/catch/ternary/
// short-circuit binary in root's subtree (root included).
func CyclomaticComplexity(root *sitter.Node) int {
	if root == nil {
		return 1
	}
	complexity := 1
	var walk func(n *sitter.Node)
	walk = func(n *sitter.Node) {
		if n == nil {
			return
		}
		kind := n.Kind()
		if cyclomaticIncrementKinds[kind] {
			complexity++
		}
		if kind == "binary_expression" && isShortCircuitOperator(n) {
			complexity++
		}
		count := n.ChildCount()
		for i := uint(0); i < count; i++ {
			walk(n.Child(i))
		}
	}
	walk(root)
	return complexity
}

// isShortCircuitOperator reports whether a binary_expression node's
// operator is && or ||. The operator is an anonymous child token between
// the left and right operands.
func isShortCircuitOperator(n *sitter.Node) bool {
	count := n.ChildCount()
	for i := uint(0); i < count; i++ {
		child := n.Child(i)
		if child == nil || child.IsNamed() {
			continue
		}
		switch child.Kind() {
		case "&&", "||":
			return true
		}
	}
	return false
}
