package metrics

import sitter "github.com/tree-sitter/go-tree-sitter"

// cognitiveIncrementKinds are the "increment structures" of spec §4.3's
// cognitive-complexity algorithm: each occurrence adds 1, plus the
// current nesting level when nested inside another nesting structure.
// Note this differs from cyclomaticIncrementKinds: switch contributes
// once per switch_statement here, not once per case.
var cognitiveIncrementKinds = map[string]bool{
	"if_statement":           true,
	"ternary_expression":     true,
	"conditional_expression": true,
	"switch_statement":       true,
	"for_statement":          true,
	"for_in_statement":       true,
	"while_statement":        true,
	"do_statement":           true,
	"catch_clause":           true,
}

// cognitiveNestingKinds are "nesting structures": every increment
// structure, plus functions/methods/arrows, each of which raises the
// nesting level for their body.
var cognitiveNestingKinds = map[string]bool{
	"if_statement":            true,
	"ternary_expression":      true,
	"conditional_expression":  true,
	"switch_statement":        true,
	"for_statement":           true,
	"for_in_statement":        true,
	"while_statement":         true,
	"do_statement":            true,
	"catch_clause":            true,
	"function_declaration":    true,
	"function_expression":     true,
	"arrow_function":          true,
	"method_definition":       true,
}

var flowBreakKinds = map[string]bool{
	"return_statement":   true,
	"throw_statement":    true,
	"break_statement":    true,
	"continue_statement": true,
}

// CognitiveComplexity computes spec §4.3's cognitive complexity over
// root's subtree, using DFS pre-order so the nesting-level bonus for a
// nested structure always reflects the level at entry, as required.
func CognitiveComplexity(root *sitter.Node) int {
	score := 0
	var walk func(n *sitter.Node, nesting int)
	walk = func(n *sitter.Node, nesting int) {
		if n == nil {
			return
		}
		kind := n.Kind()

		if cognitiveIncrementKinds[kind] {
			score++
			if nesting > 0 {
				score += nesting
			}
		}
		if flowBreakKinds[kind] {
			score++
		}

		childNesting := nesting
		if cognitiveNestingKinds[kind] {
			childNesting = nesting + 1
		}

		count := n.ChildCount()
		for i := uint(0); i < count; i++ {
			walk(n.Child(i), childNesting)
		}
	}
	walk(root, 0)
	return score
}
