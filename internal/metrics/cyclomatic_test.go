package metrics_test

import (
	"testing"

	sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/codelens-dev/codeintel-core/internal/langparse"
	"github.com/codelens-dev/codeintel-core/internal/metrics"
	"github.com/codelens-dev/codeintel-core/internal/tsnode"
)

func findFirst(root *sitter.Node, kind string) *sitter.Node {
	var found *sitter.Node
	tsnode.Walk(root, func(n *sitter.Node) {
		if found == nil && n.Kind() == kind {
			found = n
		}
	})
	return found
}

// TestCyclomaticComplexity_IfAndShortCircuit matches spec §8's end-to-end
// scenario 2: one if and one && inside one function gives cyclomatic
// complexity 3 (base 1 + if + &&).
func TestCyclomaticComplexity_IfAndShortCircuit(t *testing.T) {
	src := []byte(`function f(a, b) {
  if (a && b) {
    return 1;
  }
  return 0;
}`)
	p := langparse.New()
	defer p.Close()
	result, err := p.Parse(src, langparse.LangTypeScript, "a.ts")
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	fn := findFirst(result.Tree.RootNode(), "function_declaration")
	if fn == nil {
		t.Fatalf("function_declaration not found in parse tree")
	}

	if got := metrics.CyclomaticComplexity(fn); got != 3 {
		t.Fatalf("CyclomaticComplexity() = %d, want 3", got)
	}
}

func TestCyclomaticComplexity_MinimumOne(t *testing.T) {
	src := []byte(`function f() { return 1; }`)
	p := langparse.New()
	defer p.Close()
	result, err := p.Parse(src, langparse.LangJavaScript, "f.js")
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	fn := findFirst(result.Tree.RootNode(), "function_declaration")
	if got := metrics.CyclomaticComplexity(fn); got != 1 {
		t.Fatalf("CyclomaticComplexity() = %d, want 1", got)
	}
}
