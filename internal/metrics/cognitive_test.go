package metrics_test

import (
	"testing"

	"github.com/codelens-dev/codeintel-core/internal/langparse"
	"github.com/codelens-dev/codeintel-core/internal/metrics"
)

func TestCognitiveComplexity_NestedIfAddsNestingBonus(t *testing.T) {
	src := []byte(`function f(a, b) {
  if (a) {
    if (b) {
      return 1;
    }
  }
  return 0;
}`)
	p := langparse.New()
	defer p.Close()
	result, err := p.Parse(src, langparse.LangJavaScript, "f.js")
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	fn := findFirst(result.Tree.RootNode(), "function_declaration")
	if fn == nil {
		t.Fatalf("function_declaration not found in parse tree")
	}

	// outer if: +1, +1 nesting bonus (nesting 1) = 2
	// inner if: +1, +2 nesting bonus (nesting 2) = 3
	// inner return: +1
	// outer return: +1
	// total: 7
	if got := metrics.CognitiveComplexity(fn); got != 7 {
		t.Fatalf("CognitiveComplexity() = %d, want 7", got)
	}
}

func TestCognitiveComplexity_FlatIsLowerThanNested(t *testing.T) {
	flat := []byte(`function f(a, b, c) {
  if (a) { return 1; }
  if (b) { return 2; }
  if (c) { return 3; }
  return 0;
}`)
	nested := []byte(`function g(a, b, c) {
  if (a) {
    if (b) {
      if (c) {
        return 1;
      }
    }
  }
  return 0;
}`)

	p := langparse.New()
	defer p.Close()

	flatResult, err := p.Parse(flat, langparse.LangJavaScript, "flat.js")
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	nestedResult, err := p.Parse(nested, langparse.LangJavaScript, "nested.js")
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	flatFn := findFirst(flatResult.Tree.RootNode(), "function_declaration")
	nestedFn := findFirst(nestedResult.Tree.RootNode(), "function_declaration")

	flatScore := metrics.CognitiveComplexity(flatFn)
	nestedScore := metrics.CognitiveComplexity(nestedFn)

	if nestedScore <= flatScore {
		t.Fatalf("expected nested (%d) > flat (%d): cognitive complexity must penalize nesting beyond raw branch count", nestedScore, flatScore)
	}
}
