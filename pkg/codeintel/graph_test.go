package codeintel_test

import (
	"testing"

	"github.com/codelens-dev/codeintel-core/pkg/codeintel"
)

func TestAddEdge_MaintainsInverseImportedBy(t *testing.T) {
	g := codeintel.NewDependencyGraph()
	g.AddEdge("a.ts", "b.ts")

	a := g.Nodes["a.ts"]
	b := g.Nodes["b.ts"]
	if len(a.Imports) != 1 || a.Imports[0] != "b.ts" {
		t.Fatalf("a.Imports = %v, want [b.ts]", a.Imports)
	}
	if len(b.ImportedBy) != 1 || b.ImportedBy[0] != "a.ts" {
		t.Fatalf("b.ImportedBy = %v, want [a.ts]", b.ImportedBy)
	}
}

func TestAddEdge_SelfImportProducesLengthOneCycle(t *testing.T) {
	g := codeintel.NewDependencyGraph()
	g.AddEdge("a.ts", "a.ts")

	cycles := g.GetCircularDependencies()
	if len(cycles) != 1 {
		t.Fatalf("expected exactly one cycle, got %v", cycles)
	}
	if len(cycles[0]) != 2 || cycles[0][0] != "a.ts" || cycles[0][1] != "a.ts" {
		t.Fatalf("cycle = %v, want [a.ts a.ts]", cycles[0])
	}
}

func TestGetCircularDependencies_NormalizesRotationToLexicographicMinimum(t *testing.T) {
	g1 := codeintel.NewDependencyGraph()
	g1.AddEdge("b.ts", "c.ts")
	g1.AddEdge("c.ts", "a.ts")
	g1.AddEdge("a.ts", "b.ts")

	g2 := codeintel.NewDependencyGraph()
	g2.AddEdge("a.ts", "b.ts")
	g2.AddEdge("b.ts", "c.ts")
	g2.AddEdge("c.ts", "a.ts")

	c1 := g1.GetCircularDependencies()
	c2 := g2.GetCircularDependencies()
	if len(c1) != 1 || len(c2) != 1 {
		t.Fatalf("expected one cycle each, got %v and %v", c1, c2)
	}
	if len(c1[0]) != len(c2[0]) {
		t.Fatalf("cycle lengths differ: %v vs %v", c1[0], c2[0])
	}
	for i := range c1[0] {
		if c1[0][i] != c2[0][i] {
			t.Fatalf("cycles not normalized to the same rotation: %v vs %v", c1[0], c2[0])
		}
	}
}

func TestComputeInstability_ZeroWhenNoEdges(t *testing.T) {
	g := codeintel.NewDependencyGraph()
	g.EnsureNode("isolated.ts")
	g.ComputeInstability()

	n := g.Nodes["isolated.ts"]
	if n.Instability == nil || *n.Instability != 0 {
		t.Fatalf("Instability = %v, want 0", n.Instability)
	}
}

func TestComputeInstability_PureImporterIsMaximallyUnstable(t *testing.T) {
	g := codeintel.NewDependencyGraph()
	g.AddEdge("consumer.ts", "utils.ts")
	g.ComputeInstability()

	consumer := g.Nodes["consumer.ts"]
	if consumer.Instability == nil || *consumer.Instability != 1 {
		t.Fatalf("consumer.Instability = %v, want 1", consumer.Instability)
	}

	utils := g.Nodes["utils.ts"]
	if utils.Instability == nil || *utils.Instability != 0 {
		t.Fatalf("utils.Instability = %v, want 0", utils.Instability)
	}
}
