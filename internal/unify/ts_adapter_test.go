package unify_test

import (
	"testing"

	"github.com/codelens-dev/codeintel-core/internal/langparse"
	"github.com/codelens-dev/codeintel-core/internal/unify"
	"github.com/codelens-dev/codeintel-core/pkg/codeintel"
)

func parse(t *testing.T, src string, lang langparse.Language, path string) *codeintel.UnifiedNode {
	t.Helper()
	p := langparse.New()
	t.Cleanup(p.Close)
	result, err := p.Parse([]byte(src), lang, path)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	nodes, err := unify.GetAdapter(lang).ToUnifiedNodes(result.Tree, []byte(src), path)
	if err != nil {
		t.Fatalf("ToUnifiedNodes() error: %v", err)
	}
	if len(nodes) != 1 {
		t.Fatalf("ToUnifiedNodes() returned %d roots, want 1", len(nodes))
	}
	return nodes[0]
}

func findByKind(root *codeintel.UnifiedNode, kind codeintel.NodeKind) *codeintel.UnifiedNode {
	var found *codeintel.UnifiedNode
	root.Walk(func(n *codeintel.UnifiedNode) {
		if found == nil && n.Kind == kind {
			found = n
		}
	})
	return found
}

func TestToUnifiedNodes_FunctionDeclaration(t *testing.T) {
	root := parse(t, `function add(a, b) { return a + b; }`, langparse.LangJavaScript, "add.js")

	fn := findByKind(root, codeintel.NodeFunction)
	if fn == nil {
		t.Fatalf("expected a Function node")
	}
	if fn.Name != "add" {
		t.Fatalf("Name = %q, want add", fn.Name)
	}
	if len(fn.Parameters) != 2 || fn.Parameters[0] != "a" || fn.Parameters[1] != "b" {
		t.Fatalf("Parameters = %v, want [a b]", fn.Parameters)
	}
}

func TestToUnifiedNodes_ArrowFunctionNamedFromBinding(t *testing.T) {
	root := parse(t, `const double = (x) => x * 2;`, langparse.LangJavaScript, "double.js")

	fn := findByKind(root, codeintel.NodeFunction)
	if fn == nil {
		t.Fatalf("expected a Function node")
	}
	if fn.Name != "double" {
		t.Fatalf("Name = %q, want double (recovered from enclosing variable_declarator)", fn.Name)
	}
}

func TestToUnifiedNodes_ClassHeritage(t *testing.T) {
	root := parse(t, `class Dog extends Animal { bark() {} }`, langparse.LangJavaScript, "dog.js")

	cls := findByKind(root, codeintel.NodeClass)
	if cls == nil {
		t.Fatalf("expected a Class node")
	}
	if cls.Name != "Dog" {
		t.Fatalf("Name = %q, want Dog", cls.Name)
	}
	if cls.SuperClass != "Animal" {
		t.Fatalf("SuperClass = %q, want Animal", cls.SuperClass)
	}

	method := findByKind(root, codeintel.NodeMethod)
	if method == nil || method.Name != "bark" {
		t.Fatalf("expected a Method node named bark, got %+v", method)
	}
}

func TestToUnifiedNodes_NamedImport(t *testing.T) {
	root := parse(t, `import { readFile as read } from "fs";`, langparse.LangJavaScript, "io.js")

	imp := findByKind(root, codeintel.NodeImport)
	if imp == nil {
		t.Fatalf("expected an Import node")
	}
	if imp.ImportSource != "fs" {
		t.Fatalf("ImportSource = %q, want fs", imp.ImportSource)
	}
	if len(imp.ImportedSymbols) != 1 || imp.ImportedSymbols[0] != "read" {
		t.Fatalf("ImportedSymbols = %v, want [read] (bound name, not original)", imp.ImportedSymbols)
	}
}

func TestToUnifiedNodes_CallExpression(t *testing.T) {
	root := parse(t, `doWork(1, "two");`, langparse.LangJavaScript, "work.js")

	call := findByKind(root, codeintel.NodeCall)
	if call == nil {
		t.Fatalf("expected a Call node")
	}
	if call.CalleeTarget != "doWork" {
		t.Fatalf("CalleeTarget = %q, want doWork", call.CalleeTarget)
	}
	if len(call.ArgumentText) != 2 {
		t.Fatalf("ArgumentText = %v, want 2 entries", call.ArgumentText)
	}
}

func TestGetAdapter_UnregisteredLanguageReturnsEmptyView(t *testing.T) {
	adapter := unify.GetAdapter(langparse.LangPython)
	if adapter.ErrorRatio(nil) != 0 {
		t.Fatalf("default adapter ErrorRatio should be 0")
	}
	nodes, err := adapter.ToUnifiedNodes(nil, nil, "x.py")
	if err != nil || nodes != nil {
		t.Fatalf("default adapter ToUnifiedNodes = %v, %v; want nil, nil", nodes, err)
	}
}
