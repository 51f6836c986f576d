package unify

import (
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/codelens-dev/codeintel-core/internal/langparse"
	"github.com/codelens-dev/codeintel-core/internal/tsnode"
	"github.com/codelens-dev/codeintel-core/pkg/codeintel"
)

func init() {
	RegisterAdapter(langparse.LangTypeScript, func() Adapter { return &tsAdapter{} })
	RegisterAdapter(langparse.LangJavaScript, func() Adapter { return &tsAdapter{} })
}

// tsAdapter unifies TypeScript/TSX and JavaScript parse trees. The two
// grammars use the same node kind names for everything this adapter
// looks at, so one adapter serves both -- mirrored from the teacher's
// one-extractor-per-language registration but collapsing the two since
// their trees agree at this level of detail.
type tsAdapter struct{}

var functionKinds = map[string]bool{
	"function_declaration": true,
	"function_expression":  true,
	"arrow_function":       true,
	"method_definition":    true,
}

func (a *tsAdapter) ToUnifiedNodes(tree *sitter.Tree, source []byte, path string) ([]*codeintel.UnifiedNode, error) {
	root := tree.RootNode()
	module := codeintel.NewUnifiedNode(codeintel.NodeModule, path, tsnode.Location(root))
	a.walkInto(root, source, module)
	return []*codeintel.UnifiedNode{module}, nil
}

// walkInto recurses raw's children, attaching every convertible node it
// finds under parent and descending into both converted and unconverted
// nodes -- a function body can itself contain nested functions, calls,
// and classes.
func (a *tsAdapter) walkInto(raw *sitter.Node, source []byte, parent *codeintel.UnifiedNode) {
	count := raw.ChildCount()
	for i := uint(0); i < count; i++ {
		child := raw.Child(i)
		if child == nil {
			continue
		}
		if converted, ok := a.ConvertNode(child, source, parent); ok {
			parent.AddChild(converted)
			a.walkInto(child, source, converted)
		} else {
			a.walkInto(child, source, parent)
		}
	}
}

func (a *tsAdapter) ConvertNode(raw *sitter.Node, source []byte, parent *codeintel.UnifiedNode) (*codeintel.UnifiedNode, bool) {
	switch raw.Kind() {
	case "function_declaration", "function_expression", "arrow_function", "method_definition":
		return a.convertFunction(raw, source), true
	case "class_declaration":
		return a.convertClass(raw, source), true
	case "import_statement", "import_declaration":
		return a.convertImport(raw, source), true
	case "call_expression":
		return a.convertCall(raw, source), true
	case "interface_declaration":
		return a.convertNamed(raw, source, codeintel.NodeInterface), true
	case "type_alias_declaration":
		return a.convertNamed(raw, source, codeintel.NodeTypeAlias), true
	case "enum_declaration":
		return a.convertNamed(raw, source, codeintel.NodeEnum), true
	case "variable_declarator":
		return a.convertVariable(raw, source), true
	default:
		return nil, false
	}
}

func (a *tsAdapter) convertFunction(raw *sitter.Node, source []byte) *codeintel.UnifiedNode {
	name := functionName(raw, source)
	n := codeintel.NewUnifiedNode(codeintel.NodeFunction, name, tsnode.Location(raw))
	if raw.Kind() == "method_definition" {
		n.Kind = codeintel.NodeMethod
	}

	if params := tsnode.Field(raw, "parameters"); params != nil {
		n.Parameters = parameterNames(params, source)
	}

	n.IsAsync = tsnode.FirstChildOfKind(raw, "async") != nil
	n.IsStatic = tsnode.FirstChildOfKind(raw, "static") != nil
	n.IsPrivate = strings.HasPrefix(name, "#")

	if rt := tsnode.Field(raw, "return_type"); rt != nil {
		n.ReturnType = strings.TrimPrefix(tsnode.Text(rt, source), ":")
		n.ReturnType = strings.TrimSpace(n.ReturnType)
	}
	return n
}

// functionName recovers a function/method's name, falling back to the
// enclosing variable_declarator's name for an anonymous function or
// arrow expression assigned to a binding (`const f = () => {}`), and to
// codeintel.AnonymousName when neither is available.
func functionName(raw *sitter.Node, source []byte) string {
	if nameNode := tsnode.Field(raw, "name"); nameNode != nil {
		return tsnode.Text(nameNode, source)
	}
	if parent := raw.Parent(); parent != nil && parent.Kind() == "variable_declarator" {
		if nameNode := tsnode.Field(parent, "name"); nameNode != nil {
			return tsnode.Text(nameNode, source)
		}
	}
	if parent := raw.Parent(); parent != nil && parent.Kind() == "assignment_expression" {
		if left := tsnode.Field(parent, "left"); left != nil {
			return tsnode.Text(left, source)
		}
	}
	return codeintel.AnonymousName
}

// parameterNames extracts one name per parameter from a formal_parameters
// node, treating identifier/required_parameter/optional_parameter/
// rest_parameter children as one parameter each, per spec §4.4.
func parameterNames(params *sitter.Node, source []byte) []string {
	var names []string
	for _, c := range tsnode.NamedChildren(params) {
		switch c.Kind() {
		case "identifier", "required_parameter", "optional_parameter", "rest_parameter":
			if id := tsnode.FirstIdentifier(c); id != nil {
				names = append(names, tsnode.Text(id, source))
			} else {
				names = append(names, tsnode.Text(c, source))
			}
		}
	}
	return names
}

func (a *tsAdapter) convertClass(raw *sitter.Node, source []byte) *codeintel.UnifiedNode {
	name := codeintel.AnonymousName
	if nameNode := tsnode.Field(raw, "name"); nameNode != nil {
		name = tsnode.Text(nameNode, source)
	}
	n := codeintel.NewUnifiedNode(codeintel.NodeClass, name, tsnode.Location(raw))

	if heritage := tsnode.FirstChildOfKind(raw, "class_heritage"); heritage != nil {
		if ext := tsnode.FirstChildOfKind(heritage, "extends_clause"); ext != nil {
			if value := tsnode.Field(ext, "value"); value != nil {
				n.SuperClass = tsnode.Text(value, source)
			} else if id := tsnode.FirstIdentifier(ext); id != nil {
				n.SuperClass = tsnode.Text(id, source)
			}
		} else if named := tsnode.NamedChildren(heritage); len(named) > 0 {
			// The JavaScript grammar's class_heritage holds the extends
			// expression directly, with no extends_clause wrapper.
			n.SuperClass = tsnode.Text(named[0], source)
		}
		if impl := tsnode.FirstChildOfKind(heritage, "implements_clause"); impl != nil {
			for _, t := range tsnode.NamedChildren(impl) {
				if id := tsnode.FirstIdentifier(t); id != nil {
					n.Implements = append(n.Implements, tsnode.Text(id, source))
				}
			}
		}
	}

	for _, dec := range tsnode.ChildrenOfKind(raw, "decorator") {
		n.Decorators = append(n.Decorators, tsnode.Text(dec, source))
	}
	return n
}

func (a *tsAdapter) convertImport(raw *sitter.Node, source []byte) *codeintel.UnifiedNode {
	n := codeintel.NewUnifiedNode(codeintel.NodeImport, "", tsnode.Location(raw))

	if src := tsnode.Field(raw, "source"); src != nil {
		n.ImportSource = tsnode.StripQuotes(tsnode.Text(src, source))
	}
	n.Name = n.ImportSource

	clause := tsnode.FirstChildOfKind(raw, "import_clause")
	if clause == nil {
		return n
	}
	for _, c := range tsnode.Children(clause) {
		switch c.Kind() {
		case "identifier":
			n.ImportedSymbols = append(n.ImportedSymbols, tsnode.Text(c, source))
			n.IsDefaultImport = true
		case "namespace_import":
			n.IsNamespaceImport = true
			if id := tsnode.FirstIdentifier(c); id != nil {
				n.ImportedSymbols = append(n.ImportedSymbols, tsnode.Text(id, source))
			}
		case "named_imports":
			for _, spec := range tsnode.ChildrenOfKind(c, "import_specifier") {
				bound := spec
				if alias := tsnode.Field(spec, "alias"); alias != nil {
					bound = alias
				} else if nameField := tsnode.Field(spec, "name"); nameField != nil {
					bound = nameField
				}
				n.ImportedSymbols = append(n.ImportedSymbols, tsnode.Text(bound, source))
			}
		}
	}
	return n
}

func (a *tsAdapter) convertCall(raw *sitter.Node, source []byte) *codeintel.UnifiedNode {
	n := codeintel.NewUnifiedNode(codeintel.NodeCall, "", tsnode.Location(raw))
	if fn := tsnode.Field(raw, "function"); fn != nil {
		n.CalleeTarget = tsnode.Text(fn, source)
	}
	n.Name = n.CalleeTarget
	if args := tsnode.Field(raw, "arguments"); args != nil {
		for _, a := range tsnode.NamedChildren(args) {
			n.ArgumentText = append(n.ArgumentText, tsnode.Text(a, source))
		}
	}
	return n
}

func (a *tsAdapter) convertNamed(raw *sitter.Node, source []byte, kind codeintel.NodeKind) *codeintel.UnifiedNode {
	name := codeintel.AnonymousName
	if nameNode := tsnode.Field(raw, "name"); nameNode != nil {
		name = tsnode.Text(nameNode, source)
	}
	return codeintel.NewUnifiedNode(kind, name, tsnode.Location(raw))
}

func (a *tsAdapter) convertVariable(raw *sitter.Node, source []byte) *codeintel.UnifiedNode {
	name := codeintel.AnonymousName
	if nameNode := tsnode.Field(raw, "name"); nameNode != nil {
		name = tsnode.Text(nameNode, source)
	}
	n := codeintel.NewUnifiedNode(codeintel.NodeVariable, name, tsnode.Location(raw))

	if typ := tsnode.Field(raw, "type"); typ != nil {
		n.TypeAnnotation = strings.TrimSpace(strings.TrimPrefix(tsnode.Text(typ, source), ":"))
	}
	if value := tsnode.Field(raw, "value"); value != nil {
		text := tsnode.Text(value, source)
		if text != name {
			n.Initializer = text
		}
	}
	return n
}

func (a *tsAdapter) ErrorRatio(tree *sitter.Tree) float64 {
	return errorRatio(tree)
}
