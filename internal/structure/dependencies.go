package structure

import (
	sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/codelens-dev/codeintel-core/internal/tsnode"
)

// AnalyzeModuleDependencies collects the source specifier from every
// import_statement/import_declaration, require(...) call, and dynamic
// import(...) expression in root, verbatim and unresolved, per spec §4.4.
// filePath is accepted for symmetry with the spec's contract but unused:
// the specifiers this function returns carry no path information of
// their own to attribute.
func AnalyzeModuleDependencies(root *sitter.Node, source []byte, filePath string) []string {
	var out []string
	tsnode.Walk(root, func(n *sitter.Node) {
		switch n.Kind() {
		case "import_statement", "import_declaration":
			if src := tsnode.Field(n, "source"); src != nil {
				out = append(out, tsnode.StripQuotes(tsnode.Text(src, source)))
			}
		case "call_expression":
			if spec, ok := callDependency(n, source); ok {
				out = append(out, spec)
			}
		}
	})
	return out
}

// callDependency recognizes require("x") and dynamic import("x") calls.
func callDependency(call *sitter.Node, source []byte) (string, bool) {
	fn := tsnode.Field(call, "function")
	if fn == nil {
		return "", false
	}
	isRequire := fn.Kind() == "identifier" && tsnode.Text(fn, source) == "require"
	isDynamicImport := fn.Kind() == "import"
	if !isRequire && !isDynamicImport {
		return "", false
	}

	args := tsnode.Field(call, "arguments")
	if args == nil {
		return "", false
	}
	named := tsnode.NamedChildren(args)
	if len(named) == 0 {
		return "", false
	}
	first := named[0]
	if first.Kind() != "string" {
		return "", false
	}
	return tsnode.StripQuotes(tsnode.Text(first, source)), true
}
