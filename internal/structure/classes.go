package structure

import (
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/codelens-dev/codeintel-core/internal/tsnode"
	"github.com/codelens-dev/codeintel-core/pkg/codeintel"
)

// MethodInfo is one method found inside a class body.
type MethodInfo struct {
	Name           string
	Location       codeintel.SourceLocation
	IsStatic       bool
	IsPrivate      bool
	IsAsync        bool
	ParameterCount int
}

// ClassInfo is one class found by AnalyzeClasses.
type ClassInfo struct {
	Name              string
	Location          codeintel.SourceLocation
	SuperClass        string
	Methods           []*MethodInfo
	PropertyCount     int
	StaticMemberCount int
}

// AnalyzeClasses recursively visits root, recognizing class_declaration
// nodes, per spec §4.4.
func AnalyzeClasses(root *sitter.Node, source []byte) []*ClassInfo {
	var out []*ClassInfo
	tsnode.Walk(root, func(n *sitter.Node) {
		if n.Kind() != "class_declaration" {
			return
		}
		out = append(out, analyzeClass(n, source))
	})
	return out
}

func analyzeClass(n *sitter.Node, source []byte) *ClassInfo {
	info := &ClassInfo{
		Name:     codeintel.AnonymousName,
		Location: tsnode.Location(n),
	}
	if nameNode := tsnode.Field(n, "name"); nameNode != nil {
		info.Name = tsnode.Text(nameNode, source)
	}
	if heritage := tsnode.FirstChildOfKind(n, "class_heritage"); heritage != nil {
		if ext := tsnode.FirstChildOfKind(heritage, "extends_clause"); ext != nil {
			if value := tsnode.Field(ext, "value"); value != nil {
				info.SuperClass = tsnode.Text(value, source)
			} else if id := tsnode.FirstIdentifier(ext); id != nil {
				info.SuperClass = tsnode.Text(id, source)
			}
		} else if named := tsnode.NamedChildren(heritage); len(named) > 0 {
			// The JavaScript grammar's class_heritage holds the extends
			// expression directly, with no extends_clause wrapper.
			info.SuperClass = tsnode.Text(named[0], source)
		}
	}

	body := tsnode.Field(n, "body")
	for _, member := range tsnode.NamedChildren(body) {
		switch member.Kind() {
		case "method_definition":
			method := analyzeMethod(member, source)
			info.Methods = append(info.Methods, method)
			if method.IsStatic {
				info.StaticMemberCount++
			}
		case "field_definition", "public_field_definition":
			info.PropertyCount++
			if tsnode.FirstChildOfKind(member, "static") != nil {
				info.StaticMemberCount++
			}
		}
	}
	return info
}

func analyzeMethod(n *sitter.Node, source []byte) *MethodInfo {
	name := codeintel.AnonymousName
	if nameNode := tsnode.Field(n, "name"); nameNode != nil {
		name = tsnode.Text(nameNode, source)
	}
	return &MethodInfo{
		Name:           name,
		Location:       tsnode.Location(n),
		IsStatic:       tsnode.FirstChildOfKind(n, "static") != nil,
		IsPrivate:      strings.HasPrefix(name, "#"),
		IsAsync:        tsnode.FirstChildOfKind(n, "async") != nil,
		ParameterCount: parameterCount(n),
	}
}
