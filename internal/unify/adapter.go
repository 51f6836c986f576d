// Package unify converts a language's concrete tree-sitter syntax tree
// into the language-neutral codeintel.UnifiedNode tree. One Adapter per
// language, registered the same way the teacher repo registers a
// language's Extractor: an init()-time call into a package-level,
// map-based registry keyed by language, looked up by the orchestrator
// rather than switched on inline.
package unify

import (
	sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/codelens-dev/codeintel-core/internal/langparse"
	"github.com/codelens-dev/codeintel-core/internal/tsnode"
	"github.com/codelens-dev/codeintel-core/pkg/codeintel"
)

// Adapter converts one language's parse tree into UnifiedNodes.
type Adapter interface {
	// ToUnifiedNodes returns the module root and every descendant it
	// recognizes, for the file at path.
	ToUnifiedNodes(tree *sitter.Tree, source []byte, path string) ([]*codeintel.UnifiedNode, error)

	// ConvertNode converts one raw node into a UnifiedNode attached under
	// parent, reporting false when the node is not one of the adapter's
	// tracked kinds -- the caller then recurses into the node's children
	// instead of treating it as a leaf.
	ConvertNode(raw *sitter.Node, source []byte, parent *codeintel.UnifiedNode) (*codeintel.UnifiedNode, bool)

	// ErrorRatio reports the fraction of error nodes in tree.
	ErrorRatio(tree *sitter.Tree) float64
}

var adapters = make(map[langparse.Language]func() Adapter)

// RegisterAdapter registers factory as the Adapter for lang. Later
// registrations for the same language replace earlier ones, matching the
// teacher's RegisterExtractor/RegisterLanguage idiom.
func RegisterAdapter(lang langparse.Language, factory func() Adapter) {
	adapters[lang] = factory
}

// GetAdapter returns the registered Adapter for lang, or the default
// no-op adapter if none is registered -- spec §4.2's "default adapter for
// unsupported languages returns an empty unified view".
func GetAdapter(lang langparse.Language) Adapter {
	if factory, ok := adapters[lang]; ok {
		return factory()
	}
	return &defaultAdapter{}
}

// errorRatio is the shared error-node-counting walk used by every
// adapter's ErrorRatio implementation.
func errorRatio(tree *sitter.Tree) float64 {
	if tree == nil {
		return 0
	}
	total, errorNodes := 0, 0
	tsnode.Walk(tree.RootNode(), func(n *sitter.Node) {
		total++
		if n.Kind() == "ERROR" || n.IsError() || n.IsMissing() {
			errorNodes++
		}
	})
	if total == 0 {
		return 0
	}
	return float64(errorNodes) / float64(total)
}
