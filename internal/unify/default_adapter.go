package unify

import (
	sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/codelens-dev/codeintel-core/pkg/codeintel"
)

// defaultAdapter is returned for any language with no registered Adapter
// (python, per spec §4.1/§4.2, is recognized by detectLanguage but has no
// bundled grammar in this module, so langparse.Parse already rejects
// python files before any adapter runs). It always returns an empty
// unified view and a zero error ratio and never fails.
type defaultAdapter struct{}

func (defaultAdapter) ToUnifiedNodes(tree *sitter.Tree, source []byte, path string) ([]*codeintel.UnifiedNode, error) {
	return nil, nil
}

func (defaultAdapter) ConvertNode(raw *sitter.Node, source []byte, parent *codeintel.UnifiedNode) (*codeintel.UnifiedNode, bool) {
	return nil, false
}

func (defaultAdapter) ErrorRatio(tree *sitter.Tree) float64 {
	return 0
}
