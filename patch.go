package syntax

import (
	"encoding/json"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/jstools/go-syntax/ast"
	"github.com/jstools/go-syntax/debug"
)

// PatchTree applies an RFC 6902 JSON patch to the exported form of root
// and hydrates the result as a new tree. The input tree is left untouched;
// like Export, the result carries no spans.
func PatchTree(root *ast.Node, patch []byte) (*ast.Node, error) {
	p, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return nil, err
	}
	doc, err := json.Marshal(root)
	if err != nil {
		return nil, err
	}
	out, err := p.Apply(doc)
	if err != nil {
		return nil, err
	}
	return hydrateJSON(root, out)
}

// MergeTree applies an RFC 7386 merge patch to the exported form of root
// and hydrates the result as a new tree.
func MergeTree(root *ast.Node, patch []byte) (*ast.Node, error) {
	doc, err := json.Marshal(root)
	if err != nil {
		return nil, err
	}
	out, err := jsonpatch.MergePatch(doc, patch)
	if err != nil {
		return nil, err
	}
	return hydrateJSON(root, out)
}

func hydrateJSON(root *ast.Node, doc []byte) (*ast.Node, error) {
	rec := map[string]any{}
	if err := json.Unmarshal(doc, &rec); err != nil {
		return nil, err
	}
	res, err := ast.Hydrate(rec)
	if err != nil {
		return nil, err
	}
	if debug.Patch() {
		debug.Logf("patched %s into:\n%v\n", root.Kind, res)
	}
	return res, nil
}
