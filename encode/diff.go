package encode

import (
	"bytes"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/jstools/go-syntax/ast"
)

// Diff renders both trees in pretty form and returns a character diff of
// the two texts, with insertions and deletions marked. Handy for golden
// failures in tests and tools.
func Diff(from, to *ast.Node) (string, error) {
	fromBuf := bytes.NewBuffer(nil)
	if err := Encode(from, fromBuf); err != nil {
		return "", err
	}
	toBuf := bytes.NewBuffer(nil)
	if err := Encode(to, toBuf); err != nil {
		return "", err
	}
	dmp := diffpatch.New()
	diffs := dmp.DiffMain(fromBuf.String(), toBuf.String(), false)
	return dmp.DiffPrettyText(diffs), nil
}
