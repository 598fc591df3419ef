package encode

import (
	"bytes"
	"strings"

	"github.com/jstools/go-syntax/ast"
)

// MustString renders node in pretty form, panicking on serialization
// errors. Meant for tests and debugging.
func MustString(node *ast.Node) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}
