package ast

// SetAttr records an attribute and returns n for chaining. Values are
// scalars (bool, int, float64, string), lists of scalars, or declaration
// lists ([]*Node).
func (n *Node) SetAttr(name string, v any) *Node {
	if n.Attrs == nil {
		n.Attrs = map[string]any{}
	}
	n.Attrs[name] = v
	return n
}

// Attr looks an attribute up by name.
func (n *Node) Attr(name string) (any, bool) {
	v, ok := n.Attrs[name]
	return v, ok
}

// StringAttr returns the named attribute when it holds a string, "" when
// absent or of another type.
func (n *Node) StringAttr(name string) string {
	s, _ := n.Attrs[name].(string)
	return s
}
