package ast

// Comment is one comment record attached to a node by the parser's
// comment-association pass. The core treats comments as opaque data;
// Style and Mode are vocabulary owned by the parser (e.g. "single" /
// "inline").
type Comment struct {
	Style string
	Mode  string
	Text  string
}

// AttachComment appends c to the node's comment list and returns n for
// chaining.
func (n *Node) AttachComment(c *Comment) *Node {
	n.Comments = append(n.Comments, c)
	return n
}
