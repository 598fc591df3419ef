package ast

import "fmt"

// Source returns the verbatim source text covered by the node's span. An
// unset Start reads from the beginning of the buffer, an unset End to its
// end.
func (n *Node) Source() (string, error) {
	if n.ctx == nil {
		return "", fmt.Errorf("%w: node %q", ErrNoSourceContext, n.Kind)
	}
	src := n.ctx.Source
	start, end := 0, len(src)
	if n.Start != nil {
		start = *n.Start
	}
	if n.End != nil {
		end = *n.End
	}
	// Clamp to the buffer so a stale span yields text, not a panic.
	start = min(max(start, 0), len(src))
	end = min(max(end, start), len(src))
	return string(src[start:end]), nil
}

// FileName returns the file name recorded on the node's source context.
func (n *Node) FileName() (string, error) {
	if n.ctx == nil {
		return "", fmt.Errorf("%w: node %q", ErrNoSourceContext, n.Kind)
	}
	return n.ctx.Filename, nil
}
