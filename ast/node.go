package ast

import (
	"fmt"

	"github.com/jstools/go-syntax/token"
)

// Node is one vertex of a syntax tree.
type Node struct {
	// Kind is the syntactic category ("Block", "BinaryExpr", ...). It is
	// set at construction and never changes.
	Kind string

	// Line is the 1-based source line the node was created at, 0 for
	// synthetic nodes.
	Line int

	// Start and End are byte offsets into the source buffer, nil when
	// unknown. Append keeps them as the minimal span covering the node
	// and every span-bearing child.
	Start *int
	End   *int

	// Parent is a non-owning back-reference, set on attachment. It is
	// never serialized.
	Parent      *Node
	ParentIndex int

	// Relation is the name under which this node hangs off its parent,
	// "" for purely positional children.
	Relation string

	// Children is the ordered child sequence. A nil entry is an elided
	// slot, e.g. a skipped array element.
	Children []*Node

	// Attrs carries scalar attributes (bool, int, float64, string), lists
	// of scalars, or declaration lists ([]*Node).
	Attrs map[string]any

	Comments []*Comment

	rels map[string]int
	ctx  *token.Context
}

// New creates a node. When ctx has an active token the node is seeded from
// it: kind defaults to the token's kind unless overridden, and line, start
// and end are copied over. With a ctx but no active token only the line is
// seeded. With no ctx the node is synthetic and has no source capability.
// kids are appended in order under the Append rules.
func New(ctx *token.Context, kind string, kids ...*Node) *Node {
	n := &Node{Kind: kind}
	if ctx != nil {
		n.ctx = ctx
		if tok := ctx.Token; tok != nil {
			if kind == "" {
				n.Kind = tok.Kind
			}
			n.Line = tok.Line
			start, end := tok.Start, tok.End
			n.Start = &start
			n.End = &end
		} else {
			n.Line = ctx.Line
		}
	}
	for _, kid := range kids {
		n.Append(kid)
	}
	return n
}

// Append adds kid to the child sequence and grows the node's span to cover
// it. A nil kid appends an elided slot. Returns n for chaining.
func (n *Node) Append(kid *Node) *Node {
	n.append(kid, "")
	return n
}

// AppendRelated appends kid under the relation name rel. The kid is
// recorded both positionally in Children and in the relation map, and
// carries rel in its own Relation field. A nil kid is a no-op: a relation
// cannot point at an absent child. Returns n for chaining.
func (n *Node) AppendRelated(rel string, kid *Node) *Node {
	n.append(kid, rel)
	return n
}

func (n *Node) append(kid *Node, rel string) {
	if kid == nil {
		if rel == "" {
			n.Children = append(n.Children, nil)
		}
		return
	}
	n.growSpan(kid)
	kid.Parent = n
	kid.ParentIndex = len(n.Children)
	if rel != "" {
		kid.Relation = rel
		if n.rels == nil {
			n.rels = map[string]int{}
		}
		n.rels[rel] = len(n.Children)
	}
	n.Children = append(n.Children, kid)
}

func (n *Node) growSpan(kid *Node) {
	if kid.Start != nil && (n.Start == nil || *kid.Start < *n.Start) {
		start := *kid.Start
		n.Start = &start
	}
	if kid.End != nil && (n.End == nil || *kid.End > *n.End) {
		end := *kid.End
		n.End = &end
	}
}

// Replace substitutes repl for kid at kid's position in the child sequence
// and returns the detached kid. If kid held a relation name, repl takes it
// over and kid's marker is cleared; the detached kid also loses its parent
// link so it cannot stay reachable from two parents. A nil repl turns the
// position into an elided slot, dropping kid's relation if it had one.
//
// Spans are not re-derived from repl; keeping Start/End consistent after a
// replacement is the caller's concern.
func (n *Node) Replace(kid, repl *Node) (*Node, error) {
	idx := -1
	for i, c := range n.Children {
		if c == kid {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("%w: no %s in %s", ErrChildNotFound, kindOf(kid), n.Kind)
	}
	n.Children[idx] = repl
	if repl != nil {
		repl.Parent = n
		repl.ParentIndex = idx
	}
	if kid != nil && kid.Relation != "" {
		// Transfer the relation only when the parent tracks it; a marker
		// set without the bookkeeping is dropped rather than trusted.
		if i, ok := n.rels[kid.Relation]; ok && i == idx {
			if repl != nil {
				repl.Relation = kid.Relation
				n.rels[kid.Relation] = idx
			} else {
				delete(n.rels, kid.Relation)
			}
		}
		kid.Relation = ""
	}
	if kid != nil {
		kid.Parent = nil
	}
	return kid, nil
}

func kindOf(n *Node) string {
	if n == nil {
		return "<none>"
	}
	return n.Kind
}

// Related returns the child appended under rel, or nil.
func (n *Node) Related(rel string) *Node {
	i, ok := n.rels[rel]
	if !ok {
		return nil
	}
	return n.Children[i]
}

// Relations returns the relation names in use mapped to their children.
// The map is a fresh copy; mutating it does not affect the node.
func (n *Node) Relations() map[string]*Node {
	if len(n.rels) == 0 {
		return nil
	}
	res := make(map[string]*Node, len(n.rels))
	for rel, i := range n.rels {
		res[rel] = n.Children[i]
	}
	return res
}

// UnrelatedChildren collects the children that carry no relation name,
// elided slots included. This is the structural sequence generic walks and
// serializers use; related children are rendered separately under their
// names.
func (n *Node) UnrelatedChildren() []*Node {
	kids := make([]*Node, 0, len(n.Children))
	for _, c := range n.Children {
		if c == nil || c.Relation == "" {
			kids = append(kids, c)
		}
	}
	return kids
}

// ChildCount counts child positions, elided slots included. With
// onlyUnrelated it skips children held under a relation name.
func (n *Node) ChildCount(onlyUnrelated bool) int {
	if !onlyUnrelated {
		return len(n.Children)
	}
	count := 0
	for _, c := range n.Children {
		if c == nil || c.Relation == "" {
			count++
		}
	}
	return count
}

// Root walks parent links to the tree's root.
func (n *Node) Root() *Node {
	res := n
	for res.Parent != nil {
		res = res.Parent
	}
	return res
}

// Context returns the source context the node was built from, nil for
// synthetic nodes.
func (n *Node) Context() *token.Context {
	return n.ctx
}
