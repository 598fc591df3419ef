package ast

// Visit walks the subtree rooted at n, calling f twice per node: once
// before its children (isPost false) and once after (isPost true). A false
// return from the pre call skips the children; elided slots are skipped.
func (n *Node) Visit(f func(n *Node, isPost bool) (bool, error)) error {
	dive, err := f(n, false)
	if err != nil {
		return err
	}
	if dive {
		for _, kid := range n.Children {
			if kid == nil {
				continue
			}
			if err := kid.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(n, true); err != nil {
		return err
	}
	return nil
}
