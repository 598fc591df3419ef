// Package query selects nodes from a syntax tree by expression. Linters
// and rewriting passes use it to pick out nodes by kind, line, or any
// attribute the parser attached.
package query

import (
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/jstools/go-syntax/ast"
	"github.com/jstools/go-syntax/debug"
)

// Select compiles src once and collects, in visit order, every node for
// which it evaluates to true. Each node is evaluated against an environment
// holding kind, line, node (the *ast.Node itself) and the node's
// attributes; names undefined for a node evaluate as nil.
//
//	nums, err := query.Select(root, `kind == "Num" && value > 1`)
func Select(root *ast.Node, src string) ([]*ast.Node, error) {
	prg, err := expr.Compile(src, expr.AllowUndefinedVariables(), expr.AsBool())
	if err != nil {
		return nil, err
	}
	var out []*ast.Node
	err = root.Visit(func(n *ast.Node, isPost bool) (bool, error) {
		if isPost {
			return true, nil
		}
		ok, err := matches(prg, n)
		if err != nil {
			return false, err
		}
		if ok {
			if debug.Query() {
				debug.Logf("query hit %s at line %d\n", n.Kind, n.Line)
			}
			out = append(out, n)
		}
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// First returns the first node matching src in visit order, nil when
// nothing matches.
func First(root *ast.Node, src string) (*ast.Node, error) {
	nodes, err := Select(root, src)
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, nil
	}
	return nodes[0], nil
}

func matches(prg *vm.Program, n *ast.Node) (bool, error) {
	env := map[string]any{
		"kind": n.Kind,
		"line": n.Line,
		"node": n,
	}
	for name, v := range n.Attrs {
		env[name] = v
	}
	res, err := expr.Run(prg, env)
	if err != nil {
		return false, err
	}
	b, _ := res.(bool)
	return b, nil
}
