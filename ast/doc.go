// Package ast provides the mutable syntax-tree node a parser builds on.
//
// # Overview
//
// A Node is two things at once: an ordered sequence of children, where a
// nil entry stands for a deliberately elided slot, and a bag of named
// attributes and relations. Parsers construct nodes bottom-up with New and
// attach children with Append or AppendRelated, which grows the node's
// source span to cover everything attached. Downstream passes walk the
// result with Visit, look children up by relation name, or serialize the
// whole tree.
//
// # Usage
//
//	ctx := token.NewContext([]byte("1+2;"), "add.js")
//	expr := ast.New(nil, "BinaryExpr")
//	expr.SetAttr("op", "+")
//	expr.AppendRelated("left", ast.New(ctx, "Num"))
//	expr.AppendRelated("right", ast.New(ctx, "Num"))
//
// # Related Packages
//
//   - github.com/jstools/go-syntax/encode - tagged-tree text form
//   - github.com/jstools/go-syntax/token - shared source context
package ast
