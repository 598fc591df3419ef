// Package encode renders syntax trees in their tagged-tree text form.
//
// # Usage
//
//	// Pretty, to stdout, colored when stdout is a terminal
//	err := encode.Encode(node, os.Stdout,
//	    encode.EncodeColors(encode.AutoColors(os.Stdout)))
//
//	// Single line
//	err := encode.Encode(node, &buf, encode.Pretty(false))
//
// # Related Packages
//
//   - github.com/jstools/go-syntax/ast - the node model
package encode
