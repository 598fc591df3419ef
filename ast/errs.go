package ast

import "errors"

var (
	// ErrInvalidChild reports a child value that is not a syntax node,
	// e.g. a malformed entry in a record handed to Hydrate.
	ErrInvalidChild = errors.New("invalid child")

	// ErrChildNotFound reports a Replace target absent from the child
	// sequence.
	ErrChildNotFound = errors.New("child not found")

	// ErrNoSourceContext reports a source or file-name lookup on a node
	// built without a token context.
	ErrNoSourceContext = errors.New("no source context")
)
