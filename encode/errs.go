package encode

import "errors"

// ErrSerialize reports a tree that cannot be rendered: an attribute list
// that cannot be coerced to text, or relation bookkeeping that does not
// line up between a child and its parent. Serialization has no partial
// success; the first such error aborts the dump.
var ErrSerialize = errors.New("serialize error")
