package token

// Token is one lexical token as a scanner exposes it to the tree builder:
// its kind plus where it sits in the source buffer. The core never produces
// tokens; it only reads the current one off a Context to seed new nodes.
type Token struct {
	Kind  string
	Line  int
	Start int
	End   int
}

// Context is the read-only source state a scanner shares with the tree it
// feeds: the source buffer, its file name, and the scanner's current token
// and line. A Context is shared by every node of a tree and outlives all of
// them; nodes read it for source-text retrieval and never advance it.
type Context struct {
	Source   []byte
	Filename string

	// Token is the scanner's current token, nil between tokens.
	Token *Token

	// Line is the scanner's current 1-based line, used to seed nodes
	// created while no token is active.
	Line int

	nls []int
}

// NewContext builds a Context over source, indexing newline offsets for
// LineCol lookups.
func NewContext(source []byte, filename string) *Context {
	c := &Context{
		Source:   source,
		Filename: filename,
		Line:     1,
	}
	for i, b := range source {
		if b == '\n' {
			c.nls = append(c.nls, i)
		}
	}
	return c
}
