package token

import "sort"

// LineCol maps a byte offset in Source to a 1-based line and 0-based
// column. Offsets past the last newline land on the final line.
func (c *Context) LineCol(off int) (int, int) {
	n := len(c.nls)
	i := sort.Search(n, func(j int) bool {
		return c.nls[j] >= off
	})
	if i == 0 {
		return 1, off
	}
	return i + 1, off - c.nls[i-1] - 1
}
