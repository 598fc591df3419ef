package token

import "testing"

func TestLineCol(t *testing.T) {
	c := NewContext([]byte("ab\ncd\nef"), "test.js")
	tests := []struct {
		off       int
		line, col int
	}{
		{0, 1, 0},
		{1, 1, 1},
		{2, 1, 2}, // the newline itself
		{3, 2, 0},
		{4, 2, 1},
		{6, 3, 0},
		{7, 3, 1},
	}
	for _, tt := range tests {
		line, col := c.LineCol(tt.off)
		if line != tt.line || col != tt.col {
			t.Errorf("LineCol(%d) = (%d, %d), want (%d, %d)", tt.off, line, col, tt.line, tt.col)
		}
	}
}

func TestLineColNoNewlines(t *testing.T) {
	c := NewContext([]byte("abc"), "test.js")
	line, col := c.LineCol(2)
	if line != 1 || col != 2 {
		t.Errorf("LineCol(2) = (%d, %d), want (1, 2)", line, col)
	}
}
