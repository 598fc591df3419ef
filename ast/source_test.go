package ast

import (
	"errors"
	"testing"

	"github.com/jstools/go-syntax/token"
)

func TestSource(t *testing.T) {
	n := New(ctxAt(t, "a+b;", "Expr", 1, 0, 3), "")
	got, err := n.Source()
	if err != nil {
		t.Fatalf("Source: %v", err)
	}
	if got != "a+b" {
		t.Errorf("Source() = %q, want %q", got, "a+b")
	}
}

func TestSourceOpenBounds(t *testing.T) {
	ctx := token.NewContext([]byte("a+b;"), "test.js")

	n := New(ctx, "Script")
	got, err := n.Source()
	if err != nil {
		t.Fatalf("Source: %v", err)
	}
	if got != "a+b;" {
		t.Errorf("unset bounds: Source() = %q, want whole buffer", got)
	}

	end := 3
	n.End = &end
	if got, _ = n.Source(); got != "a+b" {
		t.Errorf("unset start: Source() = %q, want %q", got, "a+b")
	}

	n.End = nil
	start := 2
	n.Start = &start
	if got, _ = n.Source(); got != "b;" {
		t.Errorf("unset end: Source() = %q, want %q", got, "b;")
	}
}

func TestSourceClampsStaleSpan(t *testing.T) {
	n := New(ctxAt(t, "a+b;", "Expr", 1, 2, 40), "")
	got, err := n.Source()
	if err != nil {
		t.Fatalf("Source: %v", err)
	}
	if got != "b;" {
		t.Errorf("Source() = %q, want %q", got, "b;")
	}

	start, end := 9, 3
	n.Start, n.End = &start, &end
	if got, _ = n.Source(); got != "" {
		t.Errorf("inverted span: Source() = %q, want empty", got)
	}
}

func TestSourceWithoutContext(t *testing.T) {
	n := New(nil, "Num")
	if _, err := n.Source(); !errors.Is(err, ErrNoSourceContext) {
		t.Errorf("Source err = %v, want ErrNoSourceContext", err)
	}
	if _, err := n.FileName(); !errors.Is(err, ErrNoSourceContext) {
		t.Errorf("FileName err = %v, want ErrNoSourceContext", err)
	}
}

func TestFileName(t *testing.T) {
	n := New(token.NewContext(nil, "lib/app.js"), "Script")
	got, err := n.FileName()
	if err != nil {
		t.Fatalf("FileName: %v", err)
	}
	if got != "lib/app.js" {
		t.Errorf("FileName() = %q, want %q", got, "lib/app.js")
	}
}
