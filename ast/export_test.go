package ast

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func exportFixture() *Node {
	left := New(nil, "Num").SetAttr("value", 1)
	right := New(nil, "Num").SetAttr("value", 2)
	expr := New(nil, "BinaryExpr").SetAttr("op", "+")
	expr.AppendRelated("left", left)
	expr.AppendRelated("right", right)
	expr.AttachComment(&Comment{Style: "single", Mode: "before", Text: "// sum"})

	arr := New(nil, "ArrayLit")
	arr.Append(nil)
	arr.Append(New(nil, "Num").SetAttr("value", 3))

	root := New(nil, "Script", expr, arr)
	root.SetAttr("strict", true)
	return root
}

func TestExportShape(t *testing.T) {
	rec := exportFixture().Export()

	if rec["kind"] != "Script" {
		t.Errorf(`rec["kind"] = %v`, rec["kind"])
	}
	if _, ok := rec["line"]; ok {
		t.Errorf("synthetic node exported a line")
	}
	if _, ok := rec["start"]; ok {
		t.Errorf("span offsets must not export")
	}
	kids, ok := rec["children"].([]any)
	if !ok || len(kids) != 2 {
		t.Fatalf(`rec["children"] = %v`, rec["children"])
	}
	expr, ok := kids[0].(map[string]any)
	if !ok {
		t.Fatalf("child 0 = %T", kids[0])
	}
	leftRec, ok := expr["left"].(map[string]any)
	if !ok {
		t.Fatalf("related child not exported under its name: %v", expr)
	}
	if leftRec["value"] != 1 {
		t.Errorf(`left value = %v, want 1`, leftRec["value"])
	}
	arr, ok := kids[1].(map[string]any)
	if !ok {
		t.Fatalf("child 1 = %T", kids[1])
	}
	arrKids := arr["children"].([]any)
	if arrKids[0] != nil {
		t.Errorf("elided slot exported as %v, want nil", arrKids[0])
	}
}

func TestExportRoundTrip(t *testing.T) {
	root := exportFixture()

	// Through JSON, so numbers take the float64 detour.
	data, err := json.Marshal(root)
	if err != nil {
		t.Fatal(err)
	}
	rec := map[string]any{}
	if err := json.Unmarshal(data, &rec); err != nil {
		t.Fatal(err)
	}
	back, err := Hydrate(rec)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(root.Export(), back.Export()); diff != "" {
		t.Errorf("round trip changed the tree (-want +got):\n%s", diff)
	}

	// Structure survives, not just the record form.
	if back.Related("") != nil {
		t.Errorf("empty relation appeared")
	}
	expr := findKind(back, "BinaryExpr")
	if expr == nil {
		t.Fatal("BinaryExpr lost in round trip")
	}
	if expr.Related("left") == nil || expr.Related("right") == nil {
		t.Errorf("relations lost: %v", expr.Relations())
	}
	if len(expr.Comments) != 1 || expr.Comments[0].Text != "// sum" {
		t.Errorf("comments lost: %v", expr.Comments)
	}
}

func TestExportSkipsNodeAttr(t *testing.T) {
	brk := New(nil, "Break")
	brk.SetAttr("ref", New(nil, "Label").SetAttr("value", "loop"))

	rec := brk.Export()
	if _, ok := rec["ref"]; ok {
		t.Errorf("bare node attribute exported: %v", rec["ref"])
	}

	back, err := Hydrate(rec)
	if err != nil {
		t.Fatal(err)
	}
	if back.Related("ref") != nil {
		t.Errorf("node attribute came back as a relation")
	}
}

func TestHydrateDeclList(t *testing.T) {
	fn := New(nil, "Function")
	fn.SetAttr("varDecls", []*Node{
		New(nil, "Ident").SetAttr("value", "x"),
		New(nil, "Ident").SetAttr("value", "y"),
	})

	back, err := Hydrate(fn.Export())
	if err != nil {
		t.Fatal(err)
	}
	decls, ok := back.Attrs["varDecls"].([]*Node)
	if !ok {
		t.Fatalf("varDecls hydrated as %T", back.Attrs["varDecls"])
	}
	if len(decls) != 2 || decls[1].StringAttr("value") != "y" {
		t.Errorf("decl list = %v", decls)
	}
}

func TestHydrateErrors(t *testing.T) {
	tests := []struct {
		name string
		rec  map[string]any
	}{
		{"no kind", map[string]any{"value": 1}},
		{"bad child", map[string]any{"kind": "Block", "children": []any{"nope"}}},
		{"bad comment", map[string]any{"kind": "Block", "comments": []any{"nope"}}},
	}
	for _, tt := range tests {
		if _, err := Hydrate(tt.rec); err == nil {
			t.Errorf("%s: Hydrate succeeded, want error", tt.name)
		}
	}
}

func TestToYAML(t *testing.T) {
	out, err := ToYAML(exportFixture())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(out), "kind: Script") {
		t.Errorf("yaml output missing kind:\n%s", out)
	}
}

func findKind(root *Node, kind string) *Node {
	var found *Node
	root.Visit(func(n *Node, isPost bool) (bool, error) {
		if !isPost && found == nil && n.Kind == kind {
			found = n
		}
		return found == nil, nil
	})
	return found
}
