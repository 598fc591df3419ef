package ast

import (
	"encoding/json"
	"fmt"
	"math"
	"slices"

	"github.com/goccy/go-yaml"
)

// Keys that never travel through the exported-record form: parent links and
// relation markers are rebuilt on hydration, spans are debugging data, and
// the remainder are claimed by the record layout itself.
var reservedKeys = map[string]bool{
	"kind":     true,
	"line":     true,
	"parent":   true,
	"target":   true,
	"relation": true,
	"start":    true,
	"end":      true,
	"comments": true,
	"children": true,
}

// Export builds a nested record for the node: kind, line (when set), every
// attribute, comments, related children under their relation names, and
// unrelated children in order under "children". Parent links and span
// offsets are deliberately left out; elided slots export as nil entries.
// The record holds only JSON-compatible values, so any generic structured
// encoder can serialize it; a bare *Node attribute (a non-child relation
// like target) is skipped, since relation keys in the record are reserved
// for related children.
func (n *Node) Export() map[string]any {
	rec := map[string]any{"kind": n.Kind}
	if n.Line > 0 {
		rec["line"] = n.Line
	}
	for name, v := range n.Attrs {
		if reservedKeys[name] {
			continue
		}
		if _, ok := v.(*Node); ok {
			continue
		}
		if kids, ok := v.([]*Node); ok {
			elems := make([]any, len(kids))
			for i, kid := range kids {
				elems[i] = kid.Export()
			}
			rec[name] = elems
			continue
		}
		rec[name] = v
	}
	if len(n.Comments) > 0 {
		comments := make([]any, len(n.Comments))
		for i, c := range n.Comments {
			comments[i] = map[string]any{"style": c.Style, "mode": c.Mode, "text": c.Text}
		}
		rec["comments"] = comments
	}
	var kids []any
	for _, c := range n.Children {
		switch {
		case c == nil:
			kids = append(kids, nil)
		case c.Relation != "":
			rec[c.Relation] = c.Export()
		default:
			kids = append(kids, c.Export())
		}
	}
	if kids != nil {
		rec["children"] = kids
	}
	return rec
}

// MarshalJSON serializes the exported record.
func (n *Node) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.Export())
}

// ToYAML serializes the exported record as YAML.
func ToYAML(n *Node) ([]byte, error) {
	return yaml.Marshal(n.Export())
}

// Hydrate rebuilds a node tree from an exported record, reversing Export up
// to the fields Export drops: parent links and relation markers are
// re-derived, spans stay unset. Whole-valued floats normalize to ints so a
// record that went through JSON hydrates to the attributes it was exported
// from.
func Hydrate(rec map[string]any) (*Node, error) {
	kind, _ := rec["kind"].(string)
	if kind == "" {
		return nil, fmt.Errorf("%w: record has no kind", ErrInvalidChild)
	}
	n := &Node{Kind: kind}
	if line, ok := rec["line"]; ok {
		n.Line = toInt(line)
	}
	names := make([]string, 0, len(rec))
	for name := range rec {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		if reservedKeys[name] {
			continue
		}
		v := rec[name]
		if sub, ok := v.(map[string]any); ok {
			kid, err := Hydrate(sub)
			if err != nil {
				return nil, err
			}
			n.AppendRelated(name, kid)
			continue
		}
		attr, err := hydrateAttr(v)
		if err != nil {
			return nil, fmt.Errorf("attribute %s: %w", name, err)
		}
		n.SetAttr(name, attr)
	}
	if comments, ok := rec["comments"].([]any); ok {
		for _, cv := range comments {
			cm, ok := cv.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("%w: malformed comment record", ErrInvalidChild)
			}
			style, _ := cm["style"].(string)
			mode, _ := cm["mode"].(string)
			text, _ := cm["text"].(string)
			n.AttachComment(&Comment{Style: style, Mode: mode, Text: text})
		}
	}
	if kids, ok := rec["children"].([]any); ok {
		for _, kv := range kids {
			if kv == nil {
				n.Append(nil)
				continue
			}
			sub, ok := kv.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("%w: child record is %T", ErrInvalidChild, kv)
			}
			kid, err := Hydrate(sub)
			if err != nil {
				return nil, err
			}
			n.Append(kid)
		}
	}
	return n, nil
}

// hydrateAttr recovers an attribute value: a list of records becomes a
// declaration list, anything else is kept as the scalar it is.
func hydrateAttr(v any) (any, error) {
	switch v := v.(type) {
	case []any:
		if len(v) == 0 {
			return v, nil
		}
		if _, ok := v[0].(map[string]any); !ok {
			return normalizeList(v), nil
		}
		kids := make([]*Node, len(v))
		for i, ev := range v {
			sub, ok := ev.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("%w: list element is %T", ErrInvalidChild, ev)
			}
			kid, err := Hydrate(sub)
			if err != nil {
				return nil, err
			}
			kids[i] = kid
		}
		return kids, nil
	case float64:
		return normalizeNumber(v), nil
	default:
		return v, nil
	}
}

func normalizeList(v []any) []any {
	res := make([]any, len(v))
	for i, ev := range v {
		if f, ok := ev.(float64); ok {
			res[i] = normalizeNumber(f)
			continue
		}
		res[i] = ev
	}
	return res
}

func normalizeNumber(f float64) any {
	if f == math.Trunc(f) && !math.IsInf(f, 0) {
		return int(f)
	}
	return f
}

func toInt(v any) int {
	switch v := v.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return 0
}
