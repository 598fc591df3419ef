package encode

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/jstools/go-syntax/ast"
)

// EncState carries the rendering state for one Encode call.
type EncState struct {
	pretty bool
	indent int
	tab    string

	valueLists map[string]bool

	Color func(ColorAttr, string) string
}

// Encode writes the tagged-tree form of node to w. Each node renders as a
// tag named after its kind, attributes as name="jsonQuotedValue" pairs in
// name order, comments and unrelated children nested in document order
// (elided slots as <none/>), and related children wrapped in tags named
// after their relation. Leaf nodes with no children, relations or comments
// self-close.
func Encode(node *ast.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		pretty: true,
		tab:    "  ",
		valueLists: map[string]bool{
			"varDecls": true,
			"funDecls": true,
		},
	}
	for _, opt := range opts {
		opt(es)
	}
	return encode(node, w, es)
}

func encode(n *ast.Node, w io.Writer, es *EncState) error {
	lead, innerLead, lineBreak := "", "", ""
	if es.pretty {
		lead = strings.Repeat(es.tab, es.indent)
		innerLead = strings.Repeat(es.tab, es.indent+1)
		lineBreak = "\n"
	}

	attrs, err := attrString(n, es)
	if err != nil {
		return err
	}

	if len(n.Children) == 0 && len(n.Comments) == 0 {
		return writeString(w, lead+es.color(TagColor, "<"+n.Kind)+attrs+es.color(TagColor, "/>")+lineBreak)
	}

	if err := writeString(w, lead+es.color(TagColor, "<"+n.Kind)+attrs+es.color(TagColor, ">")+lineBreak); err != nil {
		return err
	}

	for _, c := range n.Comments {
		open := fmt.Sprintf(`<comment style="%s" mode="%s">`, c.Style, c.Mode)
		line := innerLead + es.color(CommentColor, open+c.Text+"</comment>") + lineBreak
		if err := writeString(w, line); err != nil {
			return err
		}
	}

	var related []*ast.Node
	for _, kid := range n.Children {
		if kid == nil {
			if err := writeString(w, innerLead+es.color(TagColor, "<none/>")+lineBreak); err != nil {
				return err
			}
			continue
		}
		if kid.Relation == "" {
			inner := *es
			inner.indent = es.indent + 1
			if err := encode(kid, w, &inner); err != nil {
				return err
			}
			continue
		}
		if n.Related(kid.Relation) != kid {
			return fmt.Errorf("%w: child %s of %s is marked related as %q but the parent does not track it",
				ErrSerialize, kid.Kind, n.Kind, kid.Relation)
		}
		related = append(related, kid)
	}

	for _, kid := range related {
		if err := writeString(w, innerLead+es.color(RelationColor, "<"+kid.Relation+">")+lineBreak); err != nil {
			return err
		}
		inner := *es
		inner.indent = es.indent + 2
		if err := encode(kid, w, &inner); err != nil {
			return err
		}
		if err := writeString(w, innerLead+es.color(RelationColor, "</"+kid.Relation+">")+lineBreak); err != nil {
			return err
		}
	}

	return writeString(w, lead+es.color(TagColor, "</"+n.Kind+">")+lineBreak)
}

// Attribute names that never render: the kind is the tag itself, parent and
// target are non-child relations, relation markers are bookkeeping, and
// spans are debugging data.
var reservedAttrs = map[string]bool{
	"kind":     true,
	"parent":   true,
	"comments": true,
	"target":   true,
	"relation": true,
	"start":    true,
	"end":      true,
}

func attrString(n *ast.Node, es *EncState) (string, error) {
	var names []string
	for name := range n.Attrs {
		if reservedAttrs[name] || name == "line" {
			continue
		}
		names = append(names, name)
	}
	if n.Line > 0 {
		names = append(names, "line")
	}
	slices.Sort(names)
	var b strings.Builder
	for _, name := range names {
		var v any
		if name == "line" {
			v = n.Line
		} else {
			v = n.Attrs[name]
		}
		text, ok, err := attrText(name, v, es)
		if err != nil {
			return "", err
		}
		if !ok {
			continue
		}
		quoted, err := jsonQuote(text)
		if err != nil {
			return "", fmt.Errorf("%w: attribute %s: %v", ErrSerialize, name, err)
		}
		b.WriteString(" ")
		b.WriteString(es.color(AttrNameColor, name))
		b.WriteString("=")
		b.WriteString(es.color(AttrValueColor, quoted))
	}
	return b.String(), nil
}

// attrText renders an attribute value to its unquoted text form. The bool
// result is false for values that are skipped entirely (empty lists,
// node-typed values).
func attrText(name string, v any, es *EncState) (string, bool, error) {
	switch v := v.(type) {
	case bool:
		if v {
			return "true", true, nil
		}
		return "false", true, nil
	case string:
		return v, true, nil
	case int:
		return strconv.Itoa(v), true, nil
	case int64:
		return strconv.FormatInt(v, 10), true, nil
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), true, nil
	case *ast.Node:
		// Non-child node relations (e.g. target) render nowhere.
		return "", false, nil
	case []*ast.Node:
		if len(v) == 0 {
			return "", false, nil
		}
		if !es.valueLists[name] {
			return "", false, fmt.Errorf("%w: attribute list %s holds nodes but is not a value list", ErrSerialize, name)
		}
		parts := make([]string, len(v))
		for i, kid := range v {
			val, ok := kid.Attr("value")
			s, isStr := val.(string)
			if !ok || !isStr {
				return "", false, fmt.Errorf("%w: attribute list %s: element %s has no value", ErrSerialize, name, kid.Kind)
			}
			parts[i] = s
		}
		return strings.Join(parts, ","), true, nil
	case []string:
		if len(v) == 0 {
			return "", false, nil
		}
		return strings.Join(v, ","), true, nil
	case []any:
		if len(v) == 0 {
			return "", false, nil
		}
		parts := make([]string, len(v))
		for i, ev := range v {
			s, ok := ev.(string)
			if !ok {
				return "", false, fmt.Errorf("%w: attribute list %s: cannot coerce %T to text", ErrSerialize, name, ev)
			}
			parts[i] = s
		}
		return strings.Join(parts, ","), true, nil
	default:
		return "", false, fmt.Errorf("%w: attribute %s: cannot render %T", ErrSerialize, name, v)
	}
}

// jsonQuote encodes s as a JSON string literal without HTML escaping, so
// angle brackets in attribute values stay readable.
func jsonQuote(s string) (string, error) {
	var b bytes.Buffer
	enc := json.NewEncoder(&b)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return "", err
	}
	return strings.TrimSuffix(b.String(), "\n"), nil
}

func (es *EncState) color(a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(a, s)
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}
