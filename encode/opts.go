package encode

// EncodeOption configures one Encode call.
type EncodeOption func(*EncState)

// Pretty toggles indentation and line breaks. Off, the whole tree renders
// on one line.
func Pretty(v bool) EncodeOption {
	return func(es *EncState) { es.pretty = v }
}

// Indent sets the starting indentation depth.
func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

// Tab sets the indentation unit, two spaces by default.
func Tab(s string) EncodeOption {
	return func(es *EncState) { es.tab = s }
}

// ValueLists names the attribute lists whose elements are nodes carrying a
// "value" attribute (declaration lists); they render as the comma-joined
// values. Defaults to varDecls and funDecls.
func ValueLists(names ...string) EncodeOption {
	return func(es *EncState) {
		es.valueLists = map[string]bool{}
		for _, name := range names {
			es.valueLists[name] = true
		}
	}
}

// EncodeColors enables colored output. A nil Colors leaves output plain.
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) {
		if c != nil {
			es.Color = c.Color
		}
	}
}
