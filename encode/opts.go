package encode

type EncodeOption func(*EncState)

// Indent sets the number of spaces per nesting level. Default 2.
func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

// Compact suppresses all insignificant whitespace.
func Compact(v bool) EncodeOption {
	return func(es *EncState) { es.compact = v }
}

// EncodeColors turns on colored output.
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
