// Package encode renders IR nodes as JSON text, with indentation and
// color for human-facing output. Wire-bound serialization goes
// through ir.ToJSON instead.
package encode

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/docpath-format/docpath/ir"
)

type EncState struct {
	indent  int
	compact bool

	Color func(ir.Type, ColorAttr, string) string
}

func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	if err := encode(node, w, es, 0); err != nil {
		return err
	}
	return writeString(w, "\n")
}

func encode(node *ir.Node, w io.Writer, es *EncState, depth int) error {
	switch node.Type {
	case ir.NullType:
		return writeString(w, es.color(ir.NullType, ValueColor, "null"))
	case ir.BoolType:
		v := "false"
		if node.Bool {
			v = "true"
		}
		return writeString(w, es.color(ir.BoolType, ValueColor, v))
	case ir.NumberType:
		return writeString(w, es.color(ir.NumberType, ValueColor, node.NumberString()))
	case ir.StringType:
		return writeString(w, es.color(ir.StringType, ValueColor, quote(node.String)))
	case ir.ArrayType:
		return encodeArray(node, w, es, depth)
	case ir.ObjectType:
		return encodeObject(node, w, es, depth)
	default:
		panic("type")
	}
}

func encodeArray(node *ir.Node, w io.Writer, es *EncState, depth int) error {
	open := es.color(ir.ArrayType, SepColor, "[")
	closing := es.color(ir.ArrayType, SepColor, "]")
	if len(node.Values) == 0 {
		return writeString(w, open+closing)
	}
	if err := writeString(w, open); err != nil {
		return err
	}
	for i, elt := range node.Values {
		if err := es.writeSep(w, ir.ArrayType, i, depth+1); err != nil {
			return err
		}
		if err := encode(elt, w, es, depth+1); err != nil {
			return err
		}
	}
	if err := es.writeClose(w, depth); err != nil {
		return err
	}
	return writeString(w, closing)
}

func encodeObject(node *ir.Node, w io.Writer, es *EncState, depth int) error {
	open := es.color(ir.ObjectType, SepColor, "{")
	closing := es.color(ir.ObjectType, SepColor, "}")
	if len(node.Fields) == 0 {
		return writeString(w, open+closing)
	}
	if err := writeString(w, open); err != nil {
		return err
	}
	colon := es.color(ir.ObjectType, SepColor, ":")
	if !es.compact {
		colon += " "
	}
	for i, k := range node.SortedFields() {
		if err := es.writeSep(w, ir.ObjectType, i, depth+1); err != nil {
			return err
		}
		if err := writeString(w, es.color(ir.ObjectType, FieldColor, quote(k))+colon); err != nil {
			return err
		}
		if err := encode(node.Fields[k], w, es, depth+1); err != nil {
			return err
		}
	}
	if err := es.writeClose(w, depth); err != nil {
		return err
	}
	return writeString(w, closing)
}

// writeSep writes the separator before element i of a container at
// the given depth: a comma for all but the first, then a newline and
// indentation unless compact.
func (es *EncState) writeSep(w io.Writer, t ir.Type, i, depth int) error {
	s := ""
	if i > 0 {
		s = es.color(t, SepColor, ",")
	}
	if !es.compact {
		s += "\n" + strings.Repeat(" ", es.indent*depth)
	}
	return writeString(w, s)
}

func (es *EncState) writeClose(w io.Writer, depth int) error {
	if es.compact {
		return nil
	}
	return writeString(w, "\n"+strings.Repeat(" ", es.indent*depth))
}

func (es *EncState) color(t ir.Type, a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(t, a, s)
}

func quote(s string) string {
	d, err := json.Marshal(s)
	if err != nil {
		// marshaling a string cannot fail
		panic(err)
	}
	return string(d)
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}
