package ir

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ToJSON serializes a document the way the backing store expects it:
// plain JSON with no framing.
func ToJSON(node *Node) ([]byte, error) {
	return json.Marshal(ToAny(node))
}

// FromJSON parses store bytes into a document. Numbers keep the
// integer/float distinction present in the input.
func FromJSON(d []byte) (*Node, error) {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, fmt.Errorf("trailing data after document")
	}
	return FromAny(v)
}

// ToAny converts a document to the corresponding
// map[string]any / []any / scalar tree.
func ToAny(node *Node) any {
	switch node.Type {
	case ObjectType:
		res := make(map[string]any, len(node.Fields))
		for k, v := range node.Fields {
			res[k] = ToAny(v)
		}
		return res
	case ArrayType:
		res := make([]any, len(node.Values))
		for i, elt := range node.Values {
			res[i] = ToAny(elt)
		}
		return res
	case StringType:
		return node.String
	case NumberType:
		if node.Int64 != nil {
			return *node.Int64
		}
		if node.Float64 != nil {
			return *node.Float64
		}
		return int64(0)
	case BoolType:
		return node.Bool
	case NullType:
		return nil
	default:
		panic("impossible production")
	}
}

// FromAny converts a map[string]any / []any / scalar tree to a
// document. json.Number values are split into integer or float nodes.
func FromAny(v any) (*Node, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case *Node:
		return x.Clone(), nil
	case bool:
		return FromBool(x), nil
	case string:
		return FromString(x), nil
	case int:
		return FromInt(int64(x)), nil
	case int64:
		return FromInt(x), nil
	case uint64:
		if x > 1<<63-1 {
			return FromFloat(float64(x)), nil
		}
		return FromInt(int64(x)), nil
	case float64:
		return FromFloat(x), nil
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return FromInt(i), nil
		}
		f, err := x.Float64()
		if err != nil {
			return nil, fmt.Errorf("bad number %q: %w", x.String(), err)
		}
		return FromFloat(f), nil
	case map[string]any:
		res := Object()
		for k, mv := range x {
			node, err := FromAny(mv)
			if err != nil {
				return nil, err
			}
			res.Fields[k] = node
		}
		return res, nil
	case []any:
		res := Array()
		res.Values = make([]*Node, len(x))
		for i, sv := range x {
			node, err := FromAny(sv)
			if err != nil {
				return nil, err
			}
			res.Values[i] = node
		}
		return res, nil
	default:
		return nil, fmt.Errorf("cannot convert %T to a document node", v)
	}
}

func (y *Node) MarshalJSON() ([]byte, error) {
	return ToJSON(y)
}

func (y *Node) UnmarshalJSON(d []byte) error {
	node, err := FromJSON(d)
	if err != nil {
		return err
	}
	*y = *node
	return nil
}
