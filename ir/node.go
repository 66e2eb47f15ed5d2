// Package ir contains the in-memory document model.
package ir

import (
	"maps"
	"slices"
	"strconv"
)

// Node is one value in a document tree. Exactly one of the shape
// fields is meaningful, selected by Type: Fields for objects, Values
// for arrays, String/Bool for those scalars, and Int64 or Float64 for
// numbers. Nodes carry no parent pointers; operations that mutate a
// tree re-resolve their target from the root.
type Node struct {
	Type Type

	Fields map[string]*Node
	Values []*Node

	String  string
	Bool    bool
	Float64 *float64
	Int64   *int64
}

func Null() *Node {
	return &Node{Type: NullType}
}

func Object() *Node {
	return &Node{
		Type:   ObjectType,
		Fields: map[string]*Node{},
	}
}

func Array() *Node {
	return &Node{Type: ArrayType}
}

func FromString(v string) *Node {
	return &Node{
		Type:   StringType,
		String: v,
	}
}

func FromInt(v int64) *Node {
	return &Node{
		Type:  NumberType,
		Int64: &v,
	}
}

func FromFloat(f float64) *Node {
	return &Node{
		Type:    NumberType,
		Float64: &f,
	}
}

func FromBool(v bool) *Node {
	return &Node{
		Type: BoolType,
		Bool: v,
	}
}

func FromMap(m map[string]*Node) *Node {
	res := Object()
	for k, v := range m {
		res.Fields[k] = v
	}
	return res
}

func FromSlice(vs []*Node) *Node {
	res := Array()
	res.Values = make([]*Node, len(vs))
	copy(res.Values, vs)
	return res
}

// Get returns the named field of an object node, or nil.
func Get(y *Node, field string) *Node {
	if y.Type != ObjectType {
		return nil
	}
	return y.Fields[field]
}

// Len reports the number of contained elements: fields of an object,
// values of an array, zero otherwise.
func (y *Node) Len() int {
	switch y.Type {
	case ObjectType:
		return len(y.Fields)
	case ArrayType:
		return len(y.Values)
	default:
		return 0
	}
}

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Type = y.Type
	dst.String = y.String
	dst.Bool = y.Bool
	if y.Float64 != nil {
		f := *y.Float64
		dst.Float64 = &f
	}
	if y.Int64 != nil {
		i := *y.Int64
		dst.Int64 = &i
	}
	dst.Fields = nil
	if y.Fields != nil {
		dst.Fields = make(map[string]*Node, len(y.Fields))
		for k, v := range y.Fields {
			dst.Fields[k] = v.Clone()
		}
	}
	dst.Values = nil
	if y.Values != nil {
		dst.Values = make([]*Node, len(y.Values))
		for i, v := range y.Values {
			dst.Values[i] = v.Clone()
		}
	}
	return dst
}

// Equal reports structural equality. Object field order is
// irrelevant. An integer and a float comparing numerically equal are
// not equal: the representation is part of the value.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Type != b.Type {
		return false
	}
	switch a.Type {
	case NullType:
		return true
	case BoolType:
		return a.Bool == b.Bool
	case StringType:
		return a.String == b.String
	case NumberType:
		if (a.Int64 == nil) != (b.Int64 == nil) {
			return false
		}
		if a.Int64 != nil {
			return *a.Int64 == *b.Int64
		}
		if (a.Float64 == nil) != (b.Float64 == nil) {
			return false
		}
		if a.Float64 != nil {
			return *a.Float64 == *b.Float64
		}
		return true
	case ObjectType:
		if len(a.Fields) != len(b.Fields) {
			return false
		}
		for k, av := range a.Fields {
			bv, ok := b.Fields[k]
			if !ok || !Equal(av, bv) {
				return false
			}
		}
		return true
	case ArrayType:
		if len(a.Values) != len(b.Values) {
			return false
		}
		for i := range a.Values {
			if !Equal(a.Values[i], b.Values[i]) {
				return false
			}
		}
		return true
	default:
		panic("type")
	}
}

// SortedFields returns the object field names in sorted order, for
// deterministic encoding and iteration.
func (y *Node) SortedFields() []string {
	return slices.Sorted(maps.Keys(y.Fields))
}

// NumberString renders a number node the way it would appear in JSON.
func (y *Node) NumberString() string {
	if y.Int64 != nil {
		return strconv.FormatInt(*y.Int64, 10)
	}
	if y.Float64 != nil {
		return strconv.FormatFloat(*y.Float64, 'g', -1, 64)
	}
	return "0"
}
