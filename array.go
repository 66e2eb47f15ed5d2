package docpath

import (
	"slices"

	"github.com/docpath-format/docpath/debug"
	"github.com/docpath-format/docpath/ir"
	"github.com/docpath-format/docpath/path"
)

// resolveArray locates the array at p. The creating operations
// (append, prepend, insert) walk with creation enabled and coerce a
// null node or an empty object into an empty array; pop resolves read
// only and coerces nothing.
func resolveArray(doc *ir.Node, p path.Path, create bool) (*ir.Node, error) {
	var (
		node *ir.Node
		err  error
	)
	if create {
		node, err = walkWrite(doc, p, true)
	} else {
		node, err = resolve(doc, p)
	}
	if err != nil {
		return nil, err
	}
	if node.Type == ir.ArrayType {
		return node, nil
	}
	if create && (node.Type == ir.NullType || (node.Type == ir.ObjectType && len(node.Fields) == 0)) {
		node.Type = ir.ArrayType
		node.Fields = nil
		node.Values = nil
		return node, nil
	}
	return nil, &ir.TypeError{At: p.String(), Want: ir.ArrayType, Got: node.Type}
}

// ArrAppend pushes copies of vals to the end of the array at p,
// creating it if absent, and returns the new length.
func ArrAppend(doc *ir.Node, p path.Path, vals ...*ir.Node) (int, error) {
	if debug.Arr() {
		debug.Logf("append %d values at %s\n", len(vals), p)
	}
	arr, err := resolveArray(doc, p, true)
	if err != nil {
		return 0, err
	}
	for _, v := range vals {
		arr.Values = append(arr.Values, v.Clone())
	}
	return len(arr.Values), nil
}

// ArrPrepend inserts copies of vals at the front of the array at p,
// creating it if absent, and returns the new length.
func ArrPrepend(doc *ir.Node, p path.Path, vals ...*ir.Node) (int, error) {
	if debug.Arr() {
		debug.Logf("prepend %d values at %s\n", len(vals), p)
	}
	arr, err := resolveArray(doc, p, true)
	if err != nil {
		return 0, err
	}
	cloned := make([]*ir.Node, len(vals))
	for i, v := range vals {
		cloned[i] = v.Clone()
	}
	arr.Values = append(cloned, arr.Values...)
	return len(arr.Values), nil
}

// ArrPop removes and returns the element at index of the array at p.
// Any negative index resolves from the end, so -1 pops the last
// element. Popping an empty array or an index outside the current
// bounds fails.
func ArrPop(doc *ir.Node, p path.Path, index int) (*ir.Node, error) {
	if debug.Arr() {
		debug.Logf("pop index %d at %s\n", index, p)
	}
	arr, err := resolveArray(doc, p, false)
	if err != nil {
		return nil, err
	}
	eff := index
	if eff < 0 {
		eff += len(arr.Values)
	}
	if eff < 0 || eff >= len(arr.Values) {
		return nil, &ir.BoundsError{At: p.String(), Index: index, Len: len(arr.Values)}
	}
	res := arr.Values[eff]
	arr.Values = slices.Delete(arr.Values, eff, eff+1)
	return res, nil
}

// ArrInsert inserts copies of vals before position index of the array
// at p and returns the new length. A non-negative index past the
// current length fails. Index -1 appends; unlike ArrPop, no other
// negative index is accepted.
func ArrInsert(doc *ir.Node, p path.Path, index int, vals ...*ir.Node) (int, error) {
	if debug.Arr() {
		debug.Logf("insert %d values at index %d at %s\n", len(vals), index, p)
	}
	arr, err := resolveArray(doc, p, true)
	if err != nil {
		return 0, err
	}
	eff := index
	if eff == -1 {
		eff = len(arr.Values)
	}
	if eff < 0 || eff > len(arr.Values) {
		return 0, &ir.BoundsError{At: p.String(), Index: index, Len: len(arr.Values)}
	}
	cloned := make([]*ir.Node, len(vals))
	for i, v := range vals {
		cloned[i] = v.Clone()
	}
	arr.Values = slices.Insert(arr.Values, eff, cloned...)
	return len(arr.Values), nil
}
