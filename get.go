package docpath

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/docpath-format/docpath/debug"
	"github.com/docpath-format/docpath/ir"
	"github.com/docpath-format/docpath/path"
)

// resolve walks every segment of p from doc, read only. The returned
// node is the live node inside the tree.
func resolve(doc *ir.Node, p path.Path) (*ir.Node, error) {
	cur := doc
	for i, seg := range p {
		switch s := seg.(type) {
		case path.Key:
			if cur.Type != ir.ObjectType {
				return nil, &ir.TypeError{At: p.Prefix(i + 1), Want: ir.ObjectType, Got: cur.Type}
			}
			next, ok := cur.Fields[s.Name]
			if !ok {
				return nil, &ir.NotFoundError{At: p.Prefix(i + 1)}
			}
			cur = next
		case path.Index:
			if cur.Type != ir.ArrayType {
				return nil, &ir.TypeError{At: p.Prefix(i + 1), Want: ir.ArrayType, Got: cur.Type}
			}
			eff := s.I
			if eff < 0 {
				eff += len(cur.Values)
			}
			if eff < 0 || eff >= len(cur.Values) {
				return nil, &ir.BoundsError{At: p.Prefix(i + 1), Index: s.I, Len: len(cur.Values)}
			}
			cur = cur.Values[eff]
		default:
			return nil, fmt.Errorf("%w %s at %s", ir.ErrUnsupported, seg, p.Prefix(i+1))
		}
	}
	return cur, nil
}

// Get returns a copy of the value p designates. An empty path returns
// the whole document. Get never mutates doc.
func Get(doc *ir.Node, p path.Path) (*ir.Node, error) {
	if debug.Get() {
		debug.Logf("get %s in %s\n", p, doc)
	}
	node, err := resolve(doc, p)
	if err != nil {
		return nil, err
	}
	return node.Clone(), nil
}

// Exists reports whether p resolves against doc. The empty path
// exists unless the document is null.
func Exists(doc *ir.Node, p path.Path) bool {
	if len(p) == 0 {
		return doc.Type != ir.NullType
	}
	_, err := resolve(doc, p)
	if err == nil {
		return true
	}
	if errors.Is(err, ir.ErrPathNotFound) ||
		errors.Is(err, ir.ErrIndexOutOfBounds) ||
		errors.Is(err, ir.ErrTypeMismatch) {
		return false
	}
	return true
}

// TypeOf returns the kind of the node p designates.
func TypeOf(doc *ir.Node, p path.Path) (ir.Type, error) {
	node, err := resolve(doc, p)
	if err != nil {
		return 0, err
	}
	return node.Type, nil
}

// SizeOf returns the element count of a container, the character
// length of a string, 0 for null, and 1 for any other scalar.
func SizeOf(doc *ir.Node, p path.Path) (int, error) {
	node, err := resolve(doc, p)
	if err != nil {
		return 0, err
	}
	switch node.Type {
	case ir.ObjectType:
		return len(node.Fields), nil
	case ir.ArrayType:
		return len(node.Values), nil
	case ir.StringType:
		return utf8.RuneCountInString(node.String), nil
	case ir.NullType:
		return 0, nil
	default:
		return 1, nil
	}
}
