package docpath

import (
	"fmt"
	"slices"

	"github.com/docpath-format/docpath/debug"
	"github.com/docpath-format/docpath/ir"
	"github.com/docpath-format/docpath/path"
)

// Del erases the value p designates from doc. Deleting the root is
// not expressible through this call; a caller wanting an empty
// document sets it to null instead. Deleting an array index outside
// the current bounds reports the element as not found.
func Del(doc *ir.Node, p path.Path) error {
	if debug.Del() {
		debug.Logf("del %s in %s\n", p, doc)
	}
	if len(p) == 0 {
		return fmt.Errorf("%w: cannot delete the document root", path.ErrInvalidPath)
	}
	parent, err := resolve(doc, p[:len(p)-1])
	if err != nil {
		return err
	}
	last := p[len(p)-1]
	switch s := last.(type) {
	case path.Key:
		if parent.Type != ir.ObjectType {
			return &ir.TypeError{At: p.String(), Want: ir.ObjectType, Got: parent.Type}
		}
		if _, ok := parent.Fields[s.Name]; !ok {
			return &ir.NotFoundError{At: p.String()}
		}
		delete(parent.Fields, s.Name)
		return nil
	case path.Index:
		if parent.Type != ir.ArrayType {
			return &ir.TypeError{At: p.String(), Want: ir.ArrayType, Got: parent.Type}
		}
		eff := s.I
		if eff < 0 {
			eff += len(parent.Values)
		}
		if eff < 0 || eff >= len(parent.Values) {
			return &ir.NotFoundError{At: p.String()}
		}
		parent.Values = slices.Delete(parent.Values, eff, eff+1)
		return nil
	default:
		return fmt.Errorf("%w %s at %s", ir.ErrUnsupported, last, p.String())
	}
}
