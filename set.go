package docpath

import (
	"fmt"

	"github.com/docpath-format/docpath/debug"
	"github.com/docpath-format/docpath/ir"
	"github.com/docpath-format/docpath/path"
)

type setConfig struct {
	Create    bool
	Overwrite bool
}

type SetOption func(*setConfig)

// SetCreate controls whether missing intermediate containers are
// instantiated while walking toward the target. Default true.
func SetCreate(v bool) SetOption {
	return func(c *setConfig) { c.Create = v }
}

// SetOverwrite controls whether an existing value at the target is
// replaced. When false, Set on an occupied location is a no-op.
// Default true.
func SetOverwrite(v bool) SetOption {
	return func(c *setConfig) { c.Overwrite = v }
}

// Set writes a copy of val at the location p designates in doc.
//
// With creation enabled, a null node met on the way is instantiated
// as an empty object or array according to the segment about to
// descend it, and a final array index at or beyond the current length
// appends, padding the gap with nulls. Containers created on the way
// to a segment that later fails are left in place; Set is not
// transactional under creation.
//
// An empty path replaces the whole document, subject to the overwrite
// option: without overwrite only a null document is replaced.
func Set(doc *ir.Node, p path.Path, val *ir.Node, opts ...SetOption) error {
	cfg := &setConfig{Create: true, Overwrite: true}
	for _, opt := range opts {
		opt(cfg)
	}
	if debug.Set() {
		debug.Logf("set %s to %s create=%v overwrite=%v\n", p, val, cfg.Create, cfg.Overwrite)
	}
	if len(p) == 0 {
		if cfg.Overwrite || doc.Type == ir.NullType {
			val.CloneTo(doc)
		}
		return nil
	}
	parent, err := resolveParent(doc, p, cfg.Create)
	if err != nil {
		return err
	}
	return setFinal(parent, p, val, cfg)
}

// resolveParent walks all but the last segment of p. Under create it
// materializes null nodes into the container kind each segment needs,
// including the parent itself for the final segment; without create
// it fails PathNotFound on anything missing or null.
func resolveParent(doc *ir.Node, p path.Path, create bool) (*ir.Node, error) {
	cur, err := walkWrite(doc, p[:len(p)-1], create)
	if err != nil {
		return nil, err
	}
	if err := materialize(cur, p[len(p)-1], create, p.String()); err != nil {
		return nil, err
	}
	return cur, nil
}

// walkWrite walks every segment of p with write semantics: under
// create, null nodes become containers and missing keys or index gaps
// are filled on the way down.
func walkWrite(doc *ir.Node, p path.Path, create bool) (*ir.Node, error) {
	cur := doc
	for i := 0; i < len(p); i++ {
		switch s := p[i].(type) {
		case path.Key:
			if err := materialize(cur, p[i], create, p.Prefix(i+1)); err != nil {
				return nil, err
			}
			if cur.Type != ir.ObjectType {
				return nil, &ir.TypeError{At: p.Prefix(i + 1), Want: ir.ObjectType, Got: cur.Type}
			}
			next, ok := cur.Fields[s.Name]
			if !ok {
				if !create {
					return nil, &ir.NotFoundError{At: p.Prefix(i + 1)}
				}
				next = ir.Null()
				cur.Fields[s.Name] = next
			}
			cur = next
		case path.Index:
			if err := materialize(cur, p[i], create, p.Prefix(i+1)); err != nil {
				return nil, err
			}
			if cur.Type != ir.ArrayType {
				return nil, &ir.TypeError{At: p.Prefix(i + 1), Want: ir.ArrayType, Got: cur.Type}
			}
			eff := s.I
			if eff < 0 {
				eff += len(cur.Values)
			}
			if eff < 0 {
				return nil, &ir.BoundsError{At: p.Prefix(i + 1), Index: s.I, Len: len(cur.Values)}
			}
			if eff >= len(cur.Values) {
				if !create {
					return nil, &ir.BoundsError{At: p.Prefix(i + 1), Index: s.I, Len: len(cur.Values)}
				}
				for len(cur.Values) <= eff {
					cur.Values = append(cur.Values, ir.Null())
				}
			}
			cur = cur.Values[eff]
		default:
			return nil, fmt.Errorf("%w %s at %s", ir.ErrUnsupported, p[i], p.Prefix(i+1))
		}
	}
	return cur, nil
}

// materialize turns a null node into the empty container the given
// segment requires. Without create a null node on a write path is
// reported as missing.
func materialize(cur *ir.Node, seg path.Segment, create bool, at string) error {
	if cur.Type != ir.NullType {
		return nil
	}
	if !create {
		return &ir.NotFoundError{At: at}
	}
	switch seg.(type) {
	case path.Key:
		cur.Type = ir.ObjectType
		cur.Fields = map[string]*ir.Node{}
	case path.Index:
		cur.Type = ir.ArrayType
		cur.Values = nil
	}
	return nil
}

func setFinal(parent *ir.Node, p path.Path, val *ir.Node, cfg *setConfig) error {
	last := p[len(p)-1]
	switch s := last.(type) {
	case path.Key:
		if parent.Type != ir.ObjectType {
			return &ir.TypeError{At: p.String(), Want: ir.ObjectType, Got: parent.Type}
		}
		if _, ok := parent.Fields[s.Name]; ok && !cfg.Overwrite {
			return nil
		}
		parent.Fields[s.Name] = val.Clone()
		return nil
	case path.Index:
		if parent.Type != ir.ArrayType {
			return &ir.TypeError{At: p.String(), Want: ir.ArrayType, Got: parent.Type}
		}
		eff := s.I
		if eff < 0 {
			eff += len(parent.Values)
		}
		switch {
		case eff < 0:
			return &ir.BoundsError{At: p.String(), Index: s.I, Len: len(parent.Values)}
		case eff < len(parent.Values):
			if cfg.Overwrite {
				parent.Values[eff] = val.Clone()
			}
			return nil
		default:
			if !cfg.Create {
				return &ir.BoundsError{At: p.String(), Index: s.I, Len: len(parent.Values)}
			}
			for len(parent.Values) < eff {
				parent.Values = append(parent.Values, ir.Null())
			}
			parent.Values = append(parent.Values, val.Clone())
			return nil
		}
	default:
		return fmt.Errorf("%w %s at %s", ir.ErrUnsupported, last, p.String())
	}
}
