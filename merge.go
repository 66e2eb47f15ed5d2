package docpath

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
	jsonpatch "github.com/evanphx/json-patch"

	"github.com/docpath-format/docpath/debug"
	"github.com/docpath-format/docpath/ir"
)

// ErrMergeUnimplemented reports a merge strategy that is declared but
// deliberately not implemented. It is never silently approximated.
var ErrMergeUnimplemented = errors.New("merge strategy not implemented")

type MergeStrategy int

const (
	// MergeOverwrite applies src as an RFC 7386 merge patch: object
	// fields replace wholesale, nulls in src delete.
	MergeOverwrite MergeStrategy = iota
	// MergeDeep merges object trees recursively, src winning on
	// conflicts; arrays and scalars replace.
	MergeDeep
	// MergeShallow and MergeAppend are declared for callers that
	// enumerate strategies but are not implemented.
	MergeShallow
	MergeAppend
)

func (s MergeStrategy) String() string {
	switch s {
	case MergeOverwrite:
		return "overwrite"
	case MergeDeep:
		return "deep"
	case MergeShallow:
		return "shallow"
	case MergeAppend:
		return "append"
	default:
		return "<unknown strategy>"
	}
}

// ParseMergeStrategy maps a strategy name to its value.
func ParseMergeStrategy(s string) (MergeStrategy, error) {
	switch s {
	case "overwrite":
		return MergeOverwrite, nil
	case "deep":
		return MergeDeep, nil
	case "shallow":
		return MergeShallow, nil
	case "append":
		return MergeAppend, nil
	default:
		return 0, fmt.Errorf("unknown merge strategy %q", s)
	}
}

// Merge merges src into doc in place under the given strategy.
func Merge(doc, src *ir.Node, strategy MergeStrategy) error {
	if debug.Merge() {
		debug.Logf("merge %s into %s with %s\n", src, doc, strategy)
	}
	switch strategy {
	case MergeOverwrite:
		return mergeOverwrite(doc, src)
	case MergeDeep:
		return mergeDeep(doc, src)
	case MergeShallow, MergeAppend:
		return fmt.Errorf("%w: %s", ErrMergeUnimplemented, strategy)
	default:
		return fmt.Errorf("unknown merge strategy %d", strategy)
	}
}

func mergeOverwrite(doc, src *ir.Node) error {
	d, err := ir.ToJSON(doc)
	if err != nil {
		return err
	}
	s, err := ir.ToJSON(src)
	if err != nil {
		return err
	}
	out, err := jsonpatch.MergePatch(d, s)
	if err != nil {
		return err
	}
	res, err := ir.FromJSON(out)
	if err != nil {
		return err
	}
	res.CloneTo(doc)
	return nil
}

func mergeDeep(doc, src *ir.Node) error {
	if doc.Type != ir.ObjectType || src.Type != ir.ObjectType {
		src.CloneTo(doc)
		return nil
	}
	dst, ok := ir.ToAny(doc).(map[string]any)
	if !ok {
		return fmt.Errorf("internal: object did not convert to a map")
	}
	over, ok := ir.ToAny(src).(map[string]any)
	if !ok {
		return fmt.Errorf("internal: object did not convert to a map")
	}
	if err := mergo.Merge(&dst, over, mergo.WithOverride); err != nil {
		return err
	}
	res, err := ir.FromAny(dst)
	if err != nil {
		return err
	}
	res.CloneTo(doc)
	return nil
}
