package docpath

import (
	jsonpatch "github.com/evanphx/json-patch"

	"github.com/docpath-format/docpath/debug"
	"github.com/docpath-format/docpath/ir"
)

// ApplyPatch applies an RFC 6902 patch document, given as JSON bytes,
// to doc in place. The patch is applied to the serialized form of the
// document and the result parsed back, so a failing operation leaves
// doc untouched.
func ApplyPatch(doc *ir.Node, patch []byte) error {
	if debug.Patch() {
		debug.Logf("patch %s with %s\n", doc, string(patch))
	}
	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return err
	}
	d, err := ir.ToJSON(doc)
	if err != nil {
		return err
	}
	out, err := ops.Apply(d)
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

// ApplyMergePatch applies an RFC 7386 merge patch, given as JSON
// bytes, to doc in place.
func ApplyMergePatch(doc *ir.Node, patch []byte) error {
	if debug.Patch() {
		debug.Logf("merge-patch %s with %s\n", doc, string(patch))
	}
	d, err := ir.ToJSON(doc)
	if err != nil {
		return err
	}
	out, err := jsonpatch.MergePatch(d, patch)
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
