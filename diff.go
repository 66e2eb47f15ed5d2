package docpath

import (
	"github.com/wI2L/jsondiff"

	"github.com/docpath-format/docpath/debug"
	"github.com/docpath-format/docpath/ir"
)

// Diff computes an RFC 6902 operation sequence transforming a into b.
// The result marshals to a patch document ApplyPatch accepts.
func Diff(a, b *ir.Node) (jsondiff.Patch, error) {
	if debug.Diff() {
		debug.Logf("diff %s and %s\n", a, b)
	}
	return jsondiff.Compare(ir.ToAny(a), ir.ToAny(b))
}
