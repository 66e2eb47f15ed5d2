package docpath

import (
	"strings"

	"github.com/docpath-format/docpath/path"
)

// ParseArg interprets a caller-facing path argument. The literal
// tokens "$" and "." address the whole document, as does the empty
// string; a leading "$" on a longer path is stripped before the
// grammar sees it. This shorthand is part of the calling convention,
// not the path grammar itself.
func ParseArg(s string) (path.Path, error) {
	if s == "" || s == "$" || s == "." {
		return path.Path{}, nil
	}
	return path.Parse(strings.TrimPrefix(s, "$"))
}
