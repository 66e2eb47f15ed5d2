// Package path implements the dot/bracket location syntax used to
// address values inside a document.
package path

import (
	"fmt"
	"strconv"
	"strings"
)

// Segment is one descent step in a path. Key and Index are the only
// segments the engine executes; the remaining variants are
// representable so the syntax can grow without changing the type, and
// the engine rejects them.
type Segment interface {
	fmt.Stringer
	seg()
}

// Key descends into an object field.
type Key struct {
	Name string
}

// Index descends into an array element. A negative index counts from
// the end of the array, resolved against the array's length at the
// time the segment is evaluated.
type Index struct {
	I int
}

// Wildcard selects all elements of a container.
type Wildcard struct{}

// Slice selects a contiguous range of an array. A nil bound is open.
type Slice struct {
	Start *int
	End   *int
}

// Filter selects elements matching an expression.
type Filter struct {
	Expr string
}

// RecursiveDescent selects all nodes of a subtree.
type RecursiveDescent struct{}

func (Key) seg()              {}
func (Index) seg()            {}
func (Wildcard) seg()         {}
func (Slice) seg()            {}
func (Filter) seg()           {}
func (RecursiveDescent) seg() {}

func (s Key) String() string {
	if s.Name != "" && !strings.ContainsAny(s.Name, "'\".[]$*") {
		return "." + s.Name
	}
	q := "'"
	if strings.Contains(s.Name, "'") {
		q = "\""
	}
	return "[" + q + s.Name + q + "]"
}

func (s Index) String() string {
	return "[" + strconv.Itoa(s.I) + "]"
}

func (Wildcard) String() string {
	return "[*]"
}

func (s Slice) String() string {
	var b strings.Builder
	b.WriteByte('[')
	if s.Start != nil {
		b.WriteString(strconv.Itoa(*s.Start))
	}
	b.WriteByte(':')
	if s.End != nil {
		b.WriteString(strconv.Itoa(*s.End))
	}
	b.WriteByte(']')
	return b.String()
}

func (s Filter) String() string {
	return "[?" + s.Expr + "]"
}

func (RecursiveDescent) String() string {
	return ".."
}

// Path is an ordered sequence of segments, read left to right as
// descents from the document root. An empty Path denotes the root.
type Path []Segment

func (p Path) String() string {
	var b strings.Builder
	b.WriteByte('$')
	for _, s := range p {
		b.WriteString(s.String())
	}
	return b.String()
}

// Prefix renders the first n segments, for error reporting.
func (p Path) Prefix(n int) string {
	return p[:n].String()
}

// Executable reports whether every segment is one the engine can
// resolve to a single location.
func (p Path) Executable() bool {
	for _, s := range p {
		switch s.(type) {
		case Key, Index:
		default:
			return false
		}
	}
	return true
}
