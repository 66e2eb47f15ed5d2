package path

import (
	"errors"
	"reflect"
	"testing"
)

type parseTest struct {
	In   string
	Segs Path
	Err  bool
}

func iptr(i int) *int { return &i }

var parseTests = []parseTest{
	{
		In:   "",
		Segs: Path{},
	},
	{
		In:   "a",
		Segs: Path{Key{Name: "a"}},
	},
	{
		In:   ".a",
		Segs: Path{Key{Name: "a"}},
	},
	{
		In:   "a.b.c",
		Segs: Path{Key{Name: "a"}, Key{Name: "b"}, Key{Name: "c"}},
	},
	{
		In:   "a[0].b",
		Segs: Path{Key{Name: "a"}, Index{I: 0}, Key{Name: "b"}},
	},
	{
		In:   "a[-1]",
		Segs: Path{Key{Name: "a"}, Index{I: -1}},
	},
	{
		In:   "a[+3]",
		Segs: Path{Key{Name: "a"}, Index{I: 3}},
	},
	{
		In:   "[0][1]",
		Segs: Path{Index{I: 0}, Index{I: 1}},
	},
	{
		In:   "a['b c']",
		Segs: Path{Key{Name: "a"}, Key{Name: "b c"}},
	},
	{
		In:   `a["b.c"]`,
		Segs: Path{Key{Name: "a"}, Key{Name: "b.c"}},
	},
	{
		// no escaping inside quotes: the key runs to the next
		// quote of the same kind
		In:   `a['x"y']`,
		Segs: Path{Key{Name: "a"}, Key{Name: `x"y`}},
	},
	{
		In:   "a['b]c']",
		Segs: Path{Key{Name: "a"}, Key{Name: "b]c"}},
	},
	{
		In:   "key with spaces.b",
		Segs: Path{Key{Name: "key with spaces"}, Key{Name: "b"}},
	},
	{
		In:   "a[*]",
		Segs: Path{Key{Name: "a"}, Wildcard{}},
	},
	{
		In:   "a[1:3]",
		Segs: Path{Key{Name: "a"}, Slice{Start: iptr(1), End: iptr(3)}},
	},
	{
		In:   "a[:2]",
		Segs: Path{Key{Name: "a"}, Slice{End: iptr(2)}},
	},
	{
		In:   "a[?@.x>2]",
		Segs: Path{Key{Name: "a"}, Filter{Expr: "@.x>2"}},
	},

	{In: ".", Err: true},
	{In: "a.", Err: true},
	{In: "a..b", Err: true},
	{In: "..a", Err: true},
	{In: "a[0", Err: true},
	{In: "a[", Err: true},
	{In: "a]", Err: true},
	{In: "a.]", Err: true},
	{In: "a[]", Err: true},
	{In: "a['']", Err: true},
	{In: `a[""]`, Err: true},
	{In: "a['b'", Err: true},
	{In: "a['b'x]", Err: true},
	{In: "a['b", Err: true},
	{In: "a[abc]", Err: true},
	{In: "a[1.5]", Err: true},
	{In: "a[--1]", Err: true},
	{In: "a[1:2:3]", Err: true},
	{In: "a[1:x]", Err: true},
	{In: "key.[0]", Err: true},
	{In: "a[0]b", Err: true},
}

func TestParse(t *testing.T) {
	for _, tc := range parseTests {
		segs, err := Parse(tc.In)
		if tc.Err {
			if err == nil {
				t.Errorf("Parse(%q): expected error, got %v", tc.In, segs)
			} else if !errors.Is(err, ErrInvalidPath) {
				t.Errorf("Parse(%q): error %v does not wrap ErrInvalidPath", tc.In, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("Parse(%q): %v", tc.In, err)
			continue
		}
		if !reflect.DeepEqual(segs, tc.Segs) {
			t.Errorf("Parse(%q): got %v, want %v", tc.In, segs, tc.Segs)
		}
	}
}

func TestIsValid(t *testing.T) {
	for _, tc := range parseTests {
		if got := IsValid(tc.In); got != !tc.Err {
			t.Errorf("IsValid(%q): got %v", tc.In, got)
		}
	}
}

func TestNormalize(t *testing.T) {
	// validation only, no canonicalization across equivalent
	// spellings
	for _, in := range []string{"a.b", "a['b']", "a[-1]"} {
		out, err := Normalize(in)
		if err != nil {
			t.Errorf("Normalize(%q): %v", in, err)
			continue
		}
		if out != in {
			t.Errorf("Normalize(%q): got %q", in, out)
		}
	}
	if _, err := Normalize("a..b"); err == nil {
		t.Errorf("Normalize accepted a..b")
	}
}

func TestExecutable(t *testing.T) {
	p, err := Parse("a[0].b")
	if err != nil {
		t.Fatal(err)
	}
	if !p.Executable() {
		t.Errorf("%s not executable", p)
	}
	p, err = Parse("a[*].b")
	if err != nil {
		t.Fatal(err)
	}
	if p.Executable() {
		t.Errorf("%s executable", p)
	}
}

func TestString(t *testing.T) {
	for _, tc := range []struct {
		In  string
		Out string
	}{
		{In: "", Out: "$"},
		{In: "a.b[1]", Out: "$.a.b[1]"},
		{In: "a['b c'][-2]", Out: "$.a['b c'][-2]"},
		{In: "a[*]", Out: "$.a[*]"},
	} {
		p, err := Parse(tc.In)
		if err != nil {
			t.Fatal(err)
		}
		if got := p.String(); got != tc.Out {
			t.Errorf("String(%q): got %q, want %q", tc.In, got, tc.Out)
		}
	}
}
