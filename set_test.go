package docpath

import (
	"errors"
	"testing"

	"github.com/docpath-format/docpath/ir"
	"github.com/docpath-format/docpath/path"
)

type setTest struct {
	Name string
	Doc  string
	Path string
	Val  string
	Opts []SetOption
	Res  string
	Err  error
}

var setTests = []setTest{
	{
		Name: "overwrite existing field",
		Doc:  `{"a": 1}`,
		Path: "a",
		Val:  `2`,
		Res:  `{"a": 2}`,
	},
	{
		Name: "new field",
		Doc:  `{"a": 1}`,
		Path: "b",
		Val:  `"x"`,
		Res:  `{"a": 1, "b": "x"}`,
	},
	{
		Name: "create nested objects",
		Doc:  `{}`,
		Path: "a.b.c",
		Val:  `1`,
		Res:  `{"a": {"b": {"c": 1}}}`,
	},
	{
		Name: "create array from index",
		Doc:  `{}`,
		Path: "a[0]",
		Val:  `1`,
		Res:  `{"a": [1]}`,
	},
	{
		Name: "null document grows a tree",
		Doc:  `null`,
		Path: "a[0].b",
		Val:  `true`,
		Res:  `{"a": [{"b": true}]}`,
	},
	{
		Name: "pad array with nulls",
		Doc:  `{"a": {"b": [1, 2]}}`,
		Path: "a.b[5]",
		Val:  `9`,
		Res:  `{"a": {"b": [1, 2, null, null, null, 9]}}`,
	},
	{
		Name: "append at length",
		Doc:  `{"a": [1]}`,
		Path: "a[1]",
		Val:  `2`,
		Res:  `{"a": [1, 2]}`,
	},
	{
		Name: "negative index overwrites from the end",
		Doc:  `{"a": [1, 2, 3]}`,
		Path: "a[-1]",
		Val:  `9`,
		Res:  `{"a": [1, 2, 9]}`,
	},
	{
		Name: "no-overwrite keeps existing value",
		Doc:  `{"a": 1}`,
		Path: "a",
		Val:  `2`,
		Opts: []SetOption{SetOverwrite(false)},
		Res:  `{"a": 1}`,
	},
	{
		Name: "no-overwrite still fills absent field",
		Doc:  `{"a": 1}`,
		Path: "b",
		Val:  `2`,
		Opts: []SetOption{SetOverwrite(false)},
		Res:  `{"a": 1, "b": 2}`,
	},
	{
		Name: "no-overwrite keeps array element",
		Doc:  `{"a": [1]}`,
		Path: "a[0]",
		Val:  `9`,
		Opts: []SetOption{SetOverwrite(false)},
		Res:  `{"a": [1]}`,
	},
	{
		Name: "no-create fails on missing intermediate",
		Doc:  `{}`,
		Path: "a.b",
		Val:  `1`,
		Opts: []SetOption{SetCreate(false)},
		Err:  ir.ErrPathNotFound,
	},
	{
		Name: "no-create fails on null intermediate",
		Doc:  `{"a": null}`,
		Path: "a.b",
		Val:  `1`,
		Opts: []SetOption{SetCreate(false)},
		Err:  ir.ErrPathNotFound,
	},
	{
		Name: "no-create fails to extend array",
		Doc:  `{"a": [1]}`,
		Path: "a[1]",
		Val:  `2`,
		Opts: []SetOption{SetCreate(false)},
		Err:  ir.ErrIndexOutOfBounds,
	},
	{
		Name: "no-create still overwrites in place",
		Doc:  `{"a": [1]}`,
		Path: "a[0]",
		Val:  `2`,
		Opts: []SetOption{SetCreate(false)},
		Res:  `{"a": [2]}`,
	},
	{
		Name: "key against array",
		Doc:  `{"a": [1]}`,
		Path: "a.b",
		Val:  `1`,
		Err:  ir.ErrTypeMismatch,
	},
	{
		Name: "index against object",
		Doc:  `{"a": {"b": 1}}`,
		Path: "a[0]",
		Val:  `1`,
		Err:  ir.ErrTypeMismatch,
	},
	{
		Name: "index against scalar",
		Doc:  `{"a": "s"}`,
		Path: "a[0]",
		Val:  `1`,
		Err:  ir.ErrTypeMismatch,
	},
	{
		Name: "negative index below zero",
		Doc:  `{"a": [1]}`,
		Path: "a[-5]",
		Val:  `1`,
		Err:  ir.ErrIndexOutOfBounds,
	},
	{
		Name: "root replace",
		Doc:  `{"a": 1}`,
		Path: "",
		Val:  `[1, 2]`,
		Res:  `[1, 2]`,
	},
	{
		Name: "root no-overwrite is a no-op on a non-null document",
		Doc:  `{"a": 1}`,
		Path: "",
		Val:  `[]`,
		Opts: []SetOption{SetOverwrite(false)},
		Res:  `{"a": 1}`,
	},
	{
		Name: "root no-overwrite replaces a null document",
		Doc:  `null`,
		Path: "",
		Val:  `[]`,
		Opts: []SetOption{SetOverwrite(false)},
		Res:  `[]`,
	},
}

func TestSet(t *testing.T) {
	for _, tc := range setTests {
		doc := mustDoc(t, tc.Doc)
		err := Set(doc, mustPath(t, tc.Path), mustDoc(t, tc.Val), tc.Opts...)
		if tc.Err != nil {
			if !errors.Is(err, tc.Err) {
				t.Errorf("%s: got err %v, want %v", tc.Name, err, tc.Err)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: %v", tc.Name, err)
			continue
		}
		if want := mustDoc(t, tc.Res); !ir.Equal(doc, want) {
			t.Errorf("%s: got %v, want %s", tc.Name, doc, tc.Res)
		}
	}
}

func TestSetGetRoundTrip(t *testing.T) {
	paths := []string{"a", "a.b.c", "a.b[0]", "x[2].y", "['k 1'].v"}
	for _, ps := range paths {
		doc := mustDoc(t, `{}`)
		val := mustDoc(t, `{"nested": [1, "two", null]}`)
		p := mustPath(t, ps)
		if err := Set(doc, p, val); err != nil {
			t.Errorf("set %s: %v", ps, err)
			continue
		}
		got, err := Get(doc, p)
		if err != nil {
			t.Errorf("get %s after set: %v", ps, err)
			continue
		}
		if !ir.Equal(got, val) {
			t.Errorf("round trip %s: got %v", ps, got)
		}
	}
}

// Set creates intermediate containers while walking toward the final
// segment; a failure at a later segment leaves the earlier creations
// in place.
func TestSetPartialMutationOnFailure(t *testing.T) {
	doc := mustDoc(t, `{}`)
	// b and b.c are created before the index fails against the
	// freshly materialized empty array
	err := Set(doc, mustPath(t, "b.c[-2]"), mustDoc(t, `1`))
	if !errors.Is(err, ir.ErrIndexOutOfBounds) {
		t.Fatalf("got %v, want out of bounds", err)
	}
	if !ir.Equal(doc, mustDoc(t, `{"b": {"c": []}}`)) {
		t.Errorf("got %v, want the intermediate containers kept", doc)
	}

	// a walk that fails before creating anything leaves the
	// document untouched
	doc = mustDoc(t, `{"x": {"y": "s"}}`)
	err = Set(doc, mustPath(t, "x.y[0].z"), mustDoc(t, `1`))
	if !errors.Is(err, ir.ErrTypeMismatch) {
		t.Fatalf("got %v, want type mismatch", err)
	}
	if !ir.Equal(doc, mustDoc(t, `{"x": {"y": "s"}}`)) {
		t.Errorf("failed walk mutated the document: %v", doc)
	}
}

func TestSetUnsupportedSegment(t *testing.T) {
	doc := mustDoc(t, `{"a": [1]}`)
	err := Set(doc, path.Path{path.Key{Name: "a"}, path.Wildcard{}}, mustDoc(t, `1`))
	if !errors.Is(err, ir.ErrUnsupported) {
		t.Errorf("got %v, want unsupported", err)
	}
}
