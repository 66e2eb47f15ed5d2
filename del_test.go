package docpath

import (
	"errors"
	"testing"

	"github.com/docpath-format/docpath/ir"
	"github.com/docpath-format/docpath/path"
)

type delTest struct {
	Name string
	Doc  string
	Path string
	Res  string
	Err  error
}

var delTests = []delTest{
	{
		Name: "field",
		Doc:  `{"a": 1, "b": 2}`,
		Path: "a",
		Res:  `{"b": 2}`,
	},
	{
		Name: "nested field",
		Doc:  `{"a": {"b": 1, "c": 2}}`,
		Path: "a.b",
		Res:  `{"a": {"c": 2}}`,
	},
	{
		Name: "array element splices",
		Doc:  `{"a": [1, 2, 3]}`,
		Path: "a[1]",
		Res:  `{"a": [1, 3]}`,
	},
	{
		Name: "negative index",
		Doc:  `{"a": [1, 2, 3]}`,
		Path: "a[-1]",
		Res:  `{"a": [1, 2]}`,
	},
	{
		Name: "missing field",
		Doc:  `{"a": 1}`,
		Path: "b",
		Err:  ir.ErrPathNotFound,
	},
	{
		Name: "missing parent",
		Doc:  `{"a": 1}`,
		Path: "b.c",
		Err:  ir.ErrPathNotFound,
	},
	{
		Name: "index out of range reports not found",
		Doc:  `{"a": [1]}`,
		Path: "a[3]",
		Err:  ir.ErrPathNotFound,
	},
	{
		Name: "negative index out of range reports not found",
		Doc:  `{"a": [1]}`,
		Path: "a[-2]",
		Err:  ir.ErrPathNotFound,
	},
	{
		Name: "field of array",
		Doc:  `{"a": [1]}`,
		Path: "a.b",
		Err:  ir.ErrTypeMismatch,
	},
	{
		Name: "index of object",
		Doc:  `{"a": {"b": 1}}`,
		Path: "a[0]",
		Err:  ir.ErrTypeMismatch,
	},
}

func TestDel(t *testing.T) {
	for _, tc := range delTests {
		doc := mustDoc(t, tc.Doc)
		err := Del(doc, mustPath(t, tc.Path))
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

func TestDelRoot(t *testing.T) {
	doc := mustDoc(t, `{"a": 1}`)
	if err := Del(doc, nil); !errors.Is(err, path.ErrInvalidPath) {
		t.Errorf("got %v, want invalid path", err)
	}
}

func TestDelThenAbsent(t *testing.T) {
	doc := mustDoc(t, `{"a": {"b": [1, 2]}}`)
	p := mustPath(t, "a.b")
	if err := Del(doc, p); err != nil {
		t.Fatal(err)
	}
	if Exists(doc, p) {
		t.Error("deleted path still exists")
	}
	if err := Del(doc, p); !errors.Is(err, ir.ErrPathNotFound) {
		t.Errorf("second delete: got %v, want not found", err)
	}
}
