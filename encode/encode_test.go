package encode

import (
	"testing"

	"github.com/docpath-format/docpath/ir"
)

type encodeTest struct {
	Name string
	In   string
	Opts []EncodeOption
	Out  string
}

var encodeTests = []encodeTest{
	{
		Name: "scalar",
		In:   `true`,
		Out:  `true`,
	},
	{
		Name: "empty containers",
		In:   `{"a": [], "b": {}}`,
		Out: `{
  "a": [],
  "b": {}
}`,
	},
	{
		Name: "sorted fields",
		In:   `{"b": 1, "a": 2}`,
		Out: `{
  "a": 2,
  "b": 1
}`,
	},
	{
		Name: "nested",
		In:   `{"a": [1, "s", null]}`,
		Out: `{
  "a": [
    1,
    "s",
    null
  ]
}`,
	},
	{
		Name: "compact",
		In:   `{"a": [1, 2], "b": {"c": true}}`,
		Opts: []EncodeOption{Compact(true)},
		Out:  `{"a":[1,2],"b":{"c":true}}`,
	},
	{
		Name: "indent width",
		In:   `{"a": 1}`,
		Opts: []EncodeOption{Indent(4)},
		Out: `{
    "a": 1
}`,
	},
	{
		Name: "number forms survive",
		In:   `{"i": 3, "f": 2.5}`,
		Opts: []EncodeOption{Compact(true)},
		Out:  `{"f":2.5,"i":3}`,
	},
	{
		Name: "string escaping",
		In:   `{"k": "a\"b"}`,
		Opts: []EncodeOption{Compact(true)},
		Out:  `{"k":"a\"b"}`,
	},
}

func TestEncode(t *testing.T) {
	for _, tc := range encodeTests {
		node, err := ir.FromJSON([]byte(tc.In))
		if err != nil {
			t.Fatalf("%s: %v", tc.Name, err)
		}
		got := MustString(node, tc.Opts...)
		if got != tc.Out {
			t.Errorf("%s: got\n%s\nwant\n%s", tc.Name, got, tc.Out)
		}
	}
}

func TestEncodeColorStable(t *testing.T) {
	// colored output strips back to the plain rendering
	node, err := ir.FromJSON([]byte(`{"a": [1, "s"], "b": null}`))
	if err != nil {
		t.Fatal(err)
	}
	plain := MustString(node, Compact(true))
	colored := MustString(node, Compact(true), EncodeColors(NewColors()))
	if len(colored) < len(plain) {
		t.Errorf("colored output shorter than plain: %q vs %q", colored, plain)
	}
}
