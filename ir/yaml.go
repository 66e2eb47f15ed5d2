package ir

import (
	"github.com/goccy/go-yaml"
)

// ToYAML renders a document as YAML, for tooling that prefers it over
// the store's JSON form.
func ToYAML(node *Node) ([]byte, error) {
	return yaml.Marshal(ToAny(node))
}

// FromYAML parses a YAML document.
func FromYAML(d []byte) (*Node, error) {
	var v any
	if err := yaml.Unmarshal(d, &v); err != nil {
		return nil, err
	}
	return FromAny(v)
}
