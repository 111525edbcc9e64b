package document

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// DecodeYAML reads a single YAML tree document.
func DecodeYAML(r io.Reader) (Node, error) {
	var n Node
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&n); err != nil {
		return Node{}, fmt.Errorf("decode yaml: %w", err)
	}
	return n, nil
}

// EncodeYAML writes n as YAML.
func EncodeYAML(w io.Writer, n Node) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(n); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}
