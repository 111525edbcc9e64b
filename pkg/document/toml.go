package document

import (
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
)

// DecodeTOML reads a TOML tree document. Keys the Node type does not know
// are rejected.
func DecodeTOML(r io.Reader) (Node, error) {
	var n Node
	md, err := toml.NewDecoder(r).Decode(&n)
	if err != nil {
		return Node{}, fmt.Errorf("decode toml: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Node{}, fmt.Errorf("decode toml: unknown keys %s", strings.Join(keys, ", "))
	}
	return n, nil
}
