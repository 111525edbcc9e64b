// Package document builds layout trees from YAML, TOML and HTML input.
package document

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/multierr"

	"nematode/pkg/css"
	"nematode/pkg/layout"
)

// Node is the serialized form of an element. Explicit fields win over the
// same property declared in Style.
type Node struct {
	Tag      string    `yaml:"tag" toml:"tag" json:"tag"`
	X        *float64  `yaml:"x,omitempty" toml:"x,omitempty" json:"x,omitempty"`
	Y        *float64  `yaml:"y,omitempty" toml:"y,omitempty" json:"y,omitempty"`
	Width    *float64  `yaml:"width,omitempty" toml:"width,omitempty" json:"width,omitempty"`
	Height   *float64  `yaml:"height,omitempty" toml:"height,omitempty" json:"height,omitempty"`
	Margin   []float64 `yaml:"margin,omitempty" toml:"margin,omitempty" json:"margin,omitempty"`
	Padding  []float64 `yaml:"padding,omitempty" toml:"padding,omitempty" json:"padding,omitempty"`
	Display  string    `yaml:"display,omitempty" toml:"display,omitempty" json:"display,omitempty"`
	Style    string    `yaml:"style,omitempty" toml:"style,omitempty" json:"style,omitempty"`
	Children []Node    `yaml:"children,omitempty" toml:"children,omitempty" json:"children,omitempty"`
}

type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatHTML Format = "html"
)

var ErrUnknownFormat = errors.New("unknown document format")

// FormatFromPath picks a format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".html", ".htm", ".xhtml":
		return FormatHTML, nil
	}
	return "", fmt.Errorf("%s: %w", path, ErrUnknownFormat)
}

// Load reads and builds the tree stored at path.
func Load(path string) (*layout.Element, error) {
	n, err := LoadNode(path)
	if err != nil {
		return nil, err
	}
	root, err := Build(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return root, nil
}

// LoadNode reads the document stored at path without building it.
func LoadNode(path string) (Node, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return Node{}, err
	}
	f, err := os.Open(path)
	if err != nil {
		return Node{}, err
	}
	defer f.Close()

	n, err := DecodeNode(f, format)
	if err != nil {
		return Node{}, fmt.Errorf("%s: %w", path, err)
	}
	return n, nil
}

// Decode reads a document in the given format and builds its tree.
func Decode(r io.Reader, format Format) (*layout.Element, error) {
	n, err := DecodeNode(r, format)
	if err != nil {
		return nil, err
	}
	return Build(n)
}

// DecodeNode reads a document without validating or building it.
func DecodeNode(r io.Reader, format Format) (Node, error) {
	switch format {
	case FormatYAML:
		return DecodeYAML(r)
	case FormatTOML:
		return DecodeTOML(r)
	case FormatHTML:
		return DecodeHTML(r)
	}
	return Node{}, fmt.Errorf("%q: %w", format, ErrUnknownFormat)
}

// Validate reports every problem in the tree rooted at n.
func Validate(n Node) error {
	path := n.Tag
	if path == "" {
		path = "(root)"
	}
	return validate(n, path)
}

func validate(n Node, path string) error {
	var err error
	if strings.TrimSpace(n.Tag) == "" {
		err = multierr.Append(err, fmt.Errorf("%s: tag is required", path))
	}
	if n.Margin != nil {
		if _, ok := css.EdgeFromValues(n.Margin); !ok {
			err = multierr.Append(err, fmt.Errorf("%s: margin needs 1 to 4 values, got %d", path, len(n.Margin)))
		}
	}
	if n.Padding != nil {
		if _, ok := css.EdgeFromValues(n.Padding); !ok {
			err = multierr.Append(err, fmt.Errorf("%s: padding needs 1 to 4 values, got %d", path, len(n.Padding)))
		}
	}
	if _, ok := css.ParseDisplay(n.Display); !ok {
		err = multierr.Append(err, fmt.Errorf("%s: unknown display %q", path, n.Display))
	}
	for i, c := range n.Children {
		err = multierr.Append(err, validate(c, fmt.Sprintf("%s/%s[%d]", path, c.Tag, i)))
	}
	return err
}

// Build validates n and creates its element tree. Children are attached in
// order, so the returned tree has been fully flowed.
func Build(n Node) (*layout.Element, error) {
	if err := Validate(n); err != nil {
		return nil, err
	}
	return build(n)
}

func build(n Node) (*layout.Element, error) {
	e := newElement(n)
	for _, c := range n.Children {
		child, err := build(c)
		if err != nil {
			return nil, err
		}
		if err := layout.Attach(e, child); err != nil {
			return nil, err
		}
	}
	return e, nil
}

func newElement(n Node) *layout.Element {
	style := css.ParseInlineStyle(n.Style)

	x := pick(n.X, style, "left")
	y := pick(n.Y, style, "top")
	width := pick(n.Width, style, "width")
	height := pick(n.Height, style, "height")

	margin := style.GetMargin()
	if m, ok := css.EdgeFromValues(n.Margin); ok {
		margin = m
	}
	padding := style.GetPadding()
	if p, ok := css.EdgeFromValues(n.Padding); ok {
		padding = p
	}

	e := layout.NewElement(n.Tag, layout.NewProperties(x, y, width, height, margin, padding))

	display := style.GetDisplay()
	if n.Display != "" {
		display, _ = css.ParseDisplay(n.Display)
	}
	e.SetBlock(display == css.DisplayBlock)
	return e
}

func pick(explicit *float64, style *css.Style, property string) float64 {
	if explicit != nil {
		return *explicit
	}
	v, _ := style.GetLength(property)
	return v
}
