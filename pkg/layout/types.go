package layout

import (
	"nematode/pkg/css"
)

// Properties is the box of a single element: margin-edge position relative
// to the parent, content size, margin and padding. Position is written only
// by the flow pass once the element has a parent.
type Properties struct {
	x       float64
	y       float64
	width   float64 // Content width
	height  float64 // Content height
	margin  css.BoxEdge
	padding css.BoxEdge
}

// NewProperties returns properties with an initial position, used as-is for
// roots and manually placed elements.
func NewProperties(x, y, width, height float64, margin, padding css.BoxEdge) *Properties {
	return &Properties{
		x:       x,
		y:       y,
		width:   width,
		height:  height,
		margin:  margin,
		padding: padding,
	}
}

// NewSizedProperties returns properties with a content size and no margin
// or padding.
func NewSizedProperties(x, y, width, height float64) *Properties {
	return NewProperties(x, y, width, height, css.BoxEdge{}, css.BoxEdge{})
}

func (p *Properties) X() float64      { return p.x }
func (p *Properties) Y() float64      { return p.y }
func (p *Properties) Width() float64  { return p.width }
func (p *Properties) Height() float64 { return p.height }

// Margin returns the margin in place; edits are seen by the next flow pass.
func (p *Properties) Margin() *css.BoxEdge { return &p.margin }

// Padding returns the padding in place.
func (p *Properties) Padding() *css.BoxEdge { return &p.padding }

func (p *Properties) setPosition(x, y float64) {
	p.x = x
	p.y = y
}

// Element is a node of the layout tree.
type Element struct {
	tagName  string
	props    *Properties
	parent   *Element // Non-owning; read only to compose coordinates upward
	children []*Element
	block    bool
}

// Geometry is a read-only capture of every accessor of an element and its
// subtree.
type Geometry struct {
	Tag             string     `json:"tag" yaml:"tag"`
	Block           bool       `json:"block" yaml:"block"`
	X               float64    `json:"x" yaml:"x"`
	Y               float64    `json:"y" yaml:"y"`
	RelativeX       float64    `json:"relativeX" yaml:"relativeX"`
	RelativeY       float64    `json:"relativeY" yaml:"relativeY"`
	ContentX        float64    `json:"contentX" yaml:"contentX"`
	ContentY        float64    `json:"contentY" yaml:"contentY"`
	Width           float64    `json:"width" yaml:"width"`
	Height          float64    `json:"height" yaml:"height"`
	EffectiveWidth  float64    `json:"effectiveWidth" yaml:"effectiveWidth"`
	EffectiveHeight float64    `json:"effectiveHeight" yaml:"effectiveHeight"`
	Children        []Geometry `json:"children,omitempty" yaml:"children,omitempty"`
}
