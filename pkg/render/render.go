package render

import (
	"image"
	"image/color"
	"io"

	"github.com/fogleman/gg"
	"nematode/pkg/layout"
)

// Palette holds the fills for each area of a box. A nil Outline disables
// the border-edge stroke.
type Palette struct {
	Background color.Color
	Margin     color.Color
	Padding    color.Color
	Content    color.Color
	Outline    color.Color
}

// DefaultPalette mimics the box-model overlay of browser inspectors.
var DefaultPalette = Palette{
	Background: color.White,
	Margin:     color.NRGBA{R: 246, G: 178, B: 107, A: 168},
	Padding:    color.NRGBA{R: 147, G: 196, B: 125, A: 140},
	Content:    color.NRGBA{R: 111, G: 168, B: 220, A: 168},
	Outline:    color.NRGBA{R: 40, G: 40, B: 40, A: 255},
}

type Renderer struct {
	context *gg.Context
	palette Palette
}

func NewRenderer(width, height int) *Renderer {
	return &Renderer{context: gg.NewContext(width, height), palette: DefaultPalette}
}

func (r *Renderer) SetPalette(p Palette) {
	r.palette = p
}

// Render clears the canvas and paints every element of the tree in
// document order, so children cover their parents.
func (r *Renderer) Render(root *layout.Element) {
	r.context.SetColor(r.palette.Background)
	r.context.Clear()

	layout.Walk(root, func(e *layout.Element, _ int) bool {
		r.drawBox(e)
		return true
	})
}

// Boxes lists the three nested rectangles of an element in screen space.
type Boxes struct {
	Margin  Rect
	Border  Rect
	Content Rect
}

type Rect struct {
	X, Y, Width, Height float64
}

// BoxesOf computes the rectangles painted for e. ContentY is relative to
// the parent, so the content rectangle is built from Y plus top padding.
func BoxesOf(e *layout.Element) Boxes {
	props := e.Properties()
	margin := props.Margin()
	padding := props.Padding()
	return Boxes{
		Margin:  Rect{e.X() - margin.Left, e.Y() - margin.Top, e.EffectiveWidth(), e.EffectiveHeight()},
		Border:  Rect{e.X(), e.Y(), e.Width(), e.Height()},
		Content: Rect{e.ContentX(), e.Y() + padding.Top, props.Width(), props.Height()},
	}
}

func (r *Renderer) drawBox(e *layout.Element) {
	b := BoxesOf(e)
	r.fill(b.Margin, r.palette.Margin)
	r.fill(b.Border, r.palette.Padding)
	r.fill(b.Content, r.palette.Content)

	if r.palette.Outline != nil && b.Border.Width > 0 && b.Border.Height > 0 {
		r.context.SetColor(r.palette.Outline)
		r.context.SetLineWidth(1)
		r.context.DrawRectangle(b.Border.X+0.5, b.Border.Y+0.5, b.Border.Width-1, b.Border.Height-1)
		r.context.Stroke()
	}
}

func (r *Renderer) fill(rect Rect, c color.Color) {
	if c == nil || rect.Width <= 0 || rect.Height <= 0 {
		return
	}
	r.context.SetColor(c)
	r.context.DrawRectangle(rect.X, rect.Y, rect.Width, rect.Height)
	r.context.Fill()
}

func (r *Renderer) Image() image.Image {
	return r.context.Image()
}

func (r *Renderer) SavePNG(filename string) error {
	return r.context.SavePNG(filename)
}

func (r *Renderer) EncodePNG(w io.Writer) error {
	return r.context.EncodePNG(w)
}
