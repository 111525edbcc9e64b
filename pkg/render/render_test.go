package render

import (
	"bytes"
	"image/color"
	"image/png"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nematode/pkg/css"
	"nematode/pkg/layout"
)

var testPalette = Palette{
	Background: color.RGBA{255, 255, 255, 255},
	Margin:     color.RGBA{255, 0, 0, 255},
	Padding:    color.RGBA{0, 255, 0, 255},
	Content:    color.RGBA{0, 0, 255, 255},
}

func assertPixel(t *testing.T, r *Renderer, x, y int, want color.RGBA) {
	t.Helper()
	gr, gg, gb, ga := r.Image().At(x, y).RGBA()
	wr, wg, wb, wa := want.RGBA()
	assert.Equal(t, [4]uint32{wr, wg, wb, wa}, [4]uint32{gr, gg, gb, ga}, "pixel (%d,%d)", x, y)
}

func TestBoxesOf(t *testing.T) {
	body := layout.NewElement("BODY", layout.NewProperties(0, 0, 10, 10, css.Uniform(5), css.BoxEdge{}))
	parent := layout.NewElement("PARENT", layout.NewProperties(0, 0, 10, 5, css.NewBoxEdge(5, 0, 5, 0), css.Uniform(5)))
	body.AddChild(parent)

	assert.Equal(t, Boxes{
		Margin:  Rect{0, 0, 20, 20},
		Border:  Rect{5, 5, 10, 10},
		Content: Rect{5, 5, 10, 10},
	}, BoxesOf(body))

	assert.Equal(t, Boxes{
		Margin:  Rect{5, 0, 20, 25},
		Border:  Rect{5, 5, 20, 15},
		Content: Rect{10, 10, 10, 5},
	}, BoxesOf(parent))
}

func TestRender_PaintsNestedAreas(t *testing.T) {
	root := layout.NewElement("DIV", layout.NewProperties(0, 0, 20, 20, css.Uniform(10), css.Uniform(10)))

	r := NewRenderer(100, 100)
	r.SetPalette(testPalette)
	r.Render(root)

	assertPixel(t, r, 5, 5, color.RGBA{255, 0, 0, 255})
	assertPixel(t, r, 15, 15, color.RGBA{0, 255, 0, 255})
	assertPixel(t, r, 30, 30, color.RGBA{0, 0, 255, 255})
	assertPixel(t, r, 80, 80, color.RGBA{255, 255, 255, 255})
}

func TestRender_ChildrenPaintOverParents(t *testing.T) {
	root := layout.NewElement("BODY", layout.NewProperties(0, 0, 50, 50, css.BoxEdge{}, css.Uniform(10)))
	// No content, so only its padding area is painted.
	child := layout.NewElement("P", layout.NewProperties(0, 0, 0, 0, css.BoxEdge{}, css.Uniform(5)))
	root.AddChild(child)

	r := NewRenderer(80, 80)
	r.SetPalette(testPalette)
	r.Render(root)

	assertPixel(t, r, 2, 2, color.RGBA{0, 255, 0, 255})
	assertPixel(t, r, 15, 15, color.RGBA{0, 255, 0, 255})
	assertPixel(t, r, 30, 30, color.RGBA{0, 0, 255, 255})
	assertPixel(t, r, 75, 75, color.RGBA{255, 255, 255, 255})
}

func TestRender_EncodeAndSave(t *testing.T) {
	root := layout.NewElement("BODY", layout.NewProperties(0, 0, 10, 10, css.Uniform(5), css.BoxEdge{}))
	r := NewRenderer(32, 24)
	r.Render(root)

	var buf bytes.Buffer
	require.NoError(t, r.EncodePNG(&buf))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 32, img.Bounds().Dx())
	assert.Equal(t, 24, img.Bounds().Dy())

	path := filepath.Join(t.TempDir(), "out.png")
	require.NoError(t, r.SavePNG(path))
	assert.FileExists(t, path)
}
