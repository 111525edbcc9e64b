package render

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nematode/pkg/css"
	"nematode/pkg/layout"
)

func renderTree(t *testing.T, margin float64) image.Image {
	t.Helper()
	root := layout.NewElement("BODY", layout.NewProperties(0, 0, 10, 10, css.Uniform(margin), css.BoxEdge{}))
	root.AddChild(layout.NewElement("P", layout.NewSizedProperties(0, 0, 4, 4)))

	r := NewRenderer(30, 30)
	r.SetPalette(testPalette)
	r.Render(root)
	return r.Image()
}

func TestCompareIdentical(t *testing.T) {
	d, err := Compare(renderTree(t, 5), renderTree(t, 5), 0)
	require.NoError(t, err)
	assert.True(t, d.Match)
	assert.Zero(t, d.DifferentPixels)
	assert.Equal(t, 900, d.TotalPixels)
}

func TestCompareMarginChange(t *testing.T) {
	d, err := Compare(renderTree(t, 5), renderTree(t, 6), 2)
	require.NoError(t, err)
	assert.False(t, d.Match)
	assert.Positive(t, d.DifferentPixels)
	assert.Equal(t, 255, d.MaxDifference)
}

func TestCompareTolerance(t *testing.T) {
	a := image.NewRGBA(image.Rect(0, 0, 2, 2))
	b := image.NewRGBA(image.Rect(0, 0, 2, 2))
	a.Set(0, 0, color.RGBA{100, 100, 100, 255})
	b.Set(0, 0, color.RGBA{103, 100, 100, 255})

	d, err := Compare(a, b, 3)
	require.NoError(t, err)
	assert.True(t, d.Match)
	assert.Equal(t, 3, d.MaxDifference)

	d, err = Compare(a, b, 2)
	require.NoError(t, err)
	assert.False(t, d.Match)
	assert.Equal(t, 1, d.DifferentPixels)
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, d.Image.RGBAAt(0, 0))
}

func TestCompareSizeMismatch(t *testing.T) {
	_, err := Compare(image.NewRGBA(image.Rect(0, 0, 2, 2)), image.NewRGBA(image.Rect(0, 0, 3, 2)), 0)
	assert.ErrorIs(t, err, ErrSizeMismatch)
}

func TestLoadAndSavePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tree.png")
	img := renderTree(t, 5)
	require.NoError(t, SaveImagePNG(img, path))

	loaded, err := LoadPNG(path)
	require.NoError(t, err)
	d, err := Compare(loaded, img, 0)
	require.NoError(t, err)
	assert.True(t, d.Match)

	_, err = LoadPNG(filepath.Join(t.TempDir(), "missing.png"))
	assert.Error(t, err)
}
