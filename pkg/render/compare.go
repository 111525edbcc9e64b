package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
)

var ErrSizeMismatch = errors.New("render: image sizes differ")

// Diff is the outcome of comparing a render with a reference image.
type Diff struct {
	Match           bool
	DifferentPixels int
	TotalPixels     int
	MaxDifference   int // Largest 8-bit channel difference seen

	// Image shows matching pixels in grayscale and differing ones in red.
	Image *image.RGBA
}

// Compare checks two images pixel by pixel. Pixels whose channels all
// differ by at most tolerance (0-255) count as equal.
func Compare(actual, expected image.Image, tolerance int) (*Diff, error) {
	bounds := actual.Bounds()
	if bounds != expected.Bounds() {
		return nil, fmt.Errorf("%w: got %v, want %v", ErrSizeMismatch, bounds, expected.Bounds())
	}

	d := &Diff{
		Match:       true,
		TotalPixels: bounds.Dx() * bounds.Dy(),
		Image:       image.NewRGBA(bounds),
	}
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			a := color.NRGBAModel.Convert(actual.At(x, y)).(color.NRGBA)
			e := color.NRGBAModel.Convert(expected.At(x, y)).(color.NRGBA)

			diff := max(channelDiff(a.R, e.R), channelDiff(a.G, e.G), channelDiff(a.B, e.B), channelDiff(a.A, e.A))
			d.MaxDifference = max(d.MaxDifference, diff)

			if diff > tolerance {
				d.Match = false
				d.DifferentPixels++
				d.Image.Set(x, y, color.RGBA{255, 0, 0, 255})
				continue
			}
			gray := color.GrayModel.Convert(a).(color.Gray).Y
			d.Image.Set(x, y, color.RGBA{gray, gray, gray, 255})
		}
	}
	return d, nil
}

func channelDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}

// LoadPNG decodes the PNG at path.
func LoadPNG(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

// SaveImagePNG writes img to path.
func SaveImagePNG(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
