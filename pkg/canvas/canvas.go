package canvas

import (
	"image"
	"image/color"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Canvas is a fixed-size grid of linear colors, initially black.
// Distinct pixels may be written concurrently.
type Canvas struct {
	width, height int
	pixels        []core.Color
}

// New creates a black canvas. Negative sizes are treated as zero.
func New(width, height int) *Canvas {
	width, height = max(width, 0), max(height, 0)
	return &Canvas{
		width:  width,
		height: height,
		pixels: make([]core.Color, width*height),
	}
}

// Width returns the canvas width in pixels
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in pixels
func (c *Canvas) Height() int {
	return c.height
}

// WritePixel sets the color at (x, y). Writes outside the canvas are ignored.
func (c *Canvas) WritePixel(x, y int, col core.Color) {
	if !c.inBounds(x, y) {
		return
	}
	c.pixels[y*c.width+x] = col
}

// PixelAt returns the color at (x, y), or black outside the canvas
func (c *Canvas) PixelAt(x, y int) core.Color {
	if !c.inBounds(x, y) {
		return core.Black
	}
	return c.pixels[y*c.width+x]
}

func (c *Canvas) inBounds(x, y int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height
}

// Image converts the canvas to an 8-bit image, clamping each channel to [0, 1]
func (c *Canvas) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, c.width, c.height))
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			p := c.PixelAt(x, y)
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(scaleChannel(p.R, 255)),
				G: uint8(scaleChannel(p.G, 255)),
				B: uint8(scaleChannel(p.B, 255)),
				A: 255,
			})
		}
	}
	return img
}

// FromImage creates a canvas from any image, mapping channels to [0, 1]
func FromImage(img image.Image) *Canvas {
	bounds := img.Bounds()
	c := New(bounds.Dx(), bounds.Dy())

	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			// RGBA returns uint32 in [0, 65535]
			c.pixels[y*c.width+x] = core.NewColor(
				float64(r)/65535.0,
				float64(g)/65535.0,
				float64(b)/65535.0,
			)
		}
	}
	return c
}

// scaleChannel clamps v to [0, 1] and scales it to an integer in [0, maxValue]
func scaleChannel(v float64, maxValue int) int {
	v = max(0, min(1, v))
	return int(math.Round(v * float64(maxValue)))
}
