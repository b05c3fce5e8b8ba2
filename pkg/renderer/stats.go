package renderer

import (
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/canvas"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels int           // Total number of pixels rendered
	TotalTiles  int           // Number of tiles the image was split into
	NumWorkers  int           // Number of parallel workers used
	Duration    time.Duration // Wall-clock render time
}

// PixelsPerSecond returns the render throughput
func (s RenderStats) PixelsPerSecond() float64 {
	if s.Duration <= 0 {
		return 0
	}
	return float64(s.TotalPixels) / s.Duration.Seconds()
}

// AverageLuminance returns the mean Rec. 709 luminance of the canvas,
// with channels clamped to [0, 1]
func AverageLuminance(c *canvas.Canvas) float64 {
	total := c.Width() * c.Height()
	if total == 0 {
		return 0
	}

	sum := 0.0
	for y := 0; y < c.Height(); y++ {
		for x := 0; x < c.Width(); x++ {
			p := c.PixelAt(x, y).Clamp(0, 1)
			sum += 0.2126*p.R + 0.7152*p.G + 0.0722*p.B
		}
	}
	return sum / float64(total)
}
