package renderer

import (
	"context"
	"fmt"
	"image"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/canvas"
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// World is what the renderer needs from a scene: the color seen along a ray.
// Implementations must be safe for concurrent use.
type World interface {
	ColorAt(ray core.Ray) core.Color
}

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// RenderConfig contains configuration for parallel rendering
type RenderConfig struct {
	TileSize   int         // Size of each square tile in pixels
	NumWorkers int         // Number of parallel workers (0 = use CPU count)
	Logger     core.Logger // Progress output (nil = silent)

	// ReferenceBounds skips the last row and column, matching renders made
	// with a loop over 0..size-1
	ReferenceBounds bool
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		TileSize:   32,
		NumWorkers: 0, // Auto-detect CPU count
	}
}

// Tile represents a rectangular region of the image to be rendered
type Tile struct {
	ID     int             // Unique tile identifier
	Bounds image.Rectangle // Pixel bounds (x0,y0,x1,y1)
}

// NewTileGrid creates a grid of tiles covering a width x height region
func NewTileGrid(width, height, tileSize int) []*Tile {
	if width <= 0 || height <= 0 {
		return nil
	}
	if tileSize <= 0 {
		tileSize = max(width, height)
	}

	var tiles []*Tile
	tileID := 0

	// Calculate number of tiles in each dimension
	tilesX := (width + tileSize - 1) / tileSize // Ceiling division
	tilesY := (height + tileSize - 1) / tileSize

	for tileY := 0; tileY < tilesY; tileY++ {
		for tileX := 0; tileX < tilesX; tileX++ {
			x0 := tileX * tileSize
			y0 := tileY * tileSize
			x1 := min(x0+tileSize, width) // Don't exceed image bounds
			y1 := min(y0+tileSize, height)

			tiles = append(tiles, &Tile{ID: tileID, Bounds: image.Rect(x0, y0, x1, y1)})
			tileID++
		}
	}

	return tiles
}

// renderBounds returns the size of the region that gets rendered
func (c *Camera) renderBounds(reference bool) (int, int) {
	if reference {
		return c.config.Width - 1, c.config.Height - 1
	}
	return c.config.Width, c.config.Height
}

// RenderContext renders the world in parallel tiles. Cancellation is checked
// before each tile starts; a cancelled render returns ctx.Err() and no canvas.
// The output does not depend on the worker count.
func (c *Camera) RenderContext(ctx context.Context, w World, config RenderConfig) (*canvas.Canvas, RenderStats, error) {
	logger := config.Logger
	if logger == nil {
		logger = core.NopLogger{}
	}

	startTime := time.Now()
	img := canvas.New(c.config.Width, c.config.Height)
	width, height := c.renderBounds(config.ReferenceBounds)
	tiles := NewTileGrid(width, height, config.TileSize)

	pool := NewWorkerPool(ctx, NewTileRenderer(c, w), img, len(tiles), config.NumWorkers)
	logger.Printf("Rendering %dx%d in %d tiles using %d workers...\n",
		c.config.Width, c.config.Height, len(tiles), pool.GetNumWorkers())

	pool.Start()
	for _, tile := range tiles {
		pool.SubmitTask(TileTask{Tile: tile, TaskID: tile.ID})
	}
	pool.Stop()

	stats := RenderStats{TotalTiles: len(tiles), NumWorkers: pool.GetNumWorkers()}
	var renderErr error
	for result, ok := pool.GetResult(); ok; result, ok = pool.GetResult() {
		if result.Error != nil {
			renderErr = result.Error
			continue
		}
		stats.TotalPixels += result.Pixels
	}
	stats.Duration = time.Since(startTime)

	if renderErr != nil {
		logger.Printf("Rendering cancelled after %v: %v\n", stats.Duration, renderErr)
		return nil, stats, renderErr
	}

	logger.Printf("Render completed in %v (%d pixels)\n", stats.Duration, stats.TotalPixels)
	return img, stats, nil
}
