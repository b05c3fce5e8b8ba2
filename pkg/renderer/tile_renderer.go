package renderer

import (
	"image"

	"github.com/df07/go-whitted-raytracer/pkg/canvas"
)

// TileRenderer renders rectangular regions of the image, one ray per pixel
type TileRenderer struct {
	camera *Camera
	world  World
}

// NewTileRenderer creates a new tile renderer for the given camera and world
func NewTileRenderer(camera *Camera, world World) *TileRenderer {
	return &TileRenderer{
		camera: camera,
		world:  world,
	}
}

// RenderTileBounds writes the color of every pixel within bounds to target
// and returns the number of pixels rendered
func (tr *TileRenderer) RenderTileBounds(bounds image.Rectangle, target *canvas.Canvas) int {
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			ray := tr.camera.RayForPixel(x, y)
			target.WritePixel(x, y, tr.world.ColorAt(ray))
		}
	}
	return bounds.Dx() * bounds.Dy()
}
