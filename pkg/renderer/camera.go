package renderer

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/canvas"
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// ErrInvalidCamera is returned for camera settings that cannot produce an image
var ErrInvalidCamera = errors.New("invalid camera configuration")

// CameraConfig contains the parameters for creating a camera
type CameraConfig struct {
	Width       int          // Horizontal size in pixels
	Height      int          // Vertical size in pixels
	FieldOfView float64      // Field of view in radians, across the longer side
	Transform   core.Matrix4 // World-to-camera transform, usually core.ViewTransform
}

// MergeCameraConfig returns base with every non-zero field of override applied
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	result := base
	if override.Width != 0 {
		result.Width = override.Width
	}
	if override.Height != 0 {
		result.Height = override.Height
	}
	if override.FieldOfView != 0 {
		result.FieldOfView = override.FieldOfView
	}
	if override.Transform != (core.Matrix4{}) {
		result.Transform = override.Transform
	}
	return result
}

// Camera maps canvas pixels to world-space rays
type Camera struct {
	config     CameraConfig
	inverse    core.Matrix4
	halfWidth  float64
	halfHeight float64
	pixelSize  float64
}

// NewCamera creates a camera. The inverse transform and pixel geometry are
// computed once here.
func NewCamera(config CameraConfig) (*Camera, error) {
	if config.Width <= 0 || config.Height <= 0 {
		return nil, fmt.Errorf("%w: size %dx%d", ErrInvalidCamera, config.Width, config.Height)
	}
	if config.FieldOfView <= 0 || config.FieldOfView >= math.Pi {
		return nil, fmt.Errorf("%w: field of view %f", ErrInvalidCamera, config.FieldOfView)
	}

	inverse, err := config.Transform.Inverse()
	if err != nil {
		return nil, fmt.Errorf("camera transform: %w", err)
	}

	halfView := math.Tan(config.FieldOfView / 2)
	aspect := float64(config.Width) / float64(config.Height)

	c := &Camera{config: config, inverse: inverse}
	if aspect >= 1 {
		c.halfWidth = halfView
		c.halfHeight = halfView / aspect
	} else {
		c.halfWidth = halfView * aspect
		c.halfHeight = halfView
	}
	c.pixelSize = c.halfWidth * 2 / float64(config.Width)

	return c, nil
}

// Width returns the horizontal size in pixels
func (c *Camera) Width() int { return c.config.Width }

// Height returns the vertical size in pixels
func (c *Camera) Height() int { return c.config.Height }

// FieldOfView returns the field of view in radians
func (c *Camera) FieldOfView() float64 { return c.config.FieldOfView }

// Transform returns the world-to-camera transform
func (c *Camera) Transform() core.Matrix4 { return c.config.Transform }

// PixelSize returns the world-space size of one pixel on the canvas at z=-1
func (c *Camera) PixelSize() float64 { return c.pixelSize }

// HalfWidth returns half the canvas width in world units
func (c *Camera) HalfWidth() float64 { return c.halfWidth }

// HalfHeight returns half the canvas height in world units
func (c *Camera) HalfHeight() float64 { return c.halfHeight }

// RayForPixel returns the ray from the camera through the center of pixel (px, py).
// The camera looks toward -z, so canvas x grows to the camera's left.
func (c *Camera) RayForPixel(px, py int) core.Ray {
	xOffset := (float64(px) + 0.5) * c.pixelSize
	yOffset := (float64(py) + 0.5) * c.pixelSize

	worldX := c.halfWidth - xOffset
	worldY := c.halfHeight - yOffset

	pixel := c.inverse.MultiplyTuple(core.Point(worldX, worldY, -1))
	origin := c.inverse.MultiplyTuple(core.Point(0, 0, 0))
	direction := pixel.Subtract(origin).Normalize()

	return core.NewRay(origin, direction)
}

// Render renders every pixel of the world with the default configuration
func (c *Camera) Render(w World) *canvas.Canvas {
	img, _, err := c.RenderContext(context.Background(), w, DefaultRenderConfig())
	if err != nil {
		// only cancellation fails a render and the background context is never cancelled
		panic(err)
	}
	return img
}
