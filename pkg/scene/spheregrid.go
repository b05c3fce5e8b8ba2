package scene

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/world"
)

// oklchToRGB converts OKLCH color values to RGB
// L: lightness (0-1), C: chroma (0-0.4+), H: hue (0-360 degrees)
func oklchToRGB(l, c, h float64) core.Color {
	hRad := h * math.Pi / 180.0

	// OKLCH to OKLAB
	a := c * math.Cos(hRad)
	b := c * math.Sin(hRad)

	// OKLAB to LMS, then cube
	lc := l + 0.3963377774*a + 0.2158037573*b
	mc := l - 0.1055613458*a - 0.0638541728*b
	sc := l - 0.0894841775*a - 1.2914855480*b
	lc, mc, sc = lc*lc*lc, mc*mc*mc, sc*sc*sc

	// LMS to linear RGB
	return core.NewColor(
		+4.0767416621*lc-3.3077115913*mc+0.2309699292*sc,
		-1.2684380046*lc+2.6097574011*mc-0.3413193965*sc,
		-0.0041960863*lc-0.7034186147*mc+1.7076147010*sc,
	).Clamp(0, 1)
}

// NewSphereGridScene creates a grid of spheres on a ground plane. Hue varies
// along X and shininess along Z, from broad highlights at the front to tight
// ones at the back.
func NewSphereGridScene(cameraOverrides ...renderer.CameraConfig) (*Scene, error) {
	cameraConfig := lookAt(800, 450, math.Pi/4, core.Point(4.5, 6, -9), core.Point(4.5, 0.5, 4.5))

	ground := phong(core.NewColor(0.5, 0.5, 0.5), 0.9, 0, 200)
	b := world.NewBuilder().
		AddPlane(core.Identity(), ground).
		WithLight(lights.NewPointLight(core.Point(-5, 15, -5), core.NewColor(1, 0.98, 0.95)))

	const gridSize = 10
	const spacing = 1.0
	const radius = 0.35

	for i := 0; i < gridSize; i++ {
		for j := 0; j < gridSize; j++ {
			hue := float64(i) / float64(gridSize) * 360.0
			color := oklchToRGB(0.7, 0.15, hue)
			shininess := 10 * math.Pow(2, float64(j)/2) // 10 .. ~226

			b.AddSphere(core.Chain(
				core.Scaling(radius, radius, radius),
				core.Translation(float64(i)*spacing, radius, float64(j)*spacing),
			), phong(color, 0.7, 0.6, shininess))
		}
	}

	return newScene("spheregrid", b, cameraConfig, cameraOverrides)
}
