package scene

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/world"
)

// NewPlanesScene creates patterned spheres on a striped floor in front of a
// checkered backdrop
func NewPlanesScene(cameraOverrides ...renderer.CameraConfig) (*Scene, error) {
	cameraConfig := lookAt(800, 450, math.Pi/3, core.Point(0, 1.5, -5), core.Point(0, 1, 0))

	floor := material.DefaultMaterial()
	floor.Pattern = material.NewStripePattern(core.NewColor(0.9, 0.9, 0.9), core.NewColor(0.35, 0.35, 0.4))
	floor.Specular = 0

	backdrop := material.DefaultMaterial()
	backdrop.Pattern = material.NewCheckerPattern(core.NewColor(0.8, 0.5, 0.3), core.NewColor(0.95, 0.9, 0.8))
	backdrop.Specular = 0

	gradient := material.DefaultMaterial()
	gradient.Pattern = material.NewGradientPattern(core.NewColor(0.2, 0.3, 1), core.NewColor(1, 0.2, 0.3))
	gradient.Diffuse = 0.7
	gradient.Specular = 0.3

	striped := material.DefaultMaterial()
	striped.Pattern = material.NewStripePattern(core.NewColor(1, 0.9, 0.2), core.NewColor(0.2, 0.6, 0.2))
	striped.Diffuse = 0.7
	striped.Specular = 0.3

	b := world.NewBuilder().
		AddPlane(core.Identity(), floor).
		AddPlane(core.Chain(core.RotationX(math.Pi/2), core.Translation(0, 0, 6)), backdrop).
		AddSphere(core.Chain(core.RotationY(-math.Pi/6), core.Translation(-0.5, 1, 0.5)), gradient).
		AddSphere(core.Chain(core.Scaling(0.6, 0.6, 0.6), core.RotationZ(math.Pi/3), core.Translation(1.5, 0.6, -0.5)), striped).
		AddSphere(core.Chain(core.Scaling(0.4, 0.4, 0.4), core.Translation(-1.6, 0.4, -0.8)),
			phong(core.NewColor(0.9, 0.9, 0.95), 0.6, 0.9, 300)).
		WithLight(lights.NewPointLight(core.Point(-10, 10, -10), core.White))

	return newScene("planes", b, cameraConfig, cameraOverrides)
}
