package scene

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/world"
)

// NewDefaultScene creates three spheres in a corner room whose floor and
// walls are spheres flattened to slabs
func NewDefaultScene(cameraOverrides ...renderer.CameraConfig) (*Scene, error) {
	cameraConfig := lookAt(1000, 750, math.Pi/3, core.Point(0, 1.5, -5), core.Point(0, 1, 0))

	wall := material.NewColored(core.NewColor(1, 0.9, 0.9))
	wall.Specular = 0

	slab := core.Scaling(10, 0.01, 10)

	b := world.NewBuilder().
		AddSphere(slab, wall).
		// Left and right walls stand on the floor, 45 degrees either side of the camera
		AddSphere(core.Chain(slab, core.RotationX(math.Pi/2), core.RotationY(-math.Pi/4), core.Translation(0, 0, 5)), wall).
		AddSphere(core.Chain(slab, core.RotationX(math.Pi/2), core.RotationY(math.Pi/4), core.Translation(0, 0, 5)), wall).
		AddSphere(core.Translation(-0.5, 1, 0.5),
			phong(core.NewColor(0.1, 1, 0.5), 0.7, 0.3, 200)).
		AddSphere(core.Chain(core.Scaling(0.5, 0.5, 0.5), core.Translation(1.5, 0.5, -0.5)),
			phong(core.NewColor(0.5, 1, 0.1), 0.7, 0.3, 200)).
		AddSphere(core.Chain(core.Scaling(0.33, 0.33, 0.33), core.Translation(-1.5, 0.33, -0.75)),
			phong(core.NewColor(1, 0.8, 0.1), 0.7, 0.3, 200)).
		WithLight(lights.NewPointLight(core.Point(-10, 10, -10), core.White))

	return newScene("default", b, cameraConfig, cameraOverrides)
}

// NewTestScene creates the two-sphere test world viewed head-on
func NewTestScene(cameraOverrides ...renderer.CameraConfig) (*Scene, error) {
	w, err := world.DefaultWorld()
	if err != nil {
		return nil, err
	}

	cameraConfig := lookAt(200, 200, math.Pi/2, core.Point(0, 0, -5), core.Point(0, 0, 0))
	b := world.NewBuilder().WithShape(w.Shapes()...)
	if light, ok := w.Light(); ok {
		b.WithLight(light)
	}

	return newScene("test", b, cameraConfig, cameraOverrides)
}
