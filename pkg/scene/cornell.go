package scene

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/world"
)

// NewCornellScene creates a Cornell box of planes spanning [-1,1] on each axis,
// open towards the camera, lit by a point light just under the ceiling
func NewCornellScene(cameraOverrides ...renderer.CameraConfig) (*Scene, error) {
	cameraConfig := lookAt(400, 400, math.Pi/4, core.Point(0, 0, -3.4), core.Point(0, 0, 0))

	// Create materials
	white := phong(core.NewColor(0.73, 0.73, 0.73), 0.9, 0, 200)
	red := phong(core.NewColor(0.65, 0.05, 0.05), 0.9, 0, 200)
	green := phong(core.NewColor(0.12, 0.45, 0.15), 0.9, 0, 200)
	white.Ambient = 0.2
	red.Ambient = 0.2
	green.Ambient = 0.2

	b := world.NewBuilder().
		AddPlane(core.Translation(0, -1, 0), white).                                       // floor
		AddPlane(core.Translation(0, 1, 0), white).                                        // ceiling
		AddPlane(core.Chain(core.RotationX(math.Pi/2), core.Translation(0, 0, 1)), white). // back wall
		AddPlane(core.Chain(core.RotationZ(math.Pi/2), core.Translation(-1, 0, 0)), red).  // left wall
		AddPlane(core.Chain(core.RotationZ(math.Pi/2), core.Translation(1, 0, 0)), green). // right wall
		AddSphere(core.Chain(core.Scaling(0.35, 0.35, 0.35), core.Translation(-0.4, -0.65, 0.3)),
			phong(core.NewColor(0.9, 0.9, 0.9), 0.7, 0.8, 300)).
		AddSphere(core.Chain(core.Scaling(0.25, 0.25, 0.25), core.Translation(0.45, -0.75, -0.3)),
			phong(core.NewColor(0.3, 0.4, 0.9), 0.8, 0.4, 100)).
		WithLight(lights.NewPointLight(core.Point(0, 0.9, 0), core.White))

	return newScene("cornell", b, cameraConfig, cameraOverrides)
}
