package world

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// World is an ordered set of shapes lit by at most one point light.
// It is read-only once built and safe for concurrent use.
type World struct {
	shapes []geometry.Shape
	light  *lights.PointLight
}

// Shapes returns a copy of the world's shapes in insertion order
func (w *World) Shapes() []geometry.Shape {
	return append([]geometry.Shape(nil), w.shapes...)
}

// Light returns the world's light, if one is set
func (w *World) Light() (lights.PointLight, bool) {
	if w.light == nil {
		return lights.PointLight{}, false
	}
	return *w.light, true
}

// Intersect returns the crossings of ray with every shape, sorted by t
func (w *World) Intersect(ray core.Ray) geometry.Intersections {
	var xs geometry.Intersections
	for _, shape := range w.shapes {
		xs.AddShape(shape, ray)
	}
	return xs
}

// IsShadowed reports whether any shape lies between point and the light.
// Without a light nothing is shadowed.
func (w *World) IsShadowed(point core.Tuple) bool {
	if w.light == nil {
		return false
	}

	sample := w.light.Sample(point)
	hit, ok := w.Intersect(core.NewRay(point, sample.Direction)).Hit()
	return ok && hit.T < sample.Distance
}

// ShadeHit computes the color at a prepared intersection. The shadow test
// starts from the over point so the surface does not shadow itself.
func (w *World) ShadeHit(comps geometry.Computations) core.Color {
	if w.light == nil {
		return core.Black
	}

	return comps.Object.Material().Lighting(
		comps.Object,
		*w.light,
		comps.Point,
		comps.EyeV,
		comps.NormalV,
		w.IsShadowed(comps.OverPoint),
	)
}

// ColorAt returns the color seen along ray, black when nothing is hit
func (w *World) ColorAt(ray core.Ray) core.Color {
	hit, ok := w.Intersect(ray).Hit()
	if !ok {
		return core.Black
	}
	return w.ShadeHit(hit.PrepareComputations(ray))
}

// DefaultWorld returns two concentric spheres lit from the upper left:
// a unit sphere with a green material and a white sphere of radius 0.5
func DefaultWorld() (*World, error) {
	outer := material.NewColored(core.NewColor(0.8, 1.0, 0.6))
	outer.Diffuse = 0.7
	outer.Specular = 0.2

	return NewBuilder().
		WithLight(lights.NewPointLight(core.Point(-10, 10, -10), core.White)).
		AddSphere(core.Identity(), outer).
		AddSphere(core.Scaling(0.5, 0.5, 0.5), material.DefaultMaterial()).
		Build()
}
