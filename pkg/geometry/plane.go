package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Plane is the infinite xz plane (y=0) in object space
type Plane struct{}

// NewPlane creates a plane placed in the world by transform
func NewPlane(transform core.Matrix4, mat material.Material) (*Object, error) {
	return NewObject(Plane{}, transform, mat)
}

// LocalIntersect returns the single crossing of y=0. Parallel and coplanar
// rays miss.
func (Plane) LocalIntersect(ray core.Ray) []float64 {
	if math.Abs(ray.Direction.Y) < core.Epsilon {
		return nil
	}
	return []float64{-ray.Origin.Y / ray.Direction.Y}
}

// LocalNormalAt is constant across the plane
func (Plane) LocalNormalAt(point core.Tuple) core.Tuple {
	return core.Vector(0, 1, 0)
}
