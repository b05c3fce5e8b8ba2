package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Sphere is the unit sphere centered at the object-space origin
type Sphere struct{}

// NewSphere creates a sphere placed in the world by transform
func NewSphere(transform core.Matrix4, mat material.Material) (*Object, error) {
	return NewObject(Sphere{}, transform, mat)
}

// LocalIntersect solves |O + tD|² = 1. Both roots are returned unclamped.
func (Sphere) LocalIntersect(ray core.Ray) []float64 {
	// Vector from sphere center to ray origin
	sphereToRay := ray.Origin.Subtract(core.Point(0, 0, 0))

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	b := 2 * ray.Direction.Dot(sphereToRay)
	c := sphereToRay.Dot(sphereToRay) - 1

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return nil
	}

	sqrtD := math.Sqrt(discriminant)
	return []float64{
		(-b - sqrtD) / (2 * a),
		(-b + sqrtD) / (2 * a),
	}
}

// LocalNormalAt points from the center to the surface point
func (Sphere) LocalNormalAt(point core.Tuple) core.Tuple {
	return point.Subtract(core.Point(0, 0, 0))
}
