package geometry

import (
	"fmt"
	"reflect"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Shape interface for objects that can be hit by rays
type Shape interface {
	// Intersect returns the ray parameters of every crossing, in no particular order
	Intersect(ray core.Ray) []float64
	// NormalAt returns the unit world-space normal at a world point on the surface
	NormalAt(worldPoint core.Tuple) core.Tuple
	Material() material.Material
	Transform() core.Matrix4
	InverseTransform() core.Matrix4
}

// Surface is the object-space geometry of a shape. Implementations only deal
// with untransformed rays and points; Object handles world/object conversion.
type Surface interface {
	LocalIntersect(ray core.Ray) []float64
	LocalNormalAt(point core.Tuple) core.Tuple
}

// Object places a Surface in the world with a transform and a material
type Object struct {
	surface      Surface
	material     material.Material
	transform    core.Matrix4
	inverse      core.Matrix4
	normalMatrix core.Matrix4 // transpose of inverse
}

// NewObject creates a new object. The inverse transform is computed once here;
// a non-invertible transform returns an error wrapping core.ErrNonInvertible.
func NewObject(surface Surface, transform core.Matrix4, mat material.Material) (*Object, error) {
	inverse, err := transform.Inverse()
	if err != nil {
		return nil, fmt.Errorf("%T transform: %w", surface, err)
	}
	return &Object{
		surface:      surface,
		material:     mat,
		transform:    transform,
		inverse:      inverse,
		normalMatrix: inverse.Transpose(),
	}, nil
}

// Intersect transforms the ray into object space and intersects the surface
func (o *Object) Intersect(ray core.Ray) []float64 {
	return o.surface.LocalIntersect(ray.Transform(o.inverse))
}

// NormalAt maps the point into object space, asks the surface for its normal
// and maps the normal back using the transposed inverse
func (o *Object) NormalAt(worldPoint core.Tuple) core.Tuple {
	localPoint := o.inverse.MultiplyTuple(worldPoint)
	localNormal := o.surface.LocalNormalAt(localPoint)
	worldNormal := o.normalMatrix.MultiplyTuple(localNormal)
	worldNormal.W = 0
	return worldNormal.Normalize()
}

// Material returns the object's material
func (o *Object) Material() material.Material {
	return o.material
}

// Transform returns the object-to-world transform
func (o *Object) Transform() core.Matrix4 {
	return o.transform
}

// InverseTransform returns the cached world-to-object transform
func (o *Object) InverseTransform() core.Matrix4 {
	return o.inverse
}

// Surface returns the object-space geometry
func (o *Object) Surface() Surface {
	return o.surface
}

// Equal compares surface kind, material and transform. Two objects built
// from the same description are equal even if they are distinct values.
func (o *Object) Equal(other *Object) bool {
	if o == nil || other == nil {
		return o == other
	}
	return reflect.TypeOf(o.surface) == reflect.TypeOf(other.surface) &&
		o.material.Equal(other.material) &&
		o.transform.Equal(other.transform)
}
