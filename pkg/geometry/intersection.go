package geometry

import (
	"sort"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Intersection records where along a ray a shape was crossed
type Intersection struct {
	T      float64 // Parameter t along the ray
	Object Shape   // Shape that was crossed
}

// NewIntersection creates a new intersection
func NewIntersection(t float64, object Shape) Intersection {
	return Intersection{T: t, Object: object}
}

// Intersections is a collection kept sorted by ascending T.
// Entries with equal T keep their insertion order.
type Intersections struct {
	items []Intersection
}

// NewIntersections creates a sorted collection from xs
func NewIntersections(xs ...Intersection) Intersections {
	var result Intersections
	result.Add(xs...)
	return result
}

// Add inserts intersections and restores ascending order
func (xs *Intersections) Add(items ...Intersection) {
	if len(items) == 0 {
		return
	}
	xs.items = append(xs.items, items...)
	sort.SliceStable(xs.items, func(i, j int) bool {
		return xs.items[i].T < xs.items[j].T
	})
}

// AddShape intersects ray with shape and inserts every crossing
func (xs *Intersections) AddShape(shape Shape, ray core.Ray) {
	roots := shape.Intersect(ray)
	items := make([]Intersection, len(roots))
	for i, t := range roots {
		items[i] = NewIntersection(t, shape)
	}
	xs.Add(items...)
}

// Len returns the number of intersections
func (xs Intersections) Len() int {
	return len(xs.items)
}

// At returns the i-th intersection in ascending order
func (xs Intersections) At(i int) Intersection {
	return xs.items[i]
}

// All returns a copy of the sorted intersections
func (xs Intersections) All() []Intersection {
	return append([]Intersection(nil), xs.items...)
}

// Hit returns the intersection with the smallest non-negative T
func (xs Intersections) Hit() (Intersection, bool) {
	for _, x := range xs.items {
		if x.T >= 0 {
			return x, true
		}
	}
	return Intersection{}, false
}

// Computations holds the values needed to shade one intersection
type Computations struct {
	T         float64
	Object    Shape
	Point     core.Tuple // World-space hit point
	OverPoint core.Tuple // Point nudged along the normal, used as shadow ray origin
	EyeV      core.Tuple // Negated ray direction
	NormalV   core.Tuple // Unit normal, flipped to face the eye
	Inside    bool       // Whether the ray started inside the shape
}

// PrepareComputations derives the shading inputs for this intersection on ray
func (i Intersection) PrepareComputations(ray core.Ray) Computations {
	comps := Computations{
		T:      i.T,
		Object: i.Object,
		Point:  ray.Position(i.T),
		EyeV:   ray.Direction.Negate(),
	}
	comps.NormalV = i.Object.NormalAt(comps.Point)

	if comps.NormalV.Dot(comps.EyeV) < 0 {
		comps.Inside = true
		comps.NormalV = comps.NormalV.Negate()
	}

	comps.OverPoint = comps.Point.Add(comps.NormalV.Multiply(core.Epsilon))
	return comps
}
