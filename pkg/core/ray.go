package core

// Ray represents a ray with an origin point and a direction vector
type Ray struct {
	Origin    Tuple
	Direction Tuple
}

// NewRay creates a new ray. It panics if origin is not a point or direction
// is not a vector, since either indicates a construction bug.
func NewRay(origin, direction Tuple) Ray {
	if !origin.IsPoint() {
		panic("ray origin must be a point")
	}
	if !direction.IsVector() {
		panic("ray direction must be a vector")
	}
	return Ray{Origin: origin, Direction: direction}
}

// Position returns the point at parameter t along the ray
func (r Ray) Position(t float64) Tuple {
	return r.Origin.Add(r.Direction.Multiply(t))
}

// Transform returns the ray with origin and direction multiplied by m
func (r Ray) Transform(m Matrix4) Ray {
	return Ray{
		Origin:    m.MultiplyTuple(r.Origin),
		Direction: m.MultiplyTuple(r.Direction),
	}
}
