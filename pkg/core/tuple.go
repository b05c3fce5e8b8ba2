package core

import "math"

// Epsilon is the tolerance used for tuple, colour and matrix comparisons, for
// the plane-parallel test and for the shadow-acne offset.
const Epsilon = 1e-3

// Tuple is a homogeneous coordinate. W is 1 for points and 0 for vectors;
// other values only appear as intermediate results of matrix products.
type Tuple struct {
	X, Y, Z, W float64
}

// NewTuple creates a raw tuple
func NewTuple(x, y, z, w float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: w}
}

// Point creates a tuple with w=1
func Point(x, y, z float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: 1}
}

// Vector creates a tuple with w=0
func Vector(x, y, z float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: 0}
}

// IsPoint reports whether w is 1
func (t Tuple) IsPoint() bool {
	return approxEqual(t.W, 1)
}

// IsVector reports whether w is 0
func (t Tuple) IsVector() bool {
	return approxEqual(t.W, 0)
}

// Add returns the component-wise sum. Point + vector yields a point.
func (t Tuple) Add(other Tuple) Tuple {
	return Tuple{t.X + other.X, t.Y + other.Y, t.Z + other.Z, t.W + other.W}
}

// Subtract returns the component-wise difference. Point - point yields a vector.
func (t Tuple) Subtract(other Tuple) Tuple {
	return Tuple{t.X - other.X, t.Y - other.Y, t.Z - other.Z, t.W - other.W}
}

// Negate returns the tuple with every component negated
func (t Tuple) Negate() Tuple {
	return Tuple{-t.X, -t.Y, -t.Z, -t.W}
}

// Multiply scales every component
func (t Tuple) Multiply(scalar float64) Tuple {
	return Tuple{t.X * scalar, t.Y * scalar, t.Z * scalar, t.W * scalar}
}

// Divide divides every component
func (t Tuple) Divide(scalar float64) Tuple {
	return Tuple{t.X / scalar, t.Y / scalar, t.Z / scalar, t.W / scalar}
}

// Magnitude returns the length of the tuple
func (t Tuple) Magnitude() float64 {
	return math.Sqrt(t.X*t.X + t.Y*t.Y + t.Z*t.Z + t.W*t.W)
}

// Normalize returns a unit tuple in the same direction.
// A zero tuple is returned unchanged.
func (t Tuple) Normalize() Tuple {
	length := t.Magnitude()
	if length == 0 {
		return t
	}
	return t.Divide(length)
}

// Dot returns the dot product over all four components
func (t Tuple) Dot(other Tuple) float64 {
	return t.X*other.X + t.Y*other.Y + t.Z*other.Z + t.W*other.W
}

// Cross returns the cross product of two vectors
func (t Tuple) Cross(other Tuple) Tuple {
	return Vector(
		t.Y*other.Z-t.Z*other.Y,
		t.Z*other.X-t.X*other.Z,
		t.X*other.Y-t.Y*other.X,
	)
}

// Reflect reflects the vector around the normal
func (t Tuple) Reflect(normal Tuple) Tuple {
	return t.Subtract(normal.Multiply(2 * t.Dot(normal)))
}

// Equal compares tuples within Epsilon
func (t Tuple) Equal(other Tuple) bool {
	return approxEqual(t.X, other.X) &&
		approxEqual(t.Y, other.Y) &&
		approxEqual(t.Z, other.Z) &&
		approxEqual(t.W, other.W)
}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}
