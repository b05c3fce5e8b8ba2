package core

import "math"

// Translation moves points by (x, y, z); vectors are unaffected
func Translation(x, y, z float64) Matrix4 {
	return Matrix4{
		{1, 0, 0, x},
		{0, 1, 0, y},
		{0, 0, 1, z},
		{0, 0, 0, 1},
	}
}

// Scaling scales each axis independently
func Scaling(x, y, z float64) Matrix4 {
	return Matrix4{
		{x, 0, 0, 0},
		{0, y, 0, 0},
		{0, 0, z, 0},
		{0, 0, 0, 1},
	}
}

// RotationX rotates around the x axis by r radians
func RotationX(r float64) Matrix4 {
	sin, cos := math.Sincos(r)
	return Matrix4{
		{1, 0, 0, 0},
		{0, cos, -sin, 0},
		{0, sin, cos, 0},
		{0, 0, 0, 1},
	}
}

// RotationY rotates around the y axis by r radians
func RotationY(r float64) Matrix4 {
	sin, cos := math.Sincos(r)
	return Matrix4{
		{cos, 0, sin, 0},
		{0, 1, 0, 0},
		{-sin, 0, cos, 0},
		{0, 0, 0, 1},
	}
}

// RotationZ rotates around the z axis by r radians
func RotationZ(r float64) Matrix4 {
	sin, cos := math.Sincos(r)
	return Matrix4{
		{cos, -sin, 0, 0},
		{sin, cos, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Shearing moves each component in proportion to the other two
func Shearing(xy, xz, yx, yz, zx, zy float64) Matrix4 {
	return Matrix4{
		{1, xy, xz, 0},
		{yx, 1, yz, 0},
		{zx, zy, 1, 0},
		{0, 0, 0, 1},
	}
}

// Chain composes transforms in the order they are applied to a point,
// so Chain(a, b, c) == c * b * a.
func Chain(transforms ...Matrix4) Matrix4 {
	result := Identity()
	for _, t := range transforms {
		result = t.Multiply(result)
	}
	return result
}

// ViewTransform orients the world relative to an eye at from looking at to
func ViewTransform(from, to, up Tuple) Matrix4 {
	forward := to.Subtract(from).Normalize()
	left := forward.Cross(up.Normalize())
	trueUp := left.Cross(forward)

	orientation := Matrix4{
		{left.X, left.Y, left.Z, 0},
		{trueUp.X, trueUp.Y, trueUp.Z, 0},
		{-forward.X, -forward.Y, -forward.Z, 0},
		{0, 0, 0, 1},
	}
	return orientation.Multiply(Translation(-from.X, -from.Y, -from.Z))
}
