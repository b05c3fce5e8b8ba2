package material

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Pattern provides spatially-varying colors for materials.
// Points are given in the object space of the shape being shaded.
type Pattern interface {
	ColorAt(point core.Tuple) core.Color
}

// Transformer is anything carrying a world-to-object transform
type Transformer interface {
	InverseTransform() core.Matrix4
}

// PatternAtObject evaluates pattern at a world point after moving the point
// into object's space. A nil object leaves the point unchanged.
func PatternAtObject(pattern Pattern, object Transformer, worldPoint core.Tuple) core.Color {
	if object == nil {
		return pattern.ColorAt(worldPoint)
	}
	return pattern.ColorAt(object.InverseTransform().MultiplyTuple(worldPoint))
}

// SolidPattern provides a uniform color
type SolidPattern struct {
	Color core.Color
}

// NewSolidPattern creates a new solid color pattern
func NewSolidPattern(color core.Color) SolidPattern {
	return SolidPattern{Color: color}
}

// ColorAt returns the solid color regardless of position
func (s SolidPattern) ColorAt(point core.Tuple) core.Color {
	return s.Color
}

// StripePattern alternates between two colors every unit step along x
type StripePattern struct {
	A, B core.Color
}

// NewStripePattern creates a new stripe pattern
func NewStripePattern(a, b core.Color) StripePattern {
	return StripePattern{A: a, B: b}
}

// ColorAt returns A when floor(x) is even and B when it is odd.
// Negative coordinates floor toward negative infinity, so x=-0.1 lands in B.
func (s StripePattern) ColorAt(point core.Tuple) core.Color {
	if isEven(math.Floor(point.X)) {
		return s.A
	}
	return s.B
}

// CheckerPattern alternates colors in a 3D grid of unit cubes
type CheckerPattern struct {
	A, B core.Color
}

// NewCheckerPattern creates a new checker pattern
func NewCheckerPattern(a, b core.Color) CheckerPattern {
	return CheckerPattern{A: a, B: b}
}

// ColorAt returns A when the sum of the floored coordinates is even
func (c CheckerPattern) ColorAt(point core.Tuple) core.Color {
	sum := math.Floor(point.X) + math.Floor(point.Y) + math.Floor(point.Z)
	if isEven(sum) {
		return c.A
	}
	return c.B
}

// GradientPattern blends linearly from A to B across each unit step along x
type GradientPattern struct {
	A, B core.Color
}

// NewGradientPattern creates a new gradient pattern
func NewGradientPattern(a, b core.Color) GradientPattern {
	return GradientPattern{A: a, B: b}
}

// ColorAt interpolates using the fractional part of x
func (g GradientPattern) ColorAt(point core.Tuple) core.Color {
	t := point.X - math.Floor(point.X)
	return g.A.Add(g.B.Subtract(g.A).Scale(t))
}

func isEven(f float64) bool {
	return math.Mod(f, 2) == 0
}
