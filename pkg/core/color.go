package core

// Color is a linear RGB triple. Channels are not clamped until output.
type Color struct {
	R, G, B float64
}

var (
	Black = Color{0, 0, 0}
	White = Color{1, 1, 1}
)

// NewColor creates a new Color
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Add returns the channel-wise sum
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B}
}

// Subtract returns the channel-wise difference
func (c Color) Subtract(other Color) Color {
	return Color{c.R - other.R, c.G - other.G, c.B - other.B}
}

// Scale multiplies every channel by a scalar
func (c Color) Scale(factor float64) Color {
	return Color{c.R * factor, c.G * factor, c.B * factor}
}

// Hadamard returns the channel-wise product
func (c Color) Hadamard(other Color) Color {
	return Color{c.R * other.R, c.G * other.G, c.B * other.B}
}

// Clamp returns a color with channels clamped to [minVal, maxVal]
func (c Color) Clamp(minVal, maxVal float64) Color {
	return Color{
		R: max(minVal, min(maxVal, c.R)),
		G: max(minVal, min(maxVal, c.G)),
		B: max(minVal, min(maxVal, c.B)),
	}
}

// Equal compares colors within Epsilon
func (c Color) Equal(other Color) bool {
	return approxEqual(c.R, other.R) &&
		approxEqual(c.G, other.G) &&
		approxEqual(c.B, other.B)
}
