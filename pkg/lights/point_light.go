package lights

import "github.com/df07/go-whitted-raytracer/pkg/core"

// PointLight is a light source with no size at a single position
type PointLight struct {
	Position  core.Tuple // Light position in world space
	Intensity core.Color // Light color and brightness
}

// LightSample describes the light as seen from a shading point
type LightSample struct {
	Direction core.Tuple // Unit vector from the shading point toward the light
	Distance  float64    // Distance from the shading point to the light
	Intensity core.Color // Light intensity
}

// NewPointLight creates a new point light
func NewPointLight(position core.Tuple, intensity core.Color) PointLight {
	return PointLight{Position: position, Intensity: intensity}
}

// Sample returns the direction and distance from point to the light.
// A point at the light position yields a zero direction and distance.
func (l PointLight) Sample(point core.Tuple) LightSample {
	toLight := l.Position.Subtract(point)
	return LightSample{
		Direction: toLight.Normalize(),
		Distance:  toLight.Magnitude(),
		Intensity: l.Intensity,
	}
}

// Equal compares position and intensity within core.Epsilon
func (l PointLight) Equal(other PointLight) bool {
	return l.Position.Equal(other.Position) && l.Intensity.Equal(other.Intensity)
}
