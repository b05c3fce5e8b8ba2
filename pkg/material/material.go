package material

import (
	"math"
	"reflect"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
)

// Material holds the Phong reflectance parameters of a surface
type Material struct {
	Pattern   Pattern
	Ambient   float64
	Diffuse   float64
	Specular  float64
	Shininess float64
}

// DefaultMaterial returns solid white with ambient 0.1, diffuse 0.9,
// specular 0.9 and shininess 200
func DefaultMaterial() Material {
	return Material{
		Pattern:   NewSolidPattern(core.White),
		Ambient:   0.1,
		Diffuse:   0.9,
		Specular:  0.9,
		Shininess: 200,
	}
}

// NewColored returns the default material with a solid color
func NewColored(color core.Color) Material {
	m := DefaultMaterial()
	m.Pattern = NewSolidPattern(color)
	return m
}

// Equal compares the reflectance parameters within core.Epsilon and the patterns by value
func (m Material) Equal(other Material) bool {
	return math.Abs(m.Ambient-other.Ambient) < core.Epsilon &&
		math.Abs(m.Diffuse-other.Diffuse) < core.Epsilon &&
		math.Abs(m.Specular-other.Specular) < core.Epsilon &&
		math.Abs(m.Shininess-other.Shininess) < core.Epsilon &&
		reflect.DeepEqual(m.Pattern, other.Pattern)
}

// Lighting computes the Phong color at a world point. object supplies the
// transform used to evaluate the pattern in object space and may be nil.
// The result is not clamped.
func (m Material) Lighting(object Transformer, light lights.PointLight, point, eye, normal core.Tuple, inShadow bool) core.Color {
	effective := PatternAtObject(m.Pattern, object, point).Hadamard(light.Intensity)
	ambient := effective.Scale(m.Ambient)

	if inShadow {
		return ambient
	}

	lightV := light.Sample(point).Direction
	lightDotNormal := lightV.Dot(normal)
	if lightDotNormal < 0 {
		return ambient
	}

	diffuse := effective.Scale(m.Diffuse * lightDotNormal)

	specular := core.Black
	reflectV := lightV.Negate().Reflect(normal)
	if reflectDotEye := reflectV.Dot(eye); reflectDotEye > 0 {
		factor := math.Pow(reflectDotEye, m.Shininess)
		specular = light.Intensity.Scale(m.Specular * factor)
	}

	return ambient.Add(diffuse).Add(specular)
}
