package material

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
)

func TestMaterial_Default(t *testing.T) {
	m := DefaultMaterial()

	if m.Pattern != NewSolidPattern(core.White) {
		t.Errorf("Expected solid white pattern, got %v", m.Pattern)
	}
	if m.Ambient != 0.1 || m.Diffuse != 0.9 || m.Specular != 0.9 || m.Shininess != 200 {
		t.Errorf("Unexpected default parameters: %+v", m)
	}
}

func TestMaterial_Equal(t *testing.T) {
	a := NewColored(core.NewColor(1, 0.2, 1))
	b := NewColored(core.NewColor(1, 0.2, 1))
	if !a.Equal(b) {
		t.Error("Materials with the same parameters should be equal")
	}

	b.Ambient = 1
	if a.Equal(b) {
		t.Error("Materials with different ambient should differ")
	}

	c := DefaultMaterial()
	c.Pattern = NewStripePattern(core.White, core.Black)
	if c.Equal(DefaultMaterial()) {
		t.Error("Materials with different patterns should differ")
	}
}

func TestMaterial_Lighting(t *testing.T) {
	const tolerance = 1e-4
	h := math.Sqrt2 / 2
	position := core.Point(0, 0, 0)
	normal := core.Vector(0, 0, -1)

	tests := []struct {
		name     string
		eye      core.Tuple
		light    lights.PointLight
		inShadow bool
		expected float64
	}{
		{"eye between light and surface", core.Vector(0, 0, -1), lights.NewPointLight(core.Point(0, 0, -10), core.White), false, 1.9},
		{"eye offset 45 degrees", core.Vector(0, h, -h), lights.NewPointLight(core.Point(0, 0, -10), core.White), false, 1.0},
		{"light offset 45 degrees", core.Vector(0, 0, -1), lights.NewPointLight(core.Point(0, 10, -10), core.White), false, 0.7364},
		{"eye in path of reflection", core.Vector(0, -h, -h), lights.NewPointLight(core.Point(0, 10, -10), core.White), false, 1.6364},
		{"light behind surface", core.Vector(0, 0, -1), lights.NewPointLight(core.Point(0, 0, 10), core.White), false, 0.1},
		{"surface in shadow", core.Vector(0, 0, -1), lights.NewPointLight(core.Point(0, 0, -10), core.White), true, 0.1},
	}

	m := DefaultMaterial()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.Lighting(nil, tt.light, position, tt.eye, normal, tt.inShadow)
			if math.Abs(got.R-tt.expected) > tolerance ||
				math.Abs(got.G-tt.expected) > tolerance ||
				math.Abs(got.B-tt.expected) > tolerance {
				t.Errorf("Expected (%f,%f,%f), got %v", tt.expected, tt.expected, tt.expected, got)
			}
		})
	}
}

func TestMaterial_LightingWithPattern(t *testing.T) {
	m := Material{
		Pattern:   NewStripePattern(core.White, core.Black),
		Ambient:   1,
		Diffuse:   0,
		Specular:  0,
		Shininess: 200,
	}
	eye := core.Vector(0, 0, -1)
	normal := core.Vector(0, 0, -1)
	light := lights.NewPointLight(core.Point(0, 0, -10), core.White)

	if got := m.Lighting(nil, light, core.Point(0.9, 0, 0), eye, normal, false); !got.Equal(core.White) {
		t.Errorf("Expected white at x=0.9, got %v", got)
	}
	if got := m.Lighting(nil, light, core.Point(1.1, 0, 0), eye, normal, false); !got.Equal(core.Black) {
		t.Errorf("Expected black at x=1.1, got %v", got)
	}

	// the object transform moves the point into pattern space first
	scaled := transformed{core.Scaling(2, 1, 1)}
	if got := m.Lighting(scaled, light, core.Point(1.1, 0, 0), eye, normal, false); !got.Equal(core.White) {
		t.Errorf("Expected white at x=1.1 on a scaled object, got %v", got)
	}
}

func TestMaterial_LightingIsNotClamped(t *testing.T) {
	m := DefaultMaterial()
	light := lights.NewPointLight(core.Point(0, 0, -10), core.NewColor(2, 2, 2))
	got := m.Lighting(nil, light, core.Point(0, 0, 0), core.Vector(0, 0, -1), core.Vector(0, 0, -1), false)
	if got.R <= 1 {
		t.Errorf("Expected an unclamped channel above 1, got %v", got)
	}
}
