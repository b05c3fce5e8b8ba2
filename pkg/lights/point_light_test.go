package lights

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestPointLight_New(t *testing.T) {
	position := core.Point(0, 0, 0)
	intensity := core.NewColor(1, 1, 1)
	light := NewPointLight(position, intensity)

	if light.Position != position {
		t.Errorf("Expected position %v, got %v", position, light.Position)
	}
	if light.Intensity != intensity {
		t.Errorf("Expected intensity %v, got %v", intensity, light.Intensity)
	}
}

func TestPointLight_Sample(t *testing.T) {
	light := NewPointLight(core.Point(-10, 10, -10), core.White)

	tests := []struct {
		name              string
		point             core.Tuple
		expectedDirection core.Tuple
		expectedDistance  float64
	}{
		{
			name:              "origin",
			point:             core.Point(0, 0, 0),
			expectedDirection: core.Vector(-1, 1, -1).Normalize(),
			expectedDistance:  math.Sqrt(300),
		},
		{
			name:              "directly below",
			point:             core.Point(-10, 0, -10),
			expectedDirection: core.Vector(0, 1, 0),
			expectedDistance:  10,
		},
		{
			name:              "at the light",
			point:             core.Point(-10, 10, -10),
			expectedDirection: core.Vector(0, 0, 0),
			expectedDistance:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sample := light.Sample(tt.point)
			if !sample.Direction.Equal(tt.expectedDirection) {
				t.Errorf("Expected direction %v, got %v", tt.expectedDirection, sample.Direction)
			}
			if math.Abs(sample.Distance-tt.expectedDistance) > 1e-9 {
				t.Errorf("Expected distance %f, got %f", tt.expectedDistance, sample.Distance)
			}
			if sample.Intensity != core.White {
				t.Errorf("Expected white intensity, got %v", sample.Intensity)
			}
		})
	}
}

func TestPointLight_Equal(t *testing.T) {
	a := NewPointLight(core.Point(1, 2, 3), core.White)
	if !a.Equal(NewPointLight(core.Point(1, 2, 3.0001), core.White)) {
		t.Error("Lights within epsilon should be equal")
	}
	if a.Equal(NewPointLight(core.Point(1, 2, 3), core.NewColor(0.5, 0.5, 0.5))) {
		t.Error("Lights with different intensity should differ")
	}
}
