package scene

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
)

// pixelColor traces the single camera ray through pixel (px, py)
func pixelColor(t *testing.T, s *Scene, px, py int) core.Color {
	t.Helper()
	camera, err := s.Camera()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	return s.World.ColorAt(camera.RayForPixel(px, py))
}

func TestDefaultScene_MiddleSphereIsGreen(t *testing.T) {
	s, err := NewDefaultScene(renderer.CameraConfig{Width: 100, Height: 75})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	c := pixelColor(t, s, 50, 37)
	if c.G <= c.R || c.G <= c.B {
		t.Errorf("Center of the default scene should show the green sphere, got %v", c)
	}
}

func TestDefaultScene_WallsAreLit(t *testing.T) {
	s, err := NewDefaultScene(renderer.CameraConfig{Width: 100, Height: 75})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// Top corners look past the spheres onto the back walls
	for _, px := range []int{2, 97} {
		c := pixelColor(t, s, px, 2)
		if c.R <= 0.15 {
			t.Errorf("Wall at pixel (%d,2) should get more than ambient light, got %v", px, c)
		}
		if math.Abs(c.G-c.B) > 1e-9 {
			t.Errorf("Wall should have equal green and blue, got %v", c)
		}
	}
}

func TestCornellScene_WallColors(t *testing.T) {
	s, err := NewCornellScene()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	left := pixelColor(t, s, 2, 200)
	if left.R <= left.G {
		t.Errorf("Left wall should be red, got %v", left)
	}
	right := pixelColor(t, s, 397, 200)
	if right.G <= right.R {
		t.Errorf("Right wall should be green, got %v", right)
	}
}

func TestTestScene_CenterPixel(t *testing.T) {
	s, err := NewTestScene(renderer.CameraConfig{Width: 11, Height: 11})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	got := pixelColor(t, s, 5, 5)
	expected := core.NewColor(0.38066, 0.47583, 0.2855)
	if !got.Equal(expected) {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestOklchToRGB(t *testing.T) {
	tests := []struct {
		name     string
		l, c, h  float64
		expected core.Color
	}{
		{"white", 1, 0, 0, core.NewColor(1, 1, 1)},
		{"black", 0, 0, 120, core.NewColor(0, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := oklchToRGB(tt.l, tt.c, tt.h); !got.Equal(tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}

	for hue := 0.0; hue < 360; hue += 30 {
		c := oklchToRGB(0.7, 0.4, hue)
		for _, v := range []float64{c.R, c.G, c.B} {
			if v < 0 || v > 1 {
				t.Errorf("Hue %.0f: channel %f outside [0,1]", hue, v)
			}
		}
	}
}
