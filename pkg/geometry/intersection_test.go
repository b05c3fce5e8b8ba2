package geometry

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestIntersections_Hit(t *testing.T) {
	s := mustSphere(t, core.Identity())

	tests := []struct {
		name     string
		ts       []float64
		expected float64
		ok       bool
	}{
		{"all positive", []float64{1, 2}, 1, true},
		{"some negative", []float64{-1, 1}, 1, true},
		{"all negative", []float64{-2, -1}, 0, false},
		{"zero counts as hit", []float64{-0.5, 0, 3}, 0, true},
		{"lowest non-negative", []float64{5, 7, -3, 2}, 2, true},
		{"empty", nil, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var xs Intersections
			for _, v := range tt.ts {
				xs.Add(NewIntersection(v, s))
			}
			hit, ok := xs.Hit()
			if ok != tt.ok {
				t.Fatalf("Hit() ok = %t, want %t", ok, tt.ok)
			}
			if ok && hit.T != tt.expected {
				t.Errorf("Hit() t = %f, want %f", hit.T, tt.expected)
			}
		})
	}
}

func TestIntersections_SortedAfterEveryInsertion(t *testing.T) {
	s := mustSphere(t, core.Identity())
	random := rand.New(rand.NewSource(42))

	for trial := 0; trial < 50; trial++ {
		var xs Intersections
		total := 0
		for batch := 0; batch < 5; batch++ {
			n := random.Intn(4)
			items := make([]Intersection, n)
			for i := range items {
				items[i] = NewIntersection(random.Float64()*20-10, s)
			}
			xs.Add(items...)
			total += n

			if xs.Len() != total {
				t.Fatalf("Expected %d intersections, got %d", total, xs.Len())
			}
			for i := 1; i < xs.Len(); i++ {
				if xs.At(i-1).T > xs.At(i).T {
					t.Fatalf("Trial %d: intersections out of order at %d: %v", trial, i, xs.All())
				}
			}
		}
	}
}

func TestIntersections_TiesKeepInsertionOrder(t *testing.T) {
	first := mustSphere(t, core.Identity())
	second := mustPlane(t, core.Identity())

	xs := NewIntersections(NewIntersection(3, first), NewIntersection(1, first))
	xs.Add(NewIntersection(1, second))

	hit, ok := xs.Hit()
	if !ok {
		t.Fatal("Expected a hit")
	}
	if hit.Object != Shape(first) {
		t.Errorf("Expected the first inserted shape to win the tie")
	}
}

func TestIntersections_AddShape(t *testing.T) {
	s := mustSphere(t, core.Identity())
	r := core.NewRay(core.Point(0, 0, -5), core.Vector(0, 0, 1))

	var xs Intersections
	xs.AddShape(s, r)

	if xs.Len() != 2 {
		t.Fatalf("Expected 2 intersections, got %d", xs.Len())
	}
	if xs.At(0).T != 4 || xs.At(1).T != 6 {
		t.Errorf("Expected t=4 and t=6, got %v", xs.All())
	}
	if xs.At(0).Object != Shape(s) {
		t.Error("Intersections should be tagged with the shape")
	}
}

func TestIntersections_AllReturnsCopy(t *testing.T) {
	s := mustSphere(t, core.Identity())
	xs := NewIntersections(NewIntersection(1, s))

	all := xs.All()
	all[0].T = 99
	if xs.At(0).T != 1 {
		t.Error("Modifying All() result must not change the collection")
	}
}

func TestIntersection_PrepareComputations(t *testing.T) {
	s := mustSphere(t, core.Identity())

	tests := []struct {
		name   string
		ray    core.Ray
		t      float64
		point  core.Tuple
		eye    core.Tuple
		normal core.Tuple
		inside bool
	}{
		{
			name:   "outside",
			ray:    core.NewRay(core.Point(0, 0, -5), core.Vector(0, 0, 1)),
			t:      4,
			point:  core.Point(0, 0, -1),
			eye:    core.Vector(0, 0, -1),
			normal: core.Vector(0, 0, -1),
			inside: false,
		},
		{
			name:   "inside",
			ray:    core.NewRay(core.Point(0, 0, 0), core.Vector(0, 0, 1)),
			t:      1,
			point:  core.Point(0, 0, 1),
			eye:    core.Vector(0, 0, -1),
			normal: core.Vector(0, 0, -1),
			inside: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			comps := NewIntersection(tt.t, s).PrepareComputations(tt.ray)

			if comps.T != tt.t {
				t.Errorf("Expected t %f, got %f", tt.t, comps.T)
			}
			if comps.Object != Shape(s) {
				t.Error("Expected computations to reference the shape")
			}
			if !comps.Point.Equal(tt.point) {
				t.Errorf("Expected point %v, got %v", tt.point, comps.Point)
			}
			if !comps.EyeV.Equal(tt.eye) {
				t.Errorf("Expected eye %v, got %v", tt.eye, comps.EyeV)
			}
			if !comps.NormalV.Equal(tt.normal) {
				t.Errorf("Expected normal %v, got %v", tt.normal, comps.NormalV)
			}
			if comps.Inside != tt.inside {
				t.Errorf("Expected inside %t, got %t", tt.inside, comps.Inside)
			}
		})
	}
}

func TestIntersection_OverPoint(t *testing.T) {
	s := mustSphere(t, core.Translation(0, 0, 1))
	r := core.NewRay(core.Point(0, 0, -5), core.Vector(0, 0, 1))

	comps := NewIntersection(5, s).PrepareComputations(r)

	if comps.OverPoint.Z >= -core.Epsilon/2 {
		t.Errorf("Over point should sit above the surface, got z=%f", comps.OverPoint.Z)
	}
	if comps.Point.Z <= comps.OverPoint.Z {
		t.Errorf("Point z=%f should be greater than over point z=%f", comps.Point.Z, comps.OverPoint.Z)
	}
	expected := comps.Point.Add(comps.NormalV.Multiply(core.Epsilon))
	if math.Abs(comps.OverPoint.Z-expected.Z) > 1e-12 {
		t.Errorf("Expected over point %v, got %v", expected, comps.OverPoint)
	}
}
