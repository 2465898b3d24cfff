package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestPlane_NormalIsUnitLength(t *testing.T) {
	coefficients := [][4]float64{
		{0, 1, 0, 0},
		{0, 0, 7, -3},
		{1, 1, 1, 1},
		{-3, 4, 12, 100},
		{1e-3, 2e-3, -5e-4, 0},
		{250, -1000, 30, 7},
	}

	for _, c := range coefficients {
		plane := NewPlane(c[0], c[1], c[2], c[3])
		normal := plane.Normal(core.NewVec3(0, 0, 0))
		if math.Abs(normal.Length()-1) > 1e-6 {
			t.Errorf("Plane %v: expected unit normal, got length %f", c, normal.Length())
		}
	}
}

func TestPlane_NormalizationKeepsPlace(t *testing.T) {
	// 0·x + 0·y + 2·z - 10 = 0 is the plane z = 5
	plane := NewPlane(0, 0, 2, -10)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))

	point, isHit := plane.Intersect(ray)
	if !isHit {
		t.Fatal("Expected hit")
	}
	if !vecClose(point, core.NewVec3(0, 0, 5), 1e-12) {
		t.Errorf("Expected hit at (0,0,5), got %v", point)
	}
}

func TestPlane_Intersect(t *testing.T) {
	plane := NewPlaneFromPoint(core.NewVec3(0, -1, 0), core.NewVec3(0, 1, 0))

	tests := []struct {
		name      string
		ray       core.Ray
		expectHit bool
		expected  core.Vec3
	}{
		{
			name:      "straight down",
			ray:       core.NewRay(core.NewVec3(0, 2, 0), core.NewVec3(0, -1, 0)),
			expectHit: true,
			expected:  core.NewVec3(0, -1, 0),
		},
		{
			name:      "from below",
			ray:       core.NewRay(core.NewVec3(3, -4, 0), core.NewVec3(0, 1, 0)),
			expectHit: true,
			expected:  core.NewVec3(3, -1, 0),
		},
		{
			name:      "oblique",
			ray:       core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, -1, 0)),
			expectHit: true,
			expected:  core.NewVec3(1, -1, 0),
		},
		{
			name:      "parallel",
			ray:       core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0)),
			expectHit: false,
		},
		{
			name:      "pointing away",
			ray:       core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0)),
			expectHit: false,
		},
		{
			name:      "starting on the plane",
			ray:       core.NewRay(core.NewVec3(0, -1, 0), core.NewVec3(0, 1, 1)),
			expectHit: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			point, isHit := plane.Intersect(tt.ray)
			if isHit != tt.expectHit {
				t.Fatalf("Expected hit=%t, got hit=%t at %v", tt.expectHit, isHit, point)
			}
			if isHit && !vecClose(point, tt.expected, 1e-9) {
				t.Errorf("Expected %v, got %v", tt.expected, point)
			}
		})
	}
}

func TestPlane_ShadowIntersect(t *testing.T) {
	plane := NewPlane(0, 0, 1, -3) // z = 3
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))

	if !plane.ShadowIntersect(ray, 5) {
		t.Error("Expected plane at distance 3 to occlude a light at distance 5")
	}
	if plane.ShadowIntersect(ray, 2) {
		t.Error("Expected plane at distance 3 not to occlude a light at distance 2")
	}
}
