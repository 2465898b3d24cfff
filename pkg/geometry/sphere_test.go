package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func vecClose(a, b core.Vec3, tolerance float64) bool {
	return math.Abs(a.X-b.X) <= tolerance &&
		math.Abs(a.Y-b.Y) <= tolerance &&
		math.Abs(a.Z-b.Z) <= tolerance
}

func TestSphere_Intersect_Miss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0)
	ray := core.NewRay(core.NewVec3(2, 0, 0), core.NewVec3(0, 1, 0))

	if point, isHit := sphere.Intersect(ray); isHit {
		t.Errorf("Expected miss, but got hit at %v", point)
	}
}

func TestSphere_Intersect_Roots(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0)

	tests := []struct {
		name         string
		rayOrigin    core.Vec3
		rayDirection core.Vec3
		expectHit    bool
		expected     core.Vec3
	}{
		{
			name:         "outside picks near root",
			rayOrigin:    core.NewVec3(0, 0, 3),
			rayDirection: core.NewVec3(0, 0, -1),
			expectHit:    true,
			expected:     core.NewVec3(0, 0, 1),
		},
		{
			name:         "inside picks far root",
			rayOrigin:    core.NewVec3(0, 0, 0),
			rayDirection: core.NewVec3(0, 0, 1),
			expectHit:    true,
			expected:     core.NewVec3(0, 0, 1),
		},
		{
			name:         "sphere behind origin",
			rayOrigin:    core.NewVec3(0, 0, 3),
			rayDirection: core.NewVec3(0, 0, 1),
			expectHit:    false,
		},
		{
			name:         "unnormalized direction",
			rayOrigin:    core.NewVec3(0, 0, 3),
			rayDirection: core.NewVec3(0, 0, -7),
			expectHit:    true,
			expected:     core.NewVec3(0, 0, 1),
		},
		{
			name:         "leaving the surface outward",
			rayOrigin:    core.NewVec3(0, 0, 1),
			rayDirection: core.NewVec3(0, 0, 1),
			expectHit:    false,
		},
		{
			name:         "leaving the surface inward",
			rayOrigin:    core.NewVec3(0, 0, 1),
			rayDirection: core.NewVec3(0, 0, -1),
			expectHit:    true,
			expected:     core.NewVec3(0, 0, -1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			point, isHit := sphere.Intersect(core.NewRay(tt.rayOrigin, tt.rayDirection))
			if isHit != tt.expectHit {
				t.Fatalf("Expected hit=%t, got hit=%t at %v", tt.expectHit, isHit, point)
			}
			if isHit && !vecClose(point, tt.expected, 1e-9) {
				t.Errorf("Expected point %v, got %v", tt.expected, point)
			}
		})
	}
}

func TestSphere_Intersect_TangentBoundary(t *testing.T) {
	const delta = 0.000001
	sphere := NewSphere(core.NewVec3(0, 0, 5), 4.0)
	forward := core.NewVec3(0, 0, 1)

	point, isHit := sphere.Intersect(core.NewRay(core.NewVec3(0, 0, 0), forward))
	if !isHit || point != core.NewVec3(0, 0, 1) {
		t.Errorf("Expected head-on hit at (0,0,1), got %v (hit=%t)", point, isHit)
	}

	point, isHit = sphere.Intersect(core.NewRay(core.NewVec3(4, 0, 0), forward))
	if !isHit || !vecClose(point, core.NewVec3(4, 0, 5), 1e-9) {
		t.Errorf("Expected tangent hit at (4,0,5), got %v (hit=%t)", point, isHit)
	}

	if point, isHit := sphere.Intersect(core.NewRay(core.NewVec3(4+delta, 0, 0), forward)); isHit {
		t.Errorf("Expected miss just outside the tangent, got %v", point)
	}

	if _, isHit := sphere.Intersect(core.NewRay(core.NewVec3(10, 0, 0), forward)); isHit {
		t.Error("Expected miss for distant parallel ray")
	}

	oblique := core.NewVec3(12.0/5.0, 0, 9.0/5.0).Normalize()
	if _, isHit := sphere.Intersect(core.NewRay(core.Origin(), oblique)); !isHit {
		t.Error("Expected oblique tangent ray to hit")
	}

	obliqueMiss := core.NewVec3(12.0/5.0+delta, 0, 9.0/5.0).Normalize()
	if point, isHit := sphere.Intersect(core.NewRay(core.Origin(), obliqueMiss)); isHit {
		t.Errorf("Expected oblique ray past the tangent to miss, got %v", point)
	}
}

func TestSphere_Normal_OutwardUnitLength(t *testing.T) {
	const radius = 2.5
	sphere := NewSphere(core.NewVec3(0, 0, 0), radius)

	for i := 0; i < 12; i++ {
		for j := 1; j < 6; j++ {
			theta := float64(i) * 2 * math.Pi / 12
			phi := float64(j) * math.Pi / 6
			direction := core.NewVec3(
				math.Sin(phi)*math.Cos(theta),
				math.Sin(phi)*math.Sin(theta),
				math.Cos(phi),
			)
			point := direction.Multiply(radius)

			normal := sphere.Normal(point)
			if math.Abs(normal.Length()-1) > 1e-9 {
				t.Errorf("Normal at %v is not unit length: %f", point, normal.Length())
			}
			if normal.Dot(point) <= 0 {
				t.Errorf("Normal at %v points inward: %v", point, normal)
			}
		}
	}

	if n := sphere.Normal(core.NewVec3(radius, 0, 0)); n != core.NewVec3(1, 0, 0) {
		t.Errorf("Expected normal (1,0,0), got %v", n)
	}
}

func TestSphere_ShadowIntersect(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 5), 1.0)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))

	tests := []struct {
		name      string
		maxLength float64
		expected  bool
	}{
		{"light beyond sphere", 10, true},
		{"light just beyond hit", 4.01, true},
		{"light exactly at hit", 4, false},
		{"light before sphere", 3, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sphere.ShadowIntersect(ray, tt.maxLength); got != tt.expected {
				t.Errorf("Expected %t, got %t", tt.expected, got)
			}
		})
	}
}

func TestOffsetRay(t *testing.T) {
	ray := OffsetRay(core.NewVec3(1, 1, 1), core.NewVec3(0, 0, 3))

	if !vecClose(ray.Origin, core.NewVec3(1, 1, 1+Epsilon), 1e-12) {
		t.Errorf("Expected origin nudged by Epsilon, got %v", ray.Origin)
	}
	if ray.Direction != core.NewVec3(0, 0, 3) {
		t.Errorf("Expected direction preserved, got %v", ray.Direction)
	}
}
