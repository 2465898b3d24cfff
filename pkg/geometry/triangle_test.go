package geometry

import (
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestTriangle_Intersect(t *testing.T) {
	// Triangle in the XY plane at z=0
	triangle := NewTriangle(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0))

	tests := []struct {
		name      string
		ray       core.Ray
		shouldHit bool
		expected  core.Vec3
	}{
		{
			name:      "Ray hits triangle center",
			ray:       core.NewRay(core.NewVec3(0.25, 0.25, -1), core.NewVec3(0, 0, 1)),
			shouldHit: true,
			expected:  core.NewVec3(0.25, 0.25, 0),
		},
		{
			name:      "Ray hits triangle edge",
			ray:       core.NewRay(core.NewVec3(0.5, 0, -1), core.NewVec3(0, 0, 1)),
			shouldHit: true,
			expected:  core.NewVec3(0.5, 0, 0),
		},
		{
			name:      "Ray hits back face",
			ray:       core.NewRay(core.NewVec3(0.2, 0.2, 2), core.NewVec3(0, 0, -1)),
			shouldHit: true,
			expected:  core.NewVec3(0.2, 0.2, 0),
		},
		{
			name:      "Ray misses triangle",
			ray:       core.NewRay(core.NewVec3(1, 1, -1), core.NewVec3(0, 0, 1)),
			shouldHit: false,
		},
		{
			name:      "Ray parallel to triangle",
			ray:       core.NewRay(core.NewVec3(0.25, 0.25, 1), core.NewVec3(1, 0, 0)),
			shouldHit: false,
		},
		{
			name:      "Triangle behind ray",
			ray:       core.NewRay(core.NewVec3(0.25, 0.25, 1), core.NewVec3(0, 0, 1)),
			shouldHit: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			point, hit := triangle.Intersect(tt.ray)
			if hit != tt.shouldHit {
				t.Fatalf("Expected hit=%v, got %v", tt.shouldHit, hit)
			}
			if hit && !vecClose(point, tt.expected, 1e-9) {
				t.Errorf("Expected hit point %v, got %v", tt.expected, point)
			}
		})
	}
}

func TestTriangle_Normal(t *testing.T) {
	ccw := NewTriangle(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0))
	if n := ccw.Normal(core.NewVec3(0.1, 0.1, 0)); !vecClose(n, core.NewVec3(0, 0, 1), 1e-12) {
		t.Errorf("Expected normal (0,0,1), got %v", n)
	}

	cw := NewTriangle(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), core.NewVec3(1, 0, 0))
	if n := cw.Normal(core.NewVec3(0.1, 0.1, 0)); !vecClose(n, core.NewVec3(0, 0, -1), 1e-12) {
		t.Errorf("Expected reversed winding to flip the normal, got %v", n)
	}
}

func TestTriangle_ShadowIntersect(t *testing.T) {
	triangle := NewTriangle(core.NewVec3(-1, -1, 3), core.NewVec3(1, -1, 3), core.NewVec3(0, 1, 3))
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))

	if !triangle.ShadowIntersect(ray, 3.5) {
		t.Error("Expected triangle at distance 3 to block")
	}
	if triangle.ShadowIntersect(ray, 2.5) {
		t.Error("Expected triangle at distance 3 not to block a shorter shadow ray")
	}
}
