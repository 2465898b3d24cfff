package geometry

import (
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestDisc_Intersect(t *testing.T) {
	// Disc of radius 2 at z=4 facing the origin
	disc := NewDisc(core.NewVec3(0, 0, 4), core.NewVec3(0, 0, -3), 2)

	tests := []struct {
		name      string
		ray       core.Ray
		expectHit bool
		expected  core.Vec3
	}{
		{"center", core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1)), true, core.NewVec3(0, 0, 4)},
		{"inside radius", core.NewRay(core.NewVec3(1.5, 0.5, 0), core.NewVec3(0, 0, 1)), true, core.NewVec3(1.5, 0.5, 4)},
		{"on the rim", core.NewRay(core.NewVec3(0, 2, 0), core.NewVec3(0, 0, 1)), true, core.NewVec3(0, 2, 4)},
		{"outside radius", core.NewRay(core.NewVec3(1.5, 1.5, 0), core.NewVec3(0, 0, 1)), false, core.Vec3{}},
		{"parallel", core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0)), false, core.Vec3{}},
		{"behind origin", core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, 1)), false, core.Vec3{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			point, isHit := disc.Intersect(tt.ray)
			if isHit != tt.expectHit {
				t.Fatalf("Expected hit=%v, got %v", tt.expectHit, isHit)
			}
			if isHit && !vecClose(point, tt.expected, 1e-9) {
				t.Errorf("Expected hit point %v, got %v", tt.expected, point)
			}
		})
	}
}

func TestDisc_Normal(t *testing.T) {
	disc := NewDisc(core.NewVec3(0, 0, 4), core.NewVec3(0, 0, -3), 2)
	if n := disc.Normal(core.NewVec3(1, 0, 4)); !vecClose(n, core.NewVec3(0, 0, -1), 1e-12) {
		t.Errorf("Expected normalized normal (0,0,-1), got %v", n)
	}
}

func TestDisc_ShadowIntersect(t *testing.T) {
	disc := NewDisc(core.NewVec3(0, 0, 4), core.NewVec3(0, 0, 1), 1)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))

	if !disc.ShadowIntersect(ray, 5) {
		t.Error("Expected disc to block a shadow ray past it")
	}
	if disc.ShadowIntersect(ray, 3) {
		t.Error("Expected disc not to block a shadow ray that stops short")
	}
}
