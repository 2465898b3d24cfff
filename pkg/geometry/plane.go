package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Plane represents an infinite plane n·p + offset = 0 with |n| = 1
type Plane struct {
	UnitNormal core.Vec3 // Normalized (a, b, c)
	Offset     float64   // Signed offset along the normal
}

// NewPlane creates a plane from the implicit form a·x + b·y + c·z + d = 0.
// The coefficients are rescaled so the stored normal has unit length.
func NewPlane(a, b, c, d float64) *Plane {
	normal := core.NewVec3(a, b, c)
	length := normal.Length()
	if length == 0 {
		return &Plane{UnitNormal: normal, Offset: d}
	}
	return &Plane{
		UnitNormal: normal.Multiply(1 / length),
		Offset:     d / length,
	}
}

// NewPlaneFromPoint creates the plane through point with the given normal
func NewPlaneFromPoint(point, normal core.Vec3) *Plane {
	n := normal.Normalize()
	return &Plane{UnitNormal: n, Offset: -n.Dot(point)}
}

// Intersect solves the line-plane equation. Rays parallel to the plane miss.
func (p *Plane) Intersect(ray core.Ray) (core.Vec3, bool) {
	denominator := p.UnitNormal.Dot(ray.Direction)
	if math.Abs(denominator) < ParallelEpsilon {
		return core.Vec3{}, false
	}

	t := -(p.UnitNormal.Dot(ray.Origin) + p.Offset) / denominator
	if t <= minParameter(ray.Direction) {
		return core.Vec3{}, false
	}

	return ray.At(t), true
}

// Normal returns the plane normal, which is the same everywhere
func (p *Plane) Normal(point core.Vec3) core.Vec3 {
	return p.UnitNormal
}

// ShadowIntersect reports whether the plane blocks the ray before maxLength
func (p *Plane) ShadowIntersect(ray core.Ray, maxLength float64) bool {
	return shadowHit(p, ray, maxLength)
}
