package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Disc represents a flat circular disc
type Disc struct {
	Center     core.Vec3 // Center of the disc
	UnitNormal core.Vec3 // Normal vector (pointing "up" from the disc)
	Radius     float64   // Radius of the disc
}

// NewDisc creates a new disc
func NewDisc(center, normal core.Vec3, radius float64) *Disc {
	return &Disc{
		Center:     center,
		UnitNormal: normal.Normalize(),
		Radius:     radius,
	}
}

// Intersect hits the supporting plane and keeps points within the radius
func (d *Disc) Intersect(ray core.Ray) (core.Vec3, bool) {
	denom := d.UnitNormal.Dot(ray.Direction)
	if math.Abs(denom) < ParallelEpsilon {
		return core.Vec3{}, false
	}

	t := d.UnitNormal.Dot(d.Center.Subtract(ray.Origin)) / denom
	if t <= minParameter(ray.Direction) {
		return core.Vec3{}, false
	}

	hitPoint := ray.At(t)
	if hitPoint.Subtract(d.Center).LengthSquared() > d.Radius*d.Radius {
		return core.Vec3{}, false
	}

	return hitPoint, true
}

// Normal returns the disc normal, which is the same everywhere
func (d *Disc) Normal(point core.Vec3) core.Vec3 {
	return d.UnitNormal
}

// ShadowIntersect reports whether the disc blocks the ray before maxLength
func (d *Disc) ShadowIntersect(ray core.Ray, maxLength float64) bool {
	return shadowHit(d, ray, maxLength)
}
