package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Quad represents a parallelogram defined by a corner and two edge vectors
type Quad struct {
	Corner     core.Vec3 // One corner of the quad
	U          core.Vec3 // First edge vector
	V          core.Vec3 // Second edge vector
	UnitNormal core.Vec3 // Normalized U × V
	d          float64   // Plane equation constant: n·p = d
	w          core.Vec3 // Cached n / (n·(U×V)) for the in-bounds test
}

// NewQuad creates a new quad from a corner point and two edge vectors.
// The normal follows the right-hand rule on U then V.
func NewQuad(corner, u, v core.Vec3) *Quad {
	cross := u.Cross(v)
	normal := cross.Normalize()

	var w core.Vec3
	if denom := normal.Dot(cross); denom != 0 {
		w = normal.Multiply(1.0 / denom)
	}

	return &Quad{
		Corner:     corner,
		U:          u,
		V:          v,
		UnitNormal: normal,
		d:          normal.Dot(corner),
		w:          w,
	}
}

// Intersect hits the supporting plane, then keeps points inside the edges
func (q *Quad) Intersect(ray core.Ray) (core.Vec3, bool) {
	denominator := ray.Direction.Dot(q.UnitNormal)
	if math.Abs(denominator) < ParallelEpsilon {
		return core.Vec3{}, false
	}

	t := (q.d - ray.Origin.Dot(q.UnitNormal)) / denominator
	if t <= minParameter(ray.Direction) {
		return core.Vec3{}, false
	}

	hitPoint := ray.At(t)
	hitVector := hitPoint.Subtract(q.Corner)

	// Planar coordinates along U and V
	alpha := q.w.Dot(hitVector.Cross(q.V))
	beta := q.w.Dot(q.U.Cross(hitVector))
	if alpha < 0 || alpha > 1 || beta < 0 || beta > 1 {
		return core.Vec3{}, false
	}

	return hitPoint, true
}

// Normal returns the quad normal, which is the same everywhere
func (q *Quad) Normal(point core.Vec3) core.Vec3 {
	return q.UnitNormal
}

// ShadowIntersect reports whether the quad blocks the ray before maxLength
func (q *Quad) ShadowIntersect(ray core.Ray, maxLength float64) bool {
	return shadowHit(q, ray, maxLength)
}
