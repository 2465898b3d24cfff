package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Triangle represents a single triangle defined by three vertices
type Triangle struct {
	V0, V1, V2 core.Vec3 // The three vertices
	normal     core.Vec3 // Cached (V1-V0) × (V2-V0), normalized
}

// NewTriangle creates a new triangle from three vertices.
// Counter-clockwise winding seen from the front gives the normal.
func NewTriangle(v0, v1, v2 core.Vec3) *Triangle {
	edge1 := v1.Subtract(v0)
	edge2 := v2.Subtract(v0)
	return &Triangle{
		V0:     v0,
		V1:     v1,
		V2:     v2,
		normal: edge1.Cross(edge2).Normalize(),
	}
}

// Intersect uses the Möller-Trumbore algorithm
func (t *Triangle) Intersect(ray core.Ray) (core.Vec3, bool) {
	edge1 := t.V1.Subtract(t.V0)
	edge2 := t.V2.Subtract(t.V0)

	h := ray.Direction.Cross(edge2)
	a := edge1.Dot(h)

	// Ray lies in the plane of the triangle
	if a > -ParallelEpsilon && a < ParallelEpsilon {
		return core.Vec3{}, false
	}

	f := 1.0 / a
	s := ray.Origin.Subtract(t.V0)
	u := f * s.Dot(h)
	if u < 0.0 || u > 1.0 {
		return core.Vec3{}, false
	}

	q := s.Cross(edge1)
	v := f * ray.Direction.Dot(q)
	if v < 0.0 || u+v > 1.0 {
		return core.Vec3{}, false
	}

	param := f * edge2.Dot(q)
	if param <= minParameter(ray.Direction) {
		return core.Vec3{}, false
	}

	return ray.At(param), true
}

// Normal returns the face normal
func (t *Triangle) Normal(point core.Vec3) core.Vec3 {
	return t.normal
}

// ShadowIntersect reports whether the triangle blocks the ray before maxLength
func (t *Triangle) ShadowIntersect(ray core.Ray, maxLength float64) bool {
	return shadowHit(t, ray, maxLength)
}
