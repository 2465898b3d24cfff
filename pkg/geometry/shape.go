package geometry

import "github.com/df07/go-pathtracer/pkg/core"

// Self-intersection policy. Secondary rays start Epsilon along their
// direction and hits closer than Epsilon to a ray origin are discarded.
// Both use the same magnitude, in world units.
const (
	Epsilon = 1e-4

	// TangentEpsilon absorbs rounding noise in the sphere discriminant so
	// that exactly tangent rays still report their single hit point.
	TangentEpsilon = 1e-9

	// ParallelEpsilon is the smallest |n·d| for which a plane is not
	// considered parallel to the ray.
	ParallelEpsilon = 1e-12
)

// Shape is the geometric capability shared by every surface kind
type Shape interface {
	// Intersect returns the nearest point strictly ahead of the ray origin
	Intersect(ray core.Ray) (core.Vec3, bool)

	// Normal returns the unit surface normal at a point on the shape
	Normal(point core.Vec3) core.Vec3

	// ShadowIntersect reports whether the ray hits the shape closer than maxLength
	ShadowIntersect(ray core.Ray, maxLength float64) bool
}

// OffsetRay builds a ray leaving origin along direction, nudged Epsilon
// forward so it cannot re-hit the surface it starts on.
func OffsetRay(origin, direction core.Vec3) core.Ray {
	return core.NewRay(origin.Add(direction.Normalize().Multiply(Epsilon)), direction)
}

// shadowHit implements ShadowIntersect in terms of Intersect
func shadowHit(s Shape, ray core.Ray, maxLength float64) bool {
	point, hit := s.Intersect(ray)
	if !hit {
		return false
	}
	return point.DistanceTo(ray.Origin) < maxLength
}

// minParameter converts the absolute Epsilon into ray-parameter units
func minParameter(direction core.Vec3) float64 {
	length := direction.Length()
	if length == 0 {
		return Epsilon
	}
	return Epsilon / length
}
