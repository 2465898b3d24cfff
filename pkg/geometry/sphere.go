package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center core.Vec3
	Radius float64
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64) *Sphere {
	return &Sphere{
		Center: center,
		Radius: radius,
	}
}

// Intersect returns the nearest hit point ahead of the ray origin.
// From outside the sphere that is the near root, from inside the far one.
func (s *Sphere) Intersect(ray core.Ray) (core.Vec3, bool) {
	t, ok := s.hitParameter(ray)
	if !ok {
		return core.Vec3{}, false
	}
	return ray.At(t), true
}

// hitParameter solves the ray-sphere quadratic and returns the smallest valid t
func (s *Sphere) hitParameter(ray core.Ray) (float64, bool) {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + 2·halfB·t + c = 0
	a := ray.Direction.Dot(ray.Direction)
	if a == 0 {
		return 0, false
	}
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		if discriminant < -TangentEpsilon {
			return 0, false
		}
		discriminant = 0
	}

	sqrtD := math.Sqrt(discriminant)
	tMin := minParameter(ray.Direction)

	// Try the closer intersection point first
	root := (-halfB - sqrtD) / a
	if root <= tMin {
		// Origin is inside the sphere (or it is behind us)
		root = (-halfB + sqrtD) / a
		if root <= tMin {
			return 0, false
		}
	}

	return root, true
}

// Normal returns the outward unit normal at point
func (s *Sphere) Normal(point core.Vec3) core.Vec3 {
	return point.Subtract(s.Center).Normalize()
}

// ShadowIntersect reports whether the sphere blocks the ray before maxLength
func (s *Sphere) ShadowIntersect(ray core.Ray, maxLength float64) bool {
	return shadowHit(s, ray, maxLength)
}
