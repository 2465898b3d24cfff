package integrator

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// PathTracer is a deterministic recursive ray tracer. Every hit gathers
// direct light from the scene's light sources, then hands the material a
// continuation for its mirror or refraction bounce while budget remains.
type PathTracer struct {
	MaxBounces int // Bounce budget for each camera ray
}

// NewPathTracer creates a path tracer with the given bounce budget.
// Negative budgets are treated as zero.
func NewPathTracer(maxBounces int) *PathTracer {
	if maxBounces < 0 {
		maxBounces = 0
	}
	return &PathTracer{MaxBounces: maxBounces}
}

// RayColor traces a camera ray with the configured bounce budget
func (pt *PathTracer) RayColor(ray core.Ray, s *scene.Scene) core.Radiance {
	return pt.TracePath(s, ray, pt.MaxBounces)
}

// TracePath returns the radiance arriving along ray. Each recursive call
// made through a material's NextStep gets budget-1, and no recursion
// happens at budget zero.
func (pt *PathTracer) TracePath(s *scene.Scene, ray core.Ray, budget int) core.Radiance {
	hit, ok := s.Intersect(ray)
	if !ok {
		return s.Background(ray.Direction)
	}

	viewDir := ray.Direction.Normalize().Negate()
	color := pt.directLighting(s, hit, viewDir)

	if budget > 0 {
		indirect := hit.Object.NextStep(hit.Point, ray.Direction, func(next core.Ray) core.Radiance {
			return pt.TracePath(s, next, budget-1)
		})
		color = color.Add(indirect)
	}

	return color.Add(hit.Object.Emittance(hit.Point, viewDir))
}

// directLighting sums the contribution of every light that the hit point can see
func (pt *PathTracer) directLighting(s *scene.Scene, hit scene.Hit, viewDir core.Vec3) core.Radiance {
	total := core.Zero()

	for _, light := range s.Lights {
		toLight := light.Position().Subtract(hit.Point)
		distance := toLight.Length()
		if distance == 0 {
			continue
		}
		toLight = toLight.Multiply(1 / distance)

		// The shadow ray starts Epsilon along toLight, so it has that much less to cover
		shadowRay := geometry.OffsetRay(hit.Point, toLight)
		if s.ShadowIntersect(shadowRay, distance-geometry.Epsilon) {
			continue
		}

		reflectance := hit.Object.Reflectance(hit.Point, toLight.Negate(), viewDir)
		if reflectance.IsZero() {
			continue
		}
		total = total.Add(light.Intensity(hit.Point).MulLight(reflectance))
	}

	return total
}
