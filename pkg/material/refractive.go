package material

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
)

// Refractive represents a transparent material like glass.
// Rays are refracted through it, or mirrored on total internal reflection.
type Refractive struct {
	Base
	Attenuation     core.Radiance // Tint applied to transmitted light
	RefractiveIndex float64       // Index of refraction (e.g., 1.5 for glass)
}

// NewRefractive creates a new refractive material
func NewRefractive(attenuation core.Radiance, refractiveIndex float64) *Refractive {
	return &Refractive{Attenuation: attenuation, RefractiveIndex: refractiveIndex}
}

// NextStep traces the refracted ray, falling back to the mirror direction
// when the ray cannot leave the medium.
func (r *Refractive) NextStep(point, normal, incoming core.Vec3, trace TraceFunc) core.Radiance {
	direction := incoming.Normalize()

	next, ok := Refract(direction, normal, r.RefractiveIndex)
	if !ok {
		next = Reflect(direction, normal)
	}

	return trace(geometry.OffsetRay(point, next)).MulLight(r.Attenuation)
}

// Refract bends the unit direction d through a surface with outward unit
// normal n using Snell's law. The sign of n·d tells whether the ray enters
// (negative) or exits the medium. It returns false on total internal reflection.
func Refract(d, n core.Vec3, refractiveIndex float64) (core.Vec3, bool) {
	cosIncident := n.Dot(d)
	eta := 1.0 / refractiveIndex // Ray is entering the material (from air to glass)
	facing := n

	if cosIncident < 0 {
		cosIncident = -cosIncident
	} else {
		// Ray is exiting the material (from glass to air)
		eta = refractiveIndex
		facing = n.Negate()
	}

	k := 1 - eta*eta*(1-cosIncident*cosIncident)
	if k < 0 {
		return core.Vec3{}, false
	}

	return d.Multiply(eta).Add(facing.Multiply(eta*cosIncident - math.Sqrt(k))), true
}
