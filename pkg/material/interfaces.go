package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// TraceFunc continues a path from a new ray with one less bounce of budget.
// It is supplied by the integrator; materials never decide when to stop.
type TraceFunc func(ray core.Ray) core.Radiance

// Material describes how a surface emits and scatters light.
// All directions are unit vectors; incoming points in the direction light
// travels (towards the surface), outgoing points away from it.
type Material interface {
	// Emittance is the light the surface emits on its own towards outgoing
	Emittance(normal, outgoing core.Vec3) core.Radiance

	// Reflectance evaluates the BRDF for light arriving along incoming and leaving along outgoing
	Reflectance(normal, incoming, outgoing core.Vec3) core.Radiance

	// NextStep returns the recursive contribution of secondary rays spawned at point
	NextStep(point, normal, incoming core.Vec3, trace TraceFunc) core.Radiance
}

// Base gives every Material method a zero default.
// Concrete materials embed it and override only what they need.
type Base struct{}

// Emittance implements Material
func (Base) Emittance(normal, outgoing core.Vec3) core.Radiance {
	return core.Zero()
}

// Reflectance implements Material
func (Base) Reflectance(normal, incoming, outgoing core.Vec3) core.Radiance {
	return core.Zero()
}

// NextStep implements Material
func (Base) NextStep(point, normal, incoming core.Vec3, trace TraceFunc) core.Radiance {
	return core.Zero()
}
