package lights

import "github.com/df07/go-pathtracer/pkg/core"

type LightType string

const (
	LightTypePoint LightType = "point"
	LightTypeSpot  LightType = "spot"
)

// Light is a point emitter sampled for direct lighting through shadow rays
type Light interface {
	Type() LightType

	// Position is where shadow rays are aimed
	Position() core.Vec3

	// Intensity is the radiance received at point, ignoring occlusion
	Intensity(point core.Vec3) core.Radiance
}

// inverseSquare scales power by 1/d² for a receiver at distance d.
// A receiver at the light position gets nothing.
func inverseSquare(power core.Radiance, origin, point core.Vec3) core.Radiance {
	distanceSquared := point.Subtract(origin).LengthSquared()
	if distanceSquared == 0 {
		return core.Zero()
	}
	return power.MulScalar(1 / distanceSquared)
}
