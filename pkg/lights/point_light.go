package lights

import "github.com/df07/go-pathtracer/pkg/core"

// PointLight emits its power uniformly in every direction from one point
type PointLight struct {
	Origin core.Vec3     // Light position in world space
	Power  core.Radiance // Radiant power
}

// NewPointLight creates a new point light
func NewPointLight(origin core.Vec3, power core.Radiance) *PointLight {
	return &PointLight{Origin: origin, Power: power}
}

// Type implements the Light interface
func (pl *PointLight) Type() LightType {
	return LightTypePoint
}

// Position implements the Light interface
func (pl *PointLight) Position() core.Vec3 {
	return pl.Origin
}

// Intensity falls off with the inverse square of the distance
func (pl *PointLight) Intensity(point core.Vec3) core.Radiance {
	return inverseSquare(pl.Power, pl.Origin, point)
}
