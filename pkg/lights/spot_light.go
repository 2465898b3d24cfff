package lights

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// SpotLight is a point light restricted to a cone with a soft edge
type SpotLight struct {
	origin          core.Vec3     // Light position in world space
	direction       core.Vec3     // Normalized direction vector (from -> to)
	power           core.Radiance // Radiant power
	cosTotalWidth   float64       // Cosine of total cone angle (outer edge)
	cosFalloffStart float64       // Cosine of falloff start angle (inner cone)
}

// NewSpotLight creates a spot light at from aimed at to.
// coneAngleDegrees is the outer half-angle of the cone and
// coneDeltaAngleDegrees the width of the soft transition inside it.
func NewSpotLight(from, to core.Vec3, power core.Radiance, coneAngleDegrees, coneDeltaAngleDegrees float64) *SpotLight {
	totalWidthRadians := coneAngleDegrees * math.Pi / 180.0
	falloffStartRadians := (coneAngleDegrees - coneDeltaAngleDegrees) * math.Pi / 180.0

	return &SpotLight{
		origin:          from,
		direction:       to.Subtract(from).Normalize(),
		power:           power,
		cosTotalWidth:   math.Cos(totalWidthRadians),
		cosFalloffStart: math.Cos(falloffStartRadians),
	}
}

// Type implements the Light interface
func (sl *SpotLight) Type() LightType {
	return LightTypeSpot
}

// Position implements the Light interface
func (sl *SpotLight) Position() core.Vec3 {
	return sl.origin
}

// Intensity applies the cone falloff on top of the inverse-square law
func (sl *SpotLight) Intensity(point core.Vec3) core.Radiance {
	lightToPoint := point.Subtract(sl.origin).Normalize()
	spot := sl.falloff(sl.direction.Dot(lightToPoint))
	if spot == 0 {
		return core.Zero()
	}
	return inverseSquare(sl.power, sl.origin, point).MulScalar(spot)
}

// falloff maps the cosine to the cone axis to [0, 1]
func (sl *SpotLight) falloff(cosAngle float64) float64 {
	// Outside the total cone width
	if cosAngle < sl.cosTotalWidth {
		return 0.0
	}

	// Inside the inner cone (full intensity)
	if cosAngle >= sl.cosFalloffStart {
		return 1.0
	}

	// Smooth quartic transition between the two cones
	delta := (cosAngle - sl.cosTotalWidth) / (sl.cosFalloffStart - sl.cosTotalWidth)
	return delta * delta * delta * delta
}
