package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Emitter is a Lambertian light-emitting surface.
// It emits only into the hemisphere its normal faces.
type Emitter struct {
	Base
	Emission core.Radiance // Emitted light color/intensity
}

// NewEmitter creates a new emitting material
func NewEmitter(emission core.Radiance) *Emitter {
	return &Emitter{Emission: emission}
}

// Emittance scales the emission by the cosine of the emission angle
func (e *Emitter) Emittance(normal, outgoing core.Vec3) core.Radiance {
	cosine := normal.Dot(outgoing)
	if cosine <= 0 {
		return core.Zero()
	}
	return e.Emission.MulScalar(cosine)
}
