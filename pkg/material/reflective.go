package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
)

// Reflective is a perfect mirror tinted by its attenuation color
type Reflective struct {
	Base
	Attenuation core.Radiance // Mirror color
}

// NewReflective creates a new mirror material
func NewReflective(attenuation core.Radiance) *Reflective {
	return &Reflective{Attenuation: attenuation}
}

// NextStep traces the mirror direction and tints the result
func (m *Reflective) NextStep(point, normal, incoming core.Vec3, trace TraceFunc) core.Radiance {
	reflected := Reflect(incoming, normal)
	return trace(geometry.OffsetRay(point, reflected)).MulLight(m.Attenuation)
}

// Reflect calculates the reflection of a vector v off a surface with normal n
func Reflect(v, n core.Vec3) core.Vec3 {
	// r = v - 2*dot(v,n)*n
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}
