package material

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Mix blends two materials with a fixed weight
type Mix struct {
	Material1 Material
	Material2 Material
	Ratio     float64 // 0.0 = all material1, 1.0 = all material2
}

// NewMix creates a new mix material
func NewMix(material1, material2 Material, ratio float64) *Mix {
	// Clamp ratio to valid range
	ratio = math.Max(0.0, math.Min(ratio, 1.0))

	return &Mix{
		Material1: material1,
		Material2: material2,
		Ratio:     ratio,
	}
}

func (m *Mix) blend(a, b core.Radiance) core.Radiance {
	return a.MulScalar(1.0 - m.Ratio).Add(b.MulScalar(m.Ratio))
}

// Emittance blends the emission of both materials
func (m *Mix) Emittance(normal, outgoing core.Vec3) core.Radiance {
	return m.blend(m.Material1.Emittance(normal, outgoing), m.Material2.Emittance(normal, outgoing))
}

// Reflectance blends the BRDFs of both materials
func (m *Mix) Reflectance(normal, incoming, outgoing core.Vec3) core.Radiance {
	return m.blend(
		m.Material1.Reflectance(normal, incoming, outgoing),
		m.Material2.Reflectance(normal, incoming, outgoing),
	)
}

// NextStep blends the recursive contributions. A material with zero weight
// is skipped so it spawns no secondary rays.
func (m *Mix) NextStep(point, normal, incoming core.Vec3, trace TraceFunc) core.Radiance {
	result := core.Zero()
	if m.Ratio < 1 {
		result = result.Add(m.Material1.NextStep(point, normal, incoming, trace).MulScalar(1.0 - m.Ratio))
	}
	if m.Ratio > 0 {
		result = result.Add(m.Material2.NextStep(point, normal, incoming, trace).MulScalar(m.Ratio))
	}
	return result
}
