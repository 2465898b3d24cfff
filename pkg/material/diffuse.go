package material

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Diffuse is an opaque surface with a Lambertian term and a Phong highlight
type Diffuse struct {
	Base
	Diffuse   core.Radiance // Lambertian color
	Specular  core.Radiance // Phong highlight color
	Shininess float64       // Phong exponent
}

// NewDiffuse creates a purely Lambertian material
func NewDiffuse(diffuse core.Radiance) *Diffuse {
	return &Diffuse{Diffuse: diffuse}
}

// NewPhong creates a diffuse material with a specular highlight
func NewPhong(diffuse, specular core.Radiance, shininess float64) *Diffuse {
	return &Diffuse{Diffuse: diffuse, Specular: specular, Shininess: shininess}
}

// Reflectance is non-zero only when incoming light and the outgoing direction
// are on the same side of the surface.
func (d *Diffuse) Reflectance(normal, incoming, outgoing core.Vec3) core.Radiance {
	proj := normal.Dot(incoming.Negate())
	if proj*normal.Dot(outgoing) <= 0 {
		return core.Zero()
	}

	result := d.Diffuse.MulScalar(math.Abs(proj))

	if !d.Specular.IsZero() {
		alignment := outgoing.Dot(Reflect(incoming, normal))
		if alignment > 0 {
			result = result.Add(d.Specular.MulScalar(math.Pow(alignment, d.Shininess)))
		}
	}

	return result
}
