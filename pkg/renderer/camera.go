package renderer

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// RayMaker produces the primary ray for a pixel
type RayMaker interface {
	MakeRay(x, y int) core.Ray
}

// OriginCamera is a pinhole camera at the origin looking down +Z.
// Aperture scales the field of view: at 1.0 the longer image side spans
// directions from -0.5 to 0.5 before normalization. Pixel y grows with world Y.
type OriginCamera struct {
	Aperture float64
	Width    int
	Height   int
}

// NewOriginCamera creates a camera from a scene camera configuration
func NewOriginCamera(config scene.CameraConfig) *OriginCamera {
	return &OriginCamera{
		Aperture: config.Aperture,
		Width:    config.Width,
		Height:   config.Height,
	}
}

// MakeRay returns the unit-direction ray through pixel (x, y)
func (c *OriginCamera) MakeRay(x, y int) core.Ray {
	maximum := float64(max(c.Width, c.Height))
	toDim := func(val, size int) float64 {
		return c.Aperture * (float64(val) - float64(size)/2) / maximum
	}

	direction := core.NewVec3(toDim(x, c.Width), toDim(y, c.Height), 1).Normalize()
	return core.NewRay(core.Origin(), direction)
}
