package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/lights"
	"github.com/df07/go-pathtracer/pkg/material"
)

// NewDefaultScene creates a floor with one sphere of each material kind.
// World +Y points down the image, so the floor sits at positive Y.
func NewDefaultScene(cameraOverrides ...CameraConfig) *Scene {
	s := NewScene("default")
	s.CameraConfig = MergeCameraConfig(CameraConfig{
		Aperture: 1.2,
		Width:    400,
		Height:   225, // 16:9 aspect ratio
	}, cameraOverrides...)
	s.SamplingConfig = SamplingConfig{MaxBounces: 8}

	// Materials
	ground := material.NewDiffuse(core.NewRadiance(0.6, 0.6, 0.55))
	red := material.NewPhong(core.NewRadiance(0.7, 0.15, 0.1), core.White(0.4), 40)
	mirror := material.NewReflective(core.NewRadiance(0.9, 0.9, 0.9))
	glass := material.NewRefractive(core.NewRadiance(0.95, 0.95, 1.0), 1.5)
	lamp := material.NewEmitter(core.NewRadiance(1.0, 0.85, 0.6))

	// Ground plane y = 2 facing the camera side
	s.Add(geometry.NewPlaneFromPoint(core.NewVec3(0, 2, 0), core.NewVec3(0, -1, 0)), ground)

	s.Add(geometry.NewSphere(core.NewVec3(-2.6, 1, 8), 1.0), red)
	s.Add(geometry.NewSphere(core.NewVec3(0, 0.5, 10), 1.5), mirror)
	s.Add(geometry.NewSphere(core.NewVec3(2.4, 1.1, 7), 0.9), glass)

	// Small visible lamp, seen directly and in the mirror
	s.Add(geometry.NewSphere(core.NewVec3(1.5, -2.5, 12), 0.6), lamp)

	s.AddLight(lights.NewPointLight(core.NewVec3(-4, -5, 4), core.White(45)))
	s.AddLight(lights.NewSpotLight(
		core.NewVec3(4, -5, 5),
		core.NewVec3(2.4, 1.1, 7),
		core.NewRadiance(30, 28, 24),
		25, 6,
	))

	return s
}

// MergeCameraConfig applies the non-zero fields of the first override on top of base
func MergeCameraConfig(base CameraConfig, overrides ...CameraConfig) CameraConfig {
	if len(overrides) == 0 {
		return base
	}
	override := overrides[0]
	if override.Aperture != 0 {
		base.Aperture = override.Aperture
	}
	if override.Width != 0 {
		base.Width = override.Width
	}
	if override.Height != 0 {
		base.Height = override.Height
	}
	return base
}
