package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/lights"
	"github.com/df07/go-pathtracer/pkg/material"
)

// NewCausticGlassScene creates a glass ball and a hollow glass shell in
// front of a glowing back wall, so the image is dominated by refraction
func NewCausticGlassScene(cameraOverrides ...CameraConfig) *Scene {
	s := NewScene("caustic-glass")
	s.CameraConfig = MergeCameraConfig(CameraConfig{
		Aperture: 1.0,
		Width:    400,
		Height:   300,
	}, cameraOverrides...)
	s.SamplingConfig = SamplingConfig{MaxBounces: 12}

	floor := material.NewPhong(core.NewRadiance(0.4, 0.4, 0.45), core.White(0.2), 10)
	glass := material.NewRefractive(core.NewRadiance(0.9, 1.0, 0.95), 1.5)
	thinGlass := material.NewRefractive(core.White(0.98), 1.33)
	glow := material.NewEmitter(core.NewRadiance(0.3, 0.5, 0.9))

	s.Add(geometry.NewPlaneFromPoint(core.NewVec3(0, 1.5, 0), core.NewVec3(0, -1, 0)), floor)
	s.Add(geometry.NewPlaneFromPoint(core.NewVec3(0, 0, 20), core.NewVec3(0, 0, -1)), glow)

	s.Add(geometry.NewSphere(core.NewVec3(-1.2, 0.3, 6), 1.2), glass)

	// Shell: the inner sphere is entered from inside the outer one
	s.Add(geometry.NewSphere(core.NewVec3(1.6, 0.5, 7), 1.0), thinGlass)
	s.Add(geometry.NewSphere(core.NewVec3(1.6, 0.5, 7), 0.9), thinGlass)

	s.AddLight(lights.NewPointLight(core.NewVec3(0, -6, 3), core.White(60)))

	return s
}
