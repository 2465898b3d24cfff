package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/lights"
	"github.com/df07/go-pathtracer/pkg/material"
)

// NewCornellScene creates a Cornell-style box built from five planes with
// a mirror ball, a glass ball, a lamp panel and a point light under the ceiling
func NewCornellScene(cameraOverrides ...CameraConfig) *Scene {
	s := NewScene("cornell")
	s.CameraConfig = MergeCameraConfig(CameraConfig{
		Aperture: 1.0,
		Width:    400,
		Height:   400, // Square aspect ratio for Cornell box
	}, cameraOverrides...)
	s.SamplingConfig = SamplingConfig{MaxBounces: 10}

	// Create materials
	white := material.NewDiffuse(core.NewRadiance(0.73, 0.73, 0.73))
	red := material.NewDiffuse(core.NewRadiance(0.65, 0.05, 0.05))
	green := material.NewDiffuse(core.NewRadiance(0.12, 0.45, 0.15))
	mirror := material.NewReflective(core.NewRadiance(0.95, 0.95, 0.95))
	glass := material.NewRefractive(core.White(1), 1.5)
	lamp := material.NewEmitter(core.White(4))

	const half = 3.0
	const back = 12.0

	// Walls, every normal facing into the box
	s.Add(geometry.NewPlane(1, 0, 0, half), red)     // left, x = -3
	s.Add(geometry.NewPlane(-1, 0, 0, half), green)  // right, x = 3
	s.Add(geometry.NewPlane(0, -1, 0, half), white)  // floor, y = 3
	s.Add(geometry.NewPlane(0, 1, 0, half), white)   // ceiling, y = -3
	s.Add(geometry.NewPlane(0, 0, -1, back), white)  // back wall, z = 12

	s.Add(geometry.NewSphere(core.NewVec3(-1.3, 2, 9), 1.0), mirror)
	s.Add(geometry.NewSphere(core.NewVec3(1.4, 2, 7.5), 1.0), glass)

	// Square lamp panel just under the ceiling, facing down into the box
	s.Add(geometry.NewQuad(core.NewVec3(-0.8, -2.99, 7.7), core.NewVec3(0, 0, 1.6), core.NewVec3(1.6, 0, 0)), lamp)

	s.AddLight(lights.NewPointLight(core.NewVec3(0, -2.4, 8), core.White(14)))

	return s
}
