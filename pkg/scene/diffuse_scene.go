package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/lights"
	"github.com/df07/go-pathtracer/pkg/material"
)

// NewDiffuseScene creates a single white diffuse sphere in front of the camera
func NewDiffuseScene(cameraOverrides ...CameraConfig) *Scene {
	s := NewScene("diffuse")
	s.CameraConfig = MergeCameraConfig(CameraConfig{
		Aperture: 2.0,
		Width:    1000,
		Height:   1000,
	}, cameraOverrides...)
	s.SamplingConfig = SamplingConfig{MaxBounces: 0}

	s.Add(geometry.NewSphere(core.NewVec3(0, 0, 5), 3.0), material.NewDiffuse(core.White(1)))
	s.AddLight(lights.NewPointLight(core.NewVec3(-6, -6, 0), core.White(80)))

	return s
}
