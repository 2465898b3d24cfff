package scene

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/lights"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Scene contains all the elements needed for rendering.
// It is built once and only read while rendering, so any number of
// goroutines may query it concurrently.
type Scene struct {
	Name           string
	Objects        []*Object      // Objects in the scene
	Lights         []lights.Light // Lights in the scene
	CameraConfig   CameraConfig
	SamplingConfig SamplingConfig
}

// CameraConfig is the recommended camera for a scene
type CameraConfig struct {
	Aperture float64 // Field of view scale
	Width    int     // Image width
	Height   int     // Image height
}

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	MaxBounces int // Recursive bounce budget for reflective/refractive surfaces
}

// DefaultCameraConfig returns the camera used when a scene does not specify one
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{Aperture: 1.0, Width: 400, Height: 400}
}

// DefaultSamplingConfig returns the bounce budget used when a scene does not specify one
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{MaxBounces: 5}
}

// NewScene creates an empty scene with default configuration
func NewScene(name string) *Scene {
	return &Scene{
		Name:           name,
		CameraConfig:   DefaultCameraConfig(),
		SamplingConfig: DefaultSamplingConfig(),
	}
}

// Add appends an object built from shape and material
func (s *Scene) Add(shape geometry.Shape, mat material.Material) *Object {
	obj := NewObject(shape, mat)
	s.Objects = append(s.Objects, obj)
	return obj
}

// AddLight appends a light source
func (s *Scene) AddLight(light lights.Light) {
	s.Lights = append(s.Lights, light)
}

// Intersect returns the hit nearest to the ray origin over all objects.
// Equidistant hits resolve to whichever object comes first.
func (s *Scene) Intersect(ray core.Ray) (Hit, bool) {
	var closest Hit
	closestSoFar := math.Inf(1)
	hitAnything := false

	for _, obj := range s.Objects {
		hit, ok := obj.Intersect(ray)
		if !ok {
			continue
		}
		if distance := hit.Point.DistanceTo(ray.Origin); distance < closestSoFar {
			closestSoFar = distance
			closest = hit
			hitAnything = true
		}
	}

	return closest, hitAnything
}

// ShadowIntersect reports whether any object blocks the ray before maxLength
func (s *Scene) ShadowIntersect(ray core.Ray, maxLength float64) bool {
	for _, obj := range s.Objects {
		if obj.ShadowIntersect(ray, maxLength) {
			return true
		}
	}
	return false
}

// Background returns the radiance of rays that escape the scene.
// The direction is unused: the background is black.
func (s *Scene) Background(direction core.Vec3) core.Radiance {
	return core.Zero()
}
