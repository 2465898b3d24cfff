package scene

import (
	"fmt"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/lights"
	"github.com/df07/go-pathtracer/pkg/loaders"
	"github.com/df07/go-pathtracer/pkg/material"
)

// NewSceneFromFile loads a JSON scene description and builds the scene
func NewSceneFromFile(filename string, cameraOverrides ...CameraConfig) (*Scene, error) {
	desc, err := loaders.LoadSceneFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to load scene file: %w", err)
	}
	return NewSceneFromDescription(desc, cameraOverrides...)
}

// NewSceneFromDescription converts a parsed scene description into a scene
func NewSceneFromDescription(desc *loaders.SceneDescription, cameraOverrides ...CameraConfig) (*Scene, error) {
	s := NewScene(desc.Name)
	s.CameraConfig = MergeCameraConfig(DefaultCameraConfig(), CameraConfig{
		Aperture: desc.Camera.Aperture,
		Width:    desc.Camera.Width,
		Height:   desc.Camera.Height,
	})
	s.CameraConfig = MergeCameraConfig(s.CameraConfig, cameraOverrides...)
	if desc.MaxBounces != nil {
		s.SamplingConfig.MaxBounces = *desc.MaxBounces
	}

	// Convert all materials first so objects can share them.
	// Mixes are built last from the plain materials they name.
	materials := make(map[string]material.Material, len(desc.Materials))
	for name, md := range desc.Materials {
		if md.Type == "mix" {
			continue
		}
		mat, err := convertMaterial(md)
		if err != nil {
			return nil, fmt.Errorf("material %q: %w", name, err)
		}
		materials[name] = mat
	}
	mixes := make(map[string]material.Material)
	for name, md := range desc.Materials {
		if md.Type != "mix" {
			continue
		}
		mat, err := convertMix(md, materials)
		if err != nil {
			return nil, fmt.Errorf("material %q: %w", name, err)
		}
		mixes[name] = mat
	}
	for name, mat := range mixes {
		materials[name] = mat
	}

	for i, od := range desc.Objects {
		mat, ok := materials[od.Material]
		if !ok {
			return nil, fmt.Errorf("object %d: unknown material %q", i, od.Material)
		}
		shape, err := convertShape(od)
		if err != nil {
			return nil, fmt.Errorf("object %d: %w", i, err)
		}
		s.Add(shape, mat)
	}

	for i, ld := range desc.Lights {
		light, err := convertLight(ld)
		if err != nil {
			return nil, fmt.Errorf("light %d: %w", i, err)
		}
		s.AddLight(light)
	}

	return s, nil
}

func vec(t loaders.Triple) core.Vec3 {
	return core.NewVec3(t[0], t[1], t[2])
}

func radiance(t loaders.Triple) core.Radiance {
	return core.NewRadiance(t[0], t[1], t[2])
}

func convertMaterial(md loaders.MaterialDescription) (material.Material, error) {
	switch md.Type {
	case "diffuse":
		return material.NewPhong(radiance(md.Diffuse), radiance(md.Specular), md.Shininess), nil
	case "emitter":
		return material.NewEmitter(radiance(md.Emission)), nil
	case "reflective":
		return material.NewReflective(radiance(md.Attenuation)), nil
	case "refractive":
		if md.RefractiveIndex <= 0 {
			return nil, fmt.Errorf("refractive index must be positive, got %g", md.RefractiveIndex)
		}
		return material.NewRefractive(radiance(md.Attenuation), md.RefractiveIndex), nil
	default:
		return nil, fmt.Errorf("unsupported material type %q", md.Type)
	}
}

func convertMix(md loaders.MaterialDescription, plain map[string]material.Material) (*material.Mix, error) {
	first, ok := plain[md.Mix[0]]
	if !ok {
		return nil, fmt.Errorf("mix references unknown or mix material %q", md.Mix[0])
	}
	second, ok := plain[md.Mix[1]]
	if !ok {
		return nil, fmt.Errorf("mix references unknown or mix material %q", md.Mix[1])
	}
	if md.Ratio < 0 || md.Ratio > 1 {
		return nil, fmt.Errorf("mix ratio must be in [0, 1], got %g", md.Ratio)
	}
	return material.NewMix(first, second, md.Ratio), nil
}

func convertShape(od loaders.ObjectDescription) (geometry.Shape, error) {
	switch od.Type {
	case "sphere":
		if od.Radius <= 0 {
			return nil, fmt.Errorf("sphere radius must be positive, got %g", od.Radius)
		}
		return geometry.NewSphere(vec(od.Center), od.Radius), nil
	case "plane":
		if od.Coefficients != nil {
			c := od.Coefficients
			if c[0] == 0 && c[1] == 0 && c[2] == 0 {
				return nil, fmt.Errorf("plane normal must not be zero")
			}
			return geometry.NewPlane(c[0], c[1], c[2], c[3]), nil
		}
		normal := vec(od.Normal)
		if normal.LengthSquared() == 0 {
			return nil, fmt.Errorf("plane normal must not be zero")
		}
		return geometry.NewPlaneFromPoint(vec(od.Point), normal), nil
	case "disc":
		normal := vec(od.Normal)
		if od.Radius <= 0 || normal.LengthSquared() == 0 {
			return nil, fmt.Errorf("disc needs a positive radius and a non-zero normal")
		}
		return geometry.NewDisc(vec(od.Center), normal, od.Radius), nil
	case "quad":
		u, v := vec(od.U), vec(od.V)
		if u.Cross(v).LengthSquared() == 0 {
			return nil, fmt.Errorf("quad edges must not be parallel")
		}
		return geometry.NewQuad(vec(od.Corner), u, v), nil
	case "triangle":
		if od.Vertices == nil {
			return nil, fmt.Errorf("triangle needs three vertices")
		}
		v0, v1, v2 := vec(od.Vertices[0]), vec(od.Vertices[1]), vec(od.Vertices[2])
		if v1.Subtract(v0).Cross(v2.Subtract(v0)).LengthSquared() == 0 {
			return nil, fmt.Errorf("triangle must not be degenerate")
		}
		return geometry.NewTriangle(v0, v1, v2), nil
	default:
		return nil, fmt.Errorf("unsupported shape type %q", od.Type)
	}
}

func convertLight(ld loaders.LightDescription) (lights.Light, error) {
	switch ld.Type {
	case "point":
		return lights.NewPointLight(vec(ld.Position), radiance(ld.Power)), nil
	case "spot":
		if ld.ConeAngle <= 0 {
			return nil, fmt.Errorf("spot light cone angle must be positive, got %g", ld.ConeAngle)
		}
		return lights.NewSpotLight(vec(ld.Position), vec(ld.Target), radiance(ld.Power), ld.ConeAngle, ld.ConeDelta), nil
	default:
		return nil, fmt.Errorf("unsupported light type %q", ld.Type)
	}
}
