package loaders

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Triple is an (x, y, z) point/direction or an (r, g, b) color in a scene file
type Triple [3]float64

// SceneDescription is the on-disk form of a scene
type SceneDescription struct {
	Name        string                         `json:"name"`
	Description string                         `json:"description,omitempty"`
	Group       string                         `json:"group,omitempty"`
	Camera      CameraDescription              `json:"camera"`
	MaxBounces  *int                           `json:"maxBounces,omitempty"`
	Materials   map[string]MaterialDescription `json:"materials"`
	Objects     []ObjectDescription            `json:"objects"`
	Lights      []LightDescription             `json:"lights"`
}

// CameraDescription mirrors the origin camera settings; zero values mean "use the default"
type CameraDescription struct {
	Aperture float64 `json:"aperture,omitempty"`
	Width    int     `json:"width,omitempty"`
	Height   int     `json:"height,omitempty"`
}

// MaterialDescription holds the coefficients of every material kind.
// Type selects which fields are read: diffuse, emitter, reflective,
// refractive or mix. A mix names two other non-mix materials and a ratio.
type MaterialDescription struct {
	Type            string    `json:"type"`
	Diffuse         Triple    `json:"diffuse,omitempty"`
	Specular        Triple    `json:"specular,omitempty"`
	Shininess       float64   `json:"shininess,omitempty"`
	Emission        Triple    `json:"emission,omitempty"`
	Attenuation     Triple    `json:"attenuation,omitempty"`
	RefractiveIndex float64   `json:"ior,omitempty"`
	Mix             [2]string `json:"mix,omitempty"`
	Ratio           float64   `json:"ratio,omitempty"`
}

// ObjectDescription is a shape plus the name of its material.
// Spheres use Center and Radius; planes use either Coefficients (a, b, c, d)
// or Point and Normal; discs use Center, Normal and Radius; quads use
// Corner, U and V; triangles use Vertices.
type ObjectDescription struct {
	Type         string      `json:"type"`
	Material     string      `json:"material"`
	Center       Triple      `json:"center,omitempty"`
	Radius       float64     `json:"radius,omitempty"`
	Coefficients *[4]float64 `json:"coefficients,omitempty"`
	Point        Triple      `json:"point,omitempty"`
	Normal       Triple      `json:"normal,omitempty"`
	Corner       Triple      `json:"corner,omitempty"`
	U            Triple      `json:"u,omitempty"`
	V            Triple      `json:"v,omitempty"`
	Vertices     *[3]Triple  `json:"vertices,omitempty"`
}

// LightDescription describes a point or spot light
type LightDescription struct {
	Type      string  `json:"type"`
	Position  Triple  `json:"position"`
	Power     Triple  `json:"power"`
	Target    Triple  `json:"target,omitempty"`
	ConeAngle float64 `json:"coneAngle,omitempty"`
	ConeDelta float64 `json:"coneDelta,omitempty"`
}

// LoadSceneFile reads and validates a JSON scene description
func LoadSceneFile(filename string) (*SceneDescription, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open scene file: %w", err)
	}
	defer file.Close()

	desc, err := ParseSceneDescription(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return desc, nil
}

// ParseSceneDescription decodes a scene description and checks its references
func ParseSceneDescription(r io.Reader) (*SceneDescription, error) {
	var desc SceneDescription
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&desc); err != nil {
		return nil, fmt.Errorf("failed to decode scene: %w", err)
	}
	if err := desc.Validate(); err != nil {
		return nil, err
	}
	return &desc, nil
}

// Validate checks that every object names a known material and that
// numeric fields are in range. It does not check the type names, which
// are interpreted by the scene builder.
func (d *SceneDescription) Validate() error {
	if d.Camera.Width < 0 || d.Camera.Height < 0 {
		return fmt.Errorf("camera size must not be negative, got %dx%d", d.Camera.Width, d.Camera.Height)
	}
	if d.MaxBounces != nil && *d.MaxBounces < 0 {
		return fmt.Errorf("maxBounces must not be negative, got %d", *d.MaxBounces)
	}
	for i, obj := range d.Objects {
		if _, ok := d.Materials[obj.Material]; !ok {
			return fmt.Errorf("object %d: unknown material %q", i, obj.Material)
		}
		if (obj.Type == "sphere" || obj.Type == "disc") && obj.Radius <= 0 {
			return fmt.Errorf("object %d: %s radius must be positive, got %g", i, obj.Type, obj.Radius)
		}
	}
	return nil
}
