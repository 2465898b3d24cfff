package material

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func radianceClose(a, b core.Radiance, tolerance float64) bool {
	return math.Abs(a.R-b.R) <= tolerance &&
		math.Abs(a.G-b.G) <= tolerance &&
		math.Abs(a.B-b.B) <= tolerance
}

func TestDiffuse_Reflectance_SameSideOnly(t *testing.T) {
	mat := NewDiffuse(core.White(1))
	normal := core.NewVec3(1, 0, 0)
	dirIn := core.NewVec3(1, 0, 0)
	dirOut := core.NewVec3(1, 0, 0)

	// Light arriving from behind the surface
	if res := mat.Reflectance(normal, dirIn, dirOut); !res.IsZero() {
		t.Errorf("Expected no reflectance for light from behind, got %v", res)
	}

	// Light arriving from the front
	if res := mat.Reflectance(normal, dirIn.Negate(), dirOut); res.IsZero() {
		t.Error("Expected non-zero reflectance for light from the front")
	}
}

func TestDiffuse_Reflectance_Lambert(t *testing.T) {
	mat := NewDiffuse(core.NewRadiance(0.8, 0.4, 0.2))
	normal := core.NewVec3(0, 0, 1)
	outgoing := core.NewVec3(0, 0, 1)

	tests := []struct {
		name     string
		incoming core.Vec3
		scale    float64
	}{
		{"head-on", core.NewVec3(0, 0, -1), 1},
		{"45 degrees", core.NewVec3(1, 0, -1).Normalize(), 1 / math.Sqrt2},
		{"60 degrees", core.NewVec3(math.Sqrt(3), 0, -1).Normalize(), 0.5},
		{"grazing", core.NewVec3(1, 0, 0), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mat.Reflectance(normal, tt.incoming, outgoing)
			expected := mat.Diffuse.MulScalar(tt.scale)
			if !radianceClose(got, expected, 1e-9) {
				t.Errorf("Expected %v, got %v", expected, got)
			}
		})
	}
}

func TestDiffuse_Reflectance_BackSide(t *testing.T) {
	// Both directions below the surface still scatter, using |proj|
	mat := NewDiffuse(core.White(1))
	normal := core.NewVec3(0, 0, 1)

	got := mat.Reflectance(normal, core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1))
	if !radianceClose(got, core.White(1), 1e-12) {
		t.Errorf("Expected white, got %v", got)
	}
}

func TestDiffuse_Reflectance_PhongHighlight(t *testing.T) {
	diffuse := core.NewRadiance(0.5, 0.5, 0.5)
	specular := core.NewRadiance(0.3, 0.2, 0.1)
	mat := NewPhong(diffuse, specular, 20)
	normal := core.NewVec3(0, 0, 1)
	incoming := core.NewVec3(1, 0, -1).Normalize()

	mirror := core.NewVec3(1, 0, 1).Normalize()
	got := mat.Reflectance(normal, incoming, mirror)
	expected := diffuse.MulScalar(1 / math.Sqrt2).Add(specular)
	if !radianceClose(got, expected, 1e-9) {
		t.Errorf("Expected full highlight %v along the mirror direction, got %v", expected, got)
	}

	offMirror := core.NewVec3(-1, 0, 1).Normalize()
	got = mat.Reflectance(normal, incoming, offMirror)
	expected = diffuse.MulScalar(1 / math.Sqrt2)
	if !radianceClose(got, expected, 1e-9) {
		t.Errorf("Expected no highlight away from the mirror direction, got %v", got)
	}
}

func TestDiffuse_DefaultsAreZero(t *testing.T) {
	mat := NewDiffuse(core.White(1))
	n := core.NewVec3(0, 1, 0)

	if e := mat.Emittance(n, n); !e.IsZero() {
		t.Errorf("Diffuse should not emit, got %v", e)
	}

	called := false
	next := mat.NextStep(core.Vec3{}, n, n.Negate(), func(core.Ray) core.Radiance {
		called = true
		return core.White(1)
	})
	if called || !next.IsZero() {
		t.Error("Diffuse should not spawn secondary rays")
	}
}
