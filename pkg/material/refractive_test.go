package material

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

// sinAngle returns the sine of the angle between unit vectors a and b
func sinAngle(a, b core.Vec3) float64 {
	return a.Cross(b).Length()
}

func TestRefract_NormalIncidence(t *testing.T) {
	d := core.NewVec3(0, 0, -1)
	n := core.NewVec3(0, 0, 1)

	got, ok := Refract(d, n, 1.5)
	if !ok {
		t.Fatal("Expected refraction at normal incidence")
	}
	if got.Subtract(d).Length() > 1e-12 {
		t.Errorf("Expected undeviated ray %v, got %v", d, got)
	}
}

func TestRefract_SnellsLaw(t *testing.T) {
	const ior = 1.5
	n := core.NewVec3(0, 0, 1)

	tests := []struct {
		name     string
		d        core.Vec3
		entering bool
	}{
		{"entering at 45 degrees", core.NewVec3(1, 0, -1).Normalize(), true},
		{"entering at 30 degrees", core.NewVec3(0.5, 0, -math.Sqrt(3)/2), true},
		{"exiting at 20 degrees", core.NewVec3(math.Sin(20*math.Pi/180), 0, math.Cos(20*math.Pi/180)), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Refract(tt.d, n, ior)
			if !ok {
				t.Fatal("Expected refraction")
			}
			if math.Abs(got.Length()-1) > 1e-9 {
				t.Errorf("Expected unit refracted direction, got length %f", got.Length())
			}

			sinIn := sinAngle(tt.d, n)
			sinOut := sinAngle(got, n)
			if tt.entering {
				if math.Abs(sinIn-ior*sinOut) > 1e-9 {
					t.Errorf("Snell's law violated entering: sinIn=%f sinOut=%f", sinIn, sinOut)
				}
				if got.Z >= 0 {
					t.Errorf("Entering ray should continue below the surface, got %v", got)
				}
			} else {
				if math.Abs(ior*sinIn-sinOut) > 1e-9 {
					t.Errorf("Snell's law violated exiting: sinIn=%f sinOut=%f", sinIn, sinOut)
				}
				if got.Z <= 0 {
					t.Errorf("Exiting ray should continue above the surface, got %v", got)
				}
			}
		})
	}
}

func TestRefract_TotalInternalReflection(t *testing.T) {
	// Leaving glass at 45 degrees exceeds the critical angle (~41.8 degrees)
	d := core.NewVec3(1, 0, 1).Normalize()
	n := core.NewVec3(0, 0, 1)

	if _, ok := Refract(d, n, 1.5); ok {
		t.Error("Expected total internal reflection")
	}
}

func TestRefractive_NextStep(t *testing.T) {
	attenuation := core.NewRadiance(1, 0.9, 0.8)
	glass := NewRefractive(attenuation, 1.5)
	normal := core.NewVec3(0, 0, 1)
	point := core.NewVec3(0, 0, 0)

	t.Run("refracts", func(t *testing.T) {
		incoming := core.NewVec3(1, 0, -1).Normalize()
		var traced core.Ray
		got := glass.NextStep(point, normal, incoming, func(ray core.Ray) core.Radiance {
			traced = ray
			return core.White(1)
		})

		expected, _ := Refract(incoming, normal, 1.5)
		if traced.Direction.Subtract(expected).Length() > 1e-12 {
			t.Errorf("Expected refracted direction %v, got %v", expected, traced.Direction)
		}
		if traced.Origin.Z >= 0 {
			t.Errorf("Refracted ray should start just inside the surface, got %v", traced.Origin)
		}
		if !radianceClose(got, attenuation, 1e-12) {
			t.Errorf("Expected %v, got %v", attenuation, got)
		}
	})

	t.Run("total internal reflection mirrors", func(t *testing.T) {
		incoming := core.NewVec3(1, 0, 1).Normalize()
		var traced core.Ray
		glass.NextStep(point, normal, incoming, func(ray core.Ray) core.Radiance {
			traced = ray
			return core.White(1)
		})

		expected := core.NewVec3(1, 0, -1).Normalize()
		if traced.Direction.Subtract(expected).Length() > 1e-12 {
			t.Errorf("Expected mirrored direction %v, got %v", expected, traced.Direction)
		}
		if traced.Origin.Z >= 0 {
			t.Errorf("Reflected ray should stay inside the medium, got %v", traced.Origin)
		}
	})
}
