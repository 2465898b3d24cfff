package lights

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestSpotLight_NewSpotLight(t *testing.T) {
	from := core.NewVec3(0, 5, 0)
	to := core.NewVec3(0, 0, 0)
	coneAngleDegrees := 45.0
	coneDeltaAngleDegrees := 5.0

	light := NewSpotLight(from, to, core.White(1), coneAngleDegrees, coneDeltaAngleDegrees)

	if light.Position() != from {
		t.Errorf("Expected position %v, got %v", from, light.Position())
	}

	expectedDirection := to.Subtract(from).Normalize()
	if light.direction.Subtract(expectedDirection).Length() > 1e-6 {
		t.Errorf("Expected direction %v, got %v", expectedDirection, light.direction)
	}

	expectedCosTotalWidth := math.Cos(coneAngleDegrees * math.Pi / 180.0)
	if math.Abs(light.cosTotalWidth-expectedCosTotalWidth) > 1e-6 {
		t.Errorf("Expected cosTotalWidth %v, got %v", expectedCosTotalWidth, light.cosTotalWidth)
	}

	expectedCosFalloffStart := math.Cos((coneAngleDegrees - coneDeltaAngleDegrees) * math.Pi / 180.0)
	if math.Abs(light.cosFalloffStart-expectedCosFalloffStart) > 1e-6 {
		t.Errorf("Expected cosFalloffStart %v, got %v", expectedCosFalloffStart, light.cosFalloffStart)
	}
}

func TestSpotLight_Intensity(t *testing.T) {
	// Light pointing down from (0,5,0) to (0,0,0)
	power := core.White(100)
	light := NewSpotLight(core.NewVec3(0, 5, 0), core.NewVec3(0, 0, 0), power, 30, 10)

	t.Run("on axis matches point light", func(t *testing.T) {
		point := core.NewVec3(0, 1, 0)
		got := light.Intensity(point)
		expected := NewPointLight(core.NewVec3(0, 5, 0), power).Intensity(point)
		if math.Abs(got.R-expected.R) > 1e-9 {
			t.Errorf("Expected %v, got %v", expected, got)
		}
	})

	t.Run("outside the cone is dark", func(t *testing.T) {
		// 45 degrees off axis
		if got := light.Intensity(core.NewVec3(4, 1, 0)); !got.IsZero() {
			t.Errorf("Expected no light outside the cone, got %v", got)
		}
	})

	t.Run("behind the light is dark", func(t *testing.T) {
		if got := light.Intensity(core.NewVec3(0, 10, 0)); !got.IsZero() {
			t.Errorf("Expected no light behind the spot, got %v", got)
		}
	})

	t.Run("falloff region is partial", func(t *testing.T) {
		// 25 degrees off axis: between the 20 degree inner cone and 30 degree edge
		angle := 25 * math.Pi / 180
		point := core.NewVec3(4*math.Tan(angle), 1, 0)
		got := light.Intensity(point)
		full := NewPointLight(core.NewVec3(0, 5, 0), power).Intensity(point)
		if got.R <= 0 || got.R >= full.R {
			t.Errorf("Expected partial intensity in (0, %f), got %f", full.R, got.R)
		}
	})
}
