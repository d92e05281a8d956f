package material

import (
	"math"
	"testing"

	"github.com/df07/weekend-pathtracer/pkg/core"
)

func TestNewMetal_FuzznessClamp(t *testing.T) {
	tests := []struct {
		name             string
		inputFuzzness    float64
		expectedFuzzness float64
	}{
		{"Valid fuzzness 0.0", 0.0, 0.0},
		{"Valid fuzzness 0.5", 0.5, 0.5},
		{"Valid fuzzness 1.0", 1.0, 1.0},
		{"Clamp above 1.0", 1.5, 1.0},
		{"Clamp below 0.0", -0.5, 0.0},
	}

	albedo := core.NewVec3(0.8, 0.8, 0.8)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metal := NewMetal(albedo, tt.inputFuzzness)
			if metal.Fuzzness != tt.expectedFuzzness {
				t.Errorf("Expected fuzzness %f, got %f", tt.expectedFuzzness, metal.Fuzzness)
			}
		})
	}
}

func TestMetal_PerfectReflection(t *testing.T) {
	albedo := core.NewVec3(0.9, 0.9, 0.9)
	metal := NewMetal(albedo, 0.0)
	sampler := core.NewSeededSampler(42)

	// Ray hitting surface at 45 degrees
	rayIn := core.NewRay(core.NewVec3(0, 1, 1), mustNormalize(t, core.NewVec3(0, -1, -1)))
	hit := HitRecord{
		Point:  core.NewVec3(0, 0, 0),
		Normal: core.NewVec3(0, 0, 1),
	}

	scatter, didScatter, err := metal.Scatter(rayIn, hit, sampler)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !didScatter {
		t.Fatal("Metal should scatter")
	}

	expected := mustNormalize(t, core.NewVec3(0, -1, 1))
	assertVecNear(t, expected, scatter.Scattered.Direction, 1e-10)

	if scatter.Attenuation != albedo {
		t.Errorf("Attenuation should equal albedo: expected %v, got %v", albedo, scatter.Attenuation)
	}
}

func TestMetal_FuzzyReflectionStaysNearMirror(t *testing.T) {
	metal := NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.3)
	sampler := core.NewSeededSampler(7)

	rayIn := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))
	hit := HitRecord{Point: core.NewVec3(0, 0, 0), Normal: core.NewVec3(0, 1, 0)}

	for i := 0; i < 500; i++ {
		scatter, didScatter, err := metal.Scatter(rayIn, hit, sampler)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if !didScatter {
			t.Fatal("Head-on reflection with fuzz 0.3 should never be absorbed")
		}
		direction := scatter.Scattered.Direction
		if math.Abs(direction.Length()-1) > 1e-9 {
			t.Fatalf("Expected unit direction, got length %f", direction.Length())
		}
		// |mirror + 0.3*u| has angle at most asin(0.3) from the mirror direction
		if direction.Y < math.Cos(math.Asin(0.3))-1e-9 {
			t.Fatalf("Direction %v strays too far from the mirror direction", direction)
		}
	}
}

func TestMetal_AbsorbsRaysScatteredBelowSurface(t *testing.T) {
	metal := NewMetal(core.NewVec3(0.8, 0.8, 0.8), 1.0)
	// Maps to the unit vector (0, 0, -1), straight into the surface
	sampler := &sequenceSampler{values: []float64{0.5, 0.5, 0}}

	rayIn := core.NewRay(core.NewVec3(-1, 0, 0.1), mustNormalize(t, core.NewVec3(1, 0, -0.1)))
	hit := HitRecord{Point: core.NewVec3(0, 0, 0), Normal: core.NewVec3(0, 0, 1)}

	_, didScatter, err := metal.Scatter(rayIn, hit, sampler)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if didScatter {
		t.Error("Grazing reflection perturbed below the surface should be absorbed")
	}
}
