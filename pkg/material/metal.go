package material

import (
	"fmt"

	"github.com/df07/weekend-pathtracer/pkg/core"
)

// Metal represents a metallic material with specular reflection
type Metal struct {
	Albedo   core.Vec3 // Metal color
	Fuzzness float64   // 0.0 = perfect mirror, 1.0 = very fuzzy
}

// NewMetal creates a new metal material
func NewMetal(albedo core.Vec3, fuzzness float64) *Metal {
	// Clamp fuzzness to valid range
	if fuzzness > 1.0 {
		fuzzness = 1.0
	}
	if fuzzness < 0.0 {
		fuzzness = 0.0
	}
	return &Metal{Albedo: albedo, Fuzzness: fuzzness}
}

// Scatter implements the Material interface for metal scattering
func (m *Metal) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool, error) {
	reflected := Reflect(rayIn.Direction, hit.Normal)

	// Drawn even when Fuzzness is 0
	perturbation, err := core.RandomUnitVector(sampler)
	if err != nil {
		return ScatterResult{}, false, fmt.Errorf("metal scatter: %w", err)
	}

	direction, err := reflected.Add(perturbation.Multiply(m.Fuzzness)).Normalize()
	if err != nil {
		return ScatterResult{}, false, fmt.Errorf("metal scatter: %w", err)
	}

	// Rays scattered below the surface are absorbed
	scatters := direction.Dot(hit.Normal) > 0

	return ScatterResult{
		Scattered:   core.NewRay(hit.Point, direction),
		Attenuation: m.Albedo,
	}, scatters, nil
}
