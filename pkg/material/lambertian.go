package material

import (
	"fmt"

	"github.com/df07/weekend-pathtracer/pkg/core"
)

// Lambertian represents a perfectly diffuse material
type Lambertian struct {
	Albedo core.Vec3 // Base color/reflectance
}

// NewLambertian creates a new lambertian material
func NewLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// Scatter implements the Material interface for lambertian scattering.
// The outgoing direction is the normal offset by a random unit vector; it always scatters.
func (l *Lambertian) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool, error) {
	offset, err := core.RandomUnitVector(sampler)
	if err != nil {
		return ScatterResult{}, false, fmt.Errorf("lambertian scatter: %w", err)
	}

	direction, err := hit.Normal.Add(offset).Normalize()
	if err != nil {
		return ScatterResult{}, false, fmt.Errorf("lambertian scatter: %w", err)
	}

	return ScatterResult{
		Scattered:   core.NewRay(hit.Point, direction),
		Attenuation: l.Albedo,
	}, true, nil
}
