package material

import (
	"fmt"

	"github.com/df07/weekend-pathtracer/pkg/core"
)

// Dielectric represents a transparent material like glass that can both reflect and refract
type Dielectric struct {
	RefractiveIndex float64 // Index of refraction (e.g., 1.5 for glass)
}

// NewDielectric creates a new dielectric material
func NewDielectric(refractiveIndex float64) *Dielectric {
	return &Dielectric{RefractiveIndex: refractiveIndex}
}

// Scatter implements the Material interface for dielectric scattering
func (d *Dielectric) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool, error) {
	// Clear glass never absorbs
	attenuation := core.NewVec3(1.0, 1.0, 1.0)

	direction := rayIn.Direction
	reflected := Reflect(direction, hit.Normal)

	// Normals always face outward, so a positive dot product means the ray is leaving the medium
	var outwardNormal core.Vec3
	var niOverNt, cosine float64
	if cosIn := direction.Dot(hit.Normal); cosIn > 0 {
		outwardNormal = hit.Normal.Negate()
		niOverNt = d.RefractiveIndex
		cosine = d.RefractiveIndex * cosIn
	} else {
		outwardNormal = hit.Normal
		niOverNt = 1.0 / d.RefractiveIndex
		cosine = -cosIn
	}

	reflectProb := 1.0
	refracted, canRefract := Refract(direction, outwardNormal, niOverNt)
	if canRefract {
		reflectProb = Schlick(cosine, d.RefractiveIndex)
	}

	chosen := refracted
	if sampler.Get1D() < reflectProb {
		chosen = reflected
	}

	scatteredDirection, err := chosen.Normalize()
	if err != nil {
		return ScatterResult{}, false, fmt.Errorf("dielectric scatter: %w", err)
	}

	return ScatterResult{
		Scattered:   core.NewRay(hit.Point, scatteredDirection),
		Attenuation: attenuation,
	}, true, nil
}
