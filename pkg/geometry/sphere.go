package geometry

import (
	"fmt"
	"math"

	"github.com/df07/weekend-pathtracer/pkg/core"
	"github.com/df07/weekend-pathtracer/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material material.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, mat material.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: mat,
	}
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool, error) {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + 2bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	halfB := ray.Direction.Dot(oc)
	c := oc.Dot(oc) - s.Radius*s.Radius

	if a == 0 {
		return nil, false, fmt.Errorf("sphere hit with zero-length ray direction: %w", core.ErrDivisionByZero)
	}

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return nil, false, nil
	}

	sqrtD := math.Sqrt(discriminant)

	// Smaller root first, then the farther one
	for _, root := range [2]float64{(-halfB - sqrtD) / a, (-halfB + sqrtD) / a} {
		if root < tMin || root > tMax {
			continue
		}

		point := ray.At(root)
		normal, err := point.Subtract(s.Center).Normalize()
		if err != nil {
			return nil, false, fmt.Errorf("sphere normal at %v: %w", point, err)
		}

		return &material.HitRecord{
			T:        root,
			Point:    point,
			Normal:   normal,
			Material: s.Material,
		}, true, nil
	}

	return nil, false, nil
}
