package material

import (
	"github.com/df07/weekend-pathtracer/pkg/core"
)

// Material interface for objects that can scatter rays.
// Implementations hold only their fixed parameters and are shared by every
// shape that references them.
type Material interface {
	// Scatter returns the attenuation and outgoing ray for an incoming ray at a hit.
	// The bool is false when the ray is absorbed.
	Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool, error)
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   core.Ray  // The scattered ray
	Attenuation core.Vec3 // Color attenuation
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	T        float64   // Parameter t along the ray
	Point    core.Vec3 // Point of intersection
	Normal   core.Vec3 // Outward unit normal, never flipped toward the ray
	Material Material  // Material of the hit object
}
