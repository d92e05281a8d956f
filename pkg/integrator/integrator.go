package integrator

import (
	"github.com/df07/weekend-pathtracer/pkg/core"
	"github.com/df07/weekend-pathtracer/pkg/geometry"
)

// Scene is the read-only view of the world an integrator traces against
type Scene interface {
	GetShapes() []geometry.Shape
	GetBackgroundColors() (topColor, bottomColor core.Vec3)
}

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor computes the color carried back along a camera ray
	RayColor(ray core.Ray, scene Scene, sampler core.Sampler) (core.Vec3, error)
}
