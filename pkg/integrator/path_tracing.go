package integrator

import (
	"fmt"

	"github.com/df07/weekend-pathtracer/pkg/core"
	"github.com/df07/weekend-pathtracer/pkg/geometry"
)

const (
	// DefaultMaxDepth is the bounce depth at which paths are cut off
	DefaultMaxDepth = 50

	// TMin rejects self-intersections right at a ray's origin
	TMin = 0.001
	// TMax rejects hits beyond the scene bounds
	TMax = 1000.0
)

// Config controls path termination and the valid intersection range
type Config struct {
	MaxDepth int
	TMin     float64
	TMax     float64
}

// DefaultConfig returns the standard termination settings
func DefaultConfig() Config {
	return Config{
		MaxDepth: DefaultMaxDepth,
		TMin:     TMin,
		TMax:     TMax,
	}
}

// PathTracingIntegrator implements recursive unidirectional path tracing.
// Camera rays start at depth 1 and a hit only scatters while depth < MaxDepth,
// so a path makes at most MaxDepth-1 scatter calls before returning black.
type PathTracingIntegrator struct {
	config Config
}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator(config Config) *PathTracingIntegrator {
	return &PathTracingIntegrator{
		config: config,
	}
}

// RayColor computes the color for a single camera ray
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, scene Scene, sampler core.Sampler) (core.Vec3, error) {
	return pt.rayColor(ray, scene, sampler, 1)
}

func (pt *PathTracingIntegrator) rayColor(ray core.Ray, scene Scene, sampler core.Sampler, depth int) (core.Vec3, error) {
	hit, isHit, err := geometry.HitClosest(scene.GetShapes(), ray, pt.config.TMin, pt.config.TMax)
	if err != nil {
		return core.Vec3{}, fmt.Errorf("depth %d: %w", depth, err)
	}
	if !isHit {
		return pt.backgroundGradient(ray, scene), nil
	}

	// Bounce limit reached
	if depth >= pt.config.MaxDepth {
		return core.Vec3{X: 0, Y: 0, Z: 0}, nil
	}

	if hit.Material == nil {
		return core.Vec3{}, fmt.Errorf("depth %d: hit at %v has no material", depth, hit.Point)
	}

	scatter, didScatter, err := hit.Material.Scatter(ray, *hit, sampler)
	if err != nil {
		return core.Vec3{}, fmt.Errorf("depth %d: %w", depth, err)
	}
	if !didScatter {
		return core.Vec3{X: 0, Y: 0, Z: 0}, nil // Material absorbed the ray
	}

	incoming, err := pt.rayColor(scatter.Scattered, scene, sampler, depth+1)
	if err != nil {
		return core.Vec3{}, err
	}
	return scatter.Attenuation.MultiplyVec(incoming), nil
}

// backgroundGradient blends bottomColor into topColor by the ray's
// vertical direction, mapping y from [-1,1] to [0,1]
func (pt *PathTracingIntegrator) backgroundGradient(r core.Ray, scene Scene) core.Vec3 {
	topColor, bottomColor := scene.GetBackgroundColors()
	t := 0.5 * (r.Direction.Y + 1.0)
	return bottomColor.Lerp(topColor, t)
}
