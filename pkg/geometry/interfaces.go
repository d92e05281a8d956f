package geometry

import (
	"github.com/df07/weekend-pathtracer/pkg/core"
	"github.com/df07/weekend-pathtracer/pkg/material"
)

// Shape interface for objects that can be hit by rays.
// Hit reports the intersection within [tMin, tMax]; an error means the
// shape could not be tested at all and the render must stop.
type Shape interface {
	Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool, error)
}
