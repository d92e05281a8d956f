package geometry

import (
	"fmt"

	"github.com/df07/weekend-pathtracer/pkg/core"
	"github.com/df07/weekend-pathtracer/pkg/material"
)

// Box is an oriented box described by its extents along a front/right/up frame.
// Intersection is not implemented; Hit always fails with core.ErrNotImplemented.
type Box struct {
	Width    float64
	Height   float64
	Depth    float64
	Front    core.Vec3
	Right    core.Vec3
	Up       core.Vec3 // cross(Right, Front)
	Material material.Material
}

// NewBox creates a box, deriving Up from the front and right axes
func NewBox(width, height, depth float64, front, right core.Vec3, mat material.Material) *Box {
	return &Box{
		Width:    width,
		Height:   height,
		Depth:    depth,
		Front:    front,
		Right:    right,
		Up:       right.Cross(front),
		Material: mat,
	}
}

// Hit implements Shape
func (b *Box) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool, error) {
	return nil, false, fmt.Errorf("box intersection: %w", core.ErrNotImplemented)
}
