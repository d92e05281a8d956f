package geometry

import (
	"fmt"

	"github.com/df07/weekend-pathtracer/pkg/core"
	"github.com/df07/weekend-pathtracer/pkg/material"
)

// HitClosest tests the ray against every shape and returns the nearest hit
func HitClosest(shapes []Shape, ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool, error) {
	hit, _, err := HitClosestIndex(shapes, ray, tMin, tMax)
	if err != nil {
		return nil, false, err
	}
	return hit, hit != nil, nil
}

// HitClosestIndex is HitClosest that also reports the position of the winning
// shape in the list, or -1 on a miss. Every shape is tested over the full
// [tMin, tMax] range and a later hit only replaces the current one when
// strictly closer, so the first shape in the list wins ties.
func HitClosestIndex(shapes []Shape, ray core.Ray, tMin, tMax float64) (*material.HitRecord, int, error) {
	var closestHit *material.HitRecord
	closestIndex := -1

	for i, shape := range shapes {
		hit, isHit, err := shape.Hit(ray, tMin, tMax)
		if err != nil {
			return nil, -1, fmt.Errorf("shape %d: %w", i, err)
		}
		if isHit && (closestHit == nil || hit.T < closestHit.T) {
			closestHit = hit
			closestIndex = i
		}
	}

	return closestHit, closestIndex, nil
}
