package geometry

import (
	"errors"
	"testing"

	"github.com/df07/weekend-pathtracer/pkg/core"
)

func TestNewBox_DerivesUp(t *testing.T) {
	box := NewBox(1, 2, 3, core.NewVec3(0, 0, -1), core.NewVec3(1, 0, 0), nil)
	if box.Up != core.NewVec3(0, 1, 0) {
		t.Errorf("Expected up (0, 1, 0), got %v", box.Up)
	}
	if box.Width != 1 || box.Height != 2 || box.Depth != 3 {
		t.Errorf("Unexpected extents %f x %f x %f", box.Width, box.Height, box.Depth)
	}
}

func TestBox_HitIsNotImplemented(t *testing.T) {
	box := NewBox(1, 1, 1, core.NewVec3(0, 0, -1), core.NewVec3(1, 0, 0), nil)

	// Fails regardless of whether the ray would geometrically hit
	rays := []core.Ray{
		core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1)),
		core.NewRay(core.NewVec3(100, 100, 100), core.NewVec3(0, 1, 0)),
	}
	for _, ray := range rays {
		hit, isHit, err := box.Hit(ray, 0.001, 1000)
		if !errors.Is(err, core.ErrNotImplemented) {
			t.Errorf("Expected ErrNotImplemented, got %v", err)
		}
		if isHit || hit != nil {
			t.Error("Box should not report a hit")
		}
	}
}
