package material

import (
	"math"
	"testing"

	"github.com/df07/weekend-pathtracer/pkg/core"
)

// sequenceSampler replays a fixed list of values, wrapping around at the end
type sequenceSampler struct {
	values []float64
	next   int
}

func (s *sequenceSampler) Get1D() float64 {
	v := s.values[s.next%len(s.values)]
	s.next++
	return v
}

func (s *sequenceSampler) Get2D() core.Vec2 { return core.NewVec2(s.Get1D(), s.Get1D()) }
func (s *sequenceSampler) Get3D() core.Vec3 { return core.NewVec3(s.Get1D(), s.Get1D(), s.Get1D()) }

func mustNormalize(t *testing.T, v core.Vec3) core.Vec3 {
	t.Helper()
	unit, err := v.Normalize()
	if err != nil {
		t.Fatalf("normalize %v: %v", v, err)
	}
	return unit
}

func assertVecNear(t *testing.T, expected, actual core.Vec3, tolerance float64) {
	t.Helper()
	if math.Abs(expected.X-actual.X) > tolerance ||
		math.Abs(expected.Y-actual.Y) > tolerance ||
		math.Abs(expected.Z-actual.Z) > tolerance {
		t.Errorf("Expected %v, got %v", expected, actual)
	}
}
