package core

import (
	"fmt"
	"math"
)

// Vec2 represents a 2D vector, mostly image-plane coordinates
type Vec2 struct {
	X, Y float64
}

// NewVec2 creates a new Vec2
func NewVec2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

func (v Vec2) Subtract(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

func (v Vec2) Multiply(scalar float64) Vec2 {
	return Vec2{v.X * scalar, v.Y * scalar}
}

func (v Vec2) MultiplyVec(other Vec2) Vec2 {
	return Vec2{v.X * other.X, v.Y * other.Y}
}

// Divide returns the vector divided by a scalar, failing on zero
func (v Vec2) Divide(scalar float64) (Vec2, error) {
	if scalar == 0 {
		return Vec2{}, fmt.Errorf("divide %v by zero: %w", v, ErrDivisionByZero)
	}
	return Vec2{v.X / scalar, v.Y / scalar}, nil
}

func (v Vec2) Dot(other Vec2) float64 {
	return v.X*other.X + v.Y*other.Y
}

func (v Vec2) LengthSquared() float64 {
	return v.Dot(v)
}

func (v Vec2) Length() float64 {
	return math.Sqrt(v.LengthSquared())
}

// Normalize returns a unit vector in the same direction
func (v Vec2) Normalize() (Vec2, error) {
	unit, err := v.Divide(v.Length())
	if err != nil {
		return Vec2{}, fmt.Errorf("normalize: %w", err)
	}
	return unit, nil
}

// Index returns the component at position i (0=X, 1=Y)
func (v Vec2) Index(i int) (float64, error) {
	switch i {
	case 0:
		return v.X, nil
	case 1:
		return v.Y, nil
	}
	return 0, fmt.Errorf("vec2 component %d: %w", i, ErrIndexOutOfRange)
}

// String formats the vector as (x, y)
func (v Vec2) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}

// TriangleArea returns the unsigned area of the triangle (a, b, c)
func TriangleArea(a, b, c Vec2) float64 {
	u := b.Subtract(a)
	w := c.Subtract(a)
	return math.Abs(0.5 * (u.X*w.Y - u.Y*w.X))
}

// Barycentric returns the barycentric weights of p with respect to the
// triangle (a, b, c). Weight X belongs to a, Y to b and Z to c.
// A degenerate triangle has zero area and yields ErrDivisionByZero.
func Barycentric(p, a, b, c Vec2) (Vec3, error) {
	area := TriangleArea(a, b, c)
	if area == 0 {
		return Vec3{}, fmt.Errorf("barycentric of degenerate triangle: %w", ErrDivisionByZero)
	}
	return Vec3{
		X: TriangleArea(p, b, c) / area,
		Y: TriangleArea(p, a, c) / area,
		Z: TriangleArea(p, a, b) / area,
	}, nil
}
