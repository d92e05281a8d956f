package renderer

import (
	"fmt"
	"math"

	"github.com/df07/weekend-pathtracer/pkg/core"
)

// CameraConfig contains all camera configuration parameters
type CameraConfig struct {
	VFov        float64   // Vertical field of view in degrees
	AspectRatio float64   // Width / height
	Up          core.Vec3 // World up direction
	LookFrom    core.Vec3 // Camera position
	LookAt      core.Vec3 // Point the camera looks at
}

// DefaultCameraConfig returns the camera used by the random scene
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		VFov:        45.0,
		AspectRatio: 2.0,
		Up:          core.NewVec3(0, 1, 0),
		LookFrom:    core.NewVec3(5, 1, 2),
		LookAt:      core.NewVec3(-15, 0, -5),
	}
}

// Camera generates rays for rendering
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3 // Relative to origin
	horizontal      core.Vec3
	vertical        core.Vec3
	front           core.Vec3
	right           core.Vec3
	up              core.Vec3
	config          CameraConfig
}

// NewCamera builds the orthonormal camera basis and image plane.
// It fails when LookFrom equals LookAt or the view direction is parallel to Up.
func NewCamera(config CameraConfig) (*Camera, error) {
	theta := config.VFov * math.Pi / 180.0
	halfHeight := math.Tan(theta / 2)
	halfWidth := config.AspectRatio * halfHeight

	front, err := config.LookAt.Subtract(config.LookFrom).Normalize()
	if err != nil {
		return nil, fmt.Errorf("camera front: %w", err)
	}
	right, err := front.Cross(config.Up).Normalize()
	if err != nil {
		return nil, fmt.Errorf("camera right: %w", err)
	}
	up := right.Cross(front)

	lowerLeftCorner := front.
		Subtract(right.Multiply(halfWidth)).
		Subtract(up.Multiply(halfHeight))

	return &Camera{
		origin:          config.LookFrom,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      right.Multiply(2 * halfWidth),
		vertical:        up.Multiply(2 * halfHeight),
		front:           front,
		right:           right,
		up:              up,
		config:          config,
	}, nil
}

// GetRay generates a ray for screen coordinates (s, t) where 0 <= s,t <= 1
func (c *Camera) GetRay(s, t float64) (core.Ray, error) {
	direction, err := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Normalize()
	if err != nil {
		return core.Ray{}, fmt.Errorf("camera ray (%f, %f): %w", s, t, err)
	}
	return core.NewRay(c.origin, direction), nil
}

// GetBasis returns the camera's front, right and up unit vectors
func (c *Camera) GetBasis() (front, right, up core.Vec3) {
	return c.front, c.right, c.up
}

// GetConfig returns the configuration the camera was built from
func (c *Camera) GetConfig() CameraConfig {
	return c.config
}
