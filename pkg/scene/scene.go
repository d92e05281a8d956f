package scene

import (
	"fmt"

	"github.com/df07/weekend-pathtracer/pkg/core"
	"github.com/df07/weekend-pathtracer/pkg/geometry"
	"github.com/df07/weekend-pathtracer/pkg/material"
	"github.com/df07/weekend-pathtracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering.
// It is built once and only read while rendering.
type Scene struct {
	Camera         *renderer.Camera
	Shapes         []geometry.Shape    // Objects in the scene, in insertion order
	Materials      []material.Material // Distinct materials referenced by Shapes
	TopColor       core.Vec3           // Sky color straight up
	BottomColor    core.Vec3           // Sky color straight down
	SamplingConfig renderer.SamplingConfig
	CameraConfig   renderer.CameraConfig
}

// NewScene creates an empty scene with the default sky gradient
func NewScene(cameraConfig renderer.CameraConfig, samplingConfig renderer.SamplingConfig) (*Scene, error) {
	camera, err := renderer.NewCamera(cameraConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create camera: %w", err)
	}

	return &Scene{
		Camera:         camera,
		Shapes:         make([]geometry.Shape, 0),
		Materials:      make([]material.Material, 0),
		TopColor:       core.NewVec3(0.5, 0.7, 1.0),
		BottomColor:    core.NewVec3(1.0, 1.0, 1.0),
		SamplingConfig: samplingConfig,
		CameraConfig:   cameraConfig,
	}, nil
}

// GetCamera implements renderer.Scene
func (s *Scene) GetCamera() core.Camera {
	return s.Camera
}

// GetShapes implements integrator.Scene
func (s *Scene) GetShapes() []geometry.Shape {
	return s.Shapes
}

// GetBackgroundColors implements integrator.Scene
func (s *Scene) GetBackgroundColors() (topColor, bottomColor core.Vec3) {
	return s.TopColor, s.BottomColor
}

// AddSphere appends a sphere and records its material
func (s *Scene) AddSphere(center core.Vec3, radius float64, mat material.Material) *geometry.Sphere {
	sphere := geometry.NewSphere(center, radius, mat)
	s.Shapes = append(s.Shapes, sphere)
	s.addMaterial(mat)
	return sphere
}

// AddBox appends a box. Rendering a scene that contains one fails
// because box intersection is not implemented.
func (s *Scene) AddBox(width, height, depth float64, front, right core.Vec3, mat material.Material) *geometry.Box {
	box := geometry.NewBox(width, height, depth, front, right, mat)
	s.Shapes = append(s.Shapes, box)
	s.addMaterial(mat)
	return box
}

func (s *Scene) addMaterial(mat material.Material) {
	for _, existing := range s.Materials {
		if existing == mat {
			return
		}
	}
	s.Materials = append(s.Materials, mat)
}

// GetPrimitiveCount returns the total number of primitive objects in the scene
func (s *Scene) GetPrimitiveCount() int {
	return len(s.Shapes)
}
