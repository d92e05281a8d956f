package scene

import (
	"fmt"

	"github.com/df07/weekend-pathtracer/pkg/core"
)

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string `json:"id"`          // Name accepted by NewSceneByName
	DisplayName string `json:"displayName"` // UI display name
	Description string `json:"description"`
}

var builtinScenes = []SceneInfo{
	{ID: "random", DisplayName: "Random Spheres", Description: "Field of small random spheres around three large ones"},
	{ID: "three-spheres", DisplayName: "Three Spheres", Description: "Glass, diffuse and metal spheres on a ground sphere"},
	{ID: "empty", DisplayName: "Empty Sky", Description: "Sky gradient only"},
}

// ListScenes returns the built-in scenes in display order
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, len(builtinScenes))
	copy(scenes, builtinScenes)
	return scenes
}

// NewSceneByName builds a built-in scene. Randomized scenes draw from sampler.
func NewSceneByName(name string, sampler core.Sampler) (*Scene, error) {
	switch name {
	case "random":
		return NewRandomScene(sampler)
	case "three-spheres":
		return NewThreeSphereScene()
	case "empty":
		return NewEmptyScene()
	default:
		return nil, fmt.Errorf("unknown scene type: %q", name)
	}
}
