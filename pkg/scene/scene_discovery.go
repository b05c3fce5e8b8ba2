package scene

import (
	"errors"
	"fmt"
	"sort"

	"github.com/df07/go-whitted-raytracer/pkg/renderer"
)

// ErrUnknownScene is returned when no built-in scene has the requested ID
var ErrUnknownScene = errors.New("unknown scene")

// Constructor builds a scene, applying the first camera override if given
type Constructor func(cameraOverrides ...renderer.CameraConfig) (*Scene, error)

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string `json:"id"`          // Unique identifier, used by -scene and ?scene=
	DisplayName string `json:"displayName"` // UI display name
	Description string `json:"description"` // Optional description

	constructor Constructor
}

var builtInScenes = []SceneInfo{
	{
		ID:          "default",
		DisplayName: "Default Scene",
		Description: "Three spheres in a corner room",
		constructor: NewDefaultScene,
	},
	{
		ID:          "planes",
		DisplayName: "Planes",
		Description: "Patterned spheres on a striped floor with a checkered backdrop",
		constructor: NewPlanesScene,
	},
	{
		ID:          "cornell",
		DisplayName: "Cornell Box",
		Description: "Cornell box of planes with two spheres and a point light",
		constructor: NewCornellScene,
	},
	{
		ID:          "spheregrid",
		DisplayName: "Sphere Grid",
		Description: "10x10 grid of spheres varying hue and shininess",
		constructor: NewSphereGridScene,
	},
	{
		ID:          "test",
		DisplayName: "Test World",
		Description: "Two concentric spheres lit from the upper left",
		constructor: NewTestScene,
	},
}

// ListScenes returns the built-in scenes sorted by ID
func ListScenes() []SceneInfo {
	scenes := append([]SceneInfo(nil), builtInScenes...)
	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].ID < scenes[j].ID
	})
	return scenes
}

// Names returns the sorted IDs of the built-in scenes
func Names() []string {
	scenes := ListScenes()
	names := make([]string, len(scenes))
	for i, s := range scenes {
		names[i] = s.ID
	}
	return names
}

// New creates the built-in scene with the given ID
func New(id string, cameraOverrides ...renderer.CameraConfig) (*Scene, error) {
	for _, info := range builtInScenes {
		if info.ID == id {
			return info.constructor(cameraOverrides...)
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownScene, id)
}
