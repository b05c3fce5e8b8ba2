package scene

import (
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/world"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name         string
	World        *world.World
	CameraConfig renderer.CameraConfig // Default camera, overridable per render
}

// Camera creates the scene camera
func (s *Scene) Camera() (*renderer.Camera, error) {
	camera, err := renderer.NewCamera(s.CameraConfig)
	if err != nil {
		return nil, fmt.Errorf("scene %q: %w", s.Name, err)
	}
	return camera, nil
}

// newScene builds the world and applies the first camera override, if any
func newScene(name string, b *world.Builder, cameraConfig renderer.CameraConfig, cameraOverrides []renderer.CameraConfig) (*Scene, error) {
	w, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("scene %q: %w", name, err)
	}

	if len(cameraOverrides) > 0 {
		cameraConfig = renderer.MergeCameraConfig(cameraConfig, cameraOverrides[0])
	}

	return &Scene{Name: name, World: w, CameraConfig: cameraConfig}, nil
}

// lookAt returns a camera config for a view from `from` towards `to` with +Y up
func lookAt(width, height int, fov float64, from, to core.Tuple) renderer.CameraConfig {
	return renderer.CameraConfig{
		Width:       width,
		Height:      height,
		FieldOfView: fov,
		Transform:   core.ViewTransform(from, to, core.Vector(0, 1, 0)),
	}
}

// phong returns a solid-colored material with the given lighting coefficients
func phong(color core.Color, diffuse, specular, shininess float64) material.Material {
	m := material.NewColored(color)
	m.Diffuse = diffuse
	m.Specular = specular
	m.Shininess = shininess
	return m
}
