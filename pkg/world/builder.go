package world

import (
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Builder accumulates shapes and a light before producing a World.
// The first construction error is kept and returned by Build.
type Builder struct {
	shapes []geometry.Shape
	light  *lights.PointLight
	err    error
}

// NewBuilder creates an empty builder
func NewBuilder() *Builder {
	return &Builder{}
}

// WithShape appends already constructed shapes
func (b *Builder) WithShape(shapes ...geometry.Shape) *Builder {
	b.shapes = append(b.shapes, shapes...)
	return b
}

// WithLight sets the light, replacing any previous one
func (b *Builder) WithLight(light lights.PointLight) *Builder {
	b.light = &light
	return b
}

// AddSphere constructs a sphere and appends it
func (b *Builder) AddSphere(transform core.Matrix4, mat material.Material) *Builder {
	return b.add(geometry.NewSphere(transform, mat))
}

// AddPlane constructs a plane and appends it
func (b *Builder) AddPlane(transform core.Matrix4, mat material.Material) *Builder {
	return b.add(geometry.NewPlane(transform, mat))
}

func (b *Builder) add(obj *geometry.Object, err error) *Builder {
	if err != nil {
		if b.err == nil {
			b.err = fmt.Errorf("shape %d: %w", len(b.shapes), err)
		}
		return b
	}
	b.shapes = append(b.shapes, obj)
	return b
}

// Build returns the finished world, or the first construction error
func (b *Builder) Build() (*World, error) {
	if b.err != nil {
		return nil, b.err
	}

	w := &World{shapes: append([]geometry.Shape(nil), b.shapes...)}
	if b.light != nil {
		light := *b.light
		w.light = &light
	}
	return w, nil
}
