package geometry

import (
	"github.com/rmyers/go-pathtracer/pkg/core"
	"github.com/rmyers/go-pathtracer/pkg/material"
)

// World is an ordered collection of shapes. It owns all geometry (and,
// transitively, the materials those shapes reference) for the lifetime of
// the render and is read-only once Preprocess has run.
type World struct {
	Shapes []Shape

	bvh *BVH // Built by Preprocess; nil means linear scan
}

// NewWorld creates a world from the given shapes
func NewWorld(shapes ...Shape) *World {
	return &World{Shapes: shapes}
}

// Add appends a shape to the world. Must not be called once rendering
// has started.
func (w *World) Add(shape Shape) {
	w.Shapes = append(w.Shapes, shape)
	w.bvh = nil
}

// Preprocess builds the acceleration structure. Optional: Hit falls back
// to a linear scan when it has not been called.
func (w *World) Preprocess() {
	w.bvh = NewBVH(w.Shapes)
}

// Hit finds the closest intersection along the ray within tRange across
// all shapes in the world. Returns false when the ray escapes to the
// background.
func (w *World) Hit(ray core.Ray, tRange core.Interval) (*material.HitRecord, bool) {
	if w.bvh != nil {
		return w.bvh.Hit(ray, tRange)
	}

	var closest *material.HitRecord
	closestSoFar := tRange.Max

	for _, shape := range w.Shapes {
		if hit, ok := shape.Hit(ray, core.NewInterval(tRange.Min, closestSoFar)); ok {
			closestSoFar = hit.T
			closest = hit
		}
	}

	return closest, closest != nil
}

// BoundingBox returns the bounds of all shapes in the world
func (w *World) BoundingBox() core.AABB {
	if len(w.Shapes) == 0 {
		return core.AABB{}
	}
	box := w.Shapes[0].BoundingBox()
	for _, shape := range w.Shapes[1:] {
		box = box.Union(shape.BoundingBox())
	}
	return box
}
