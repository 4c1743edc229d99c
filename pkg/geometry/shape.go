package geometry

import (
	"github.com/rmyers/go-pathtracer/pkg/core"
	"github.com/rmyers/go-pathtracer/pkg/material"
)

// Shape is the interface for objects that can be intersected by rays.
// Shapes are immutable once the scene is constructed and safe to share
// across render workers.
type Shape interface {
	// Hit tests the ray against the shape over the given parametric range
	// and returns the hit record for the nearest intersection, if any.
	Hit(ray core.Ray, tRange core.Interval) (*material.HitRecord, bool)

	// BoundingBox returns the axis-aligned bounds of the shape
	BoundingBox() core.AABB
}
