package geometry

import (
	"math"

	"github.com/rmyers/go-pathtracer/pkg/core"
	"github.com/rmyers/go-pathtracer/pkg/material"
)

// Plane represents an infinite plane defined by a point and a normal
type Plane struct {
	Point    core.Vec3
	Normal   core.Vec3 // Stored normalized
	Material material.Material
}

// NewPlane creates a new plane. The normal is normalized here so hit tests
// never have to assume the caller did.
func NewPlane(point, normal core.Vec3, mat material.Material) *Plane {
	return &Plane{
		Point:    point,
		Normal:   normal.Normalize(),
		Material: mat,
	}
}

// Hit tests if a ray intersects the plane
func (p *Plane) Hit(ray core.Ray, tRange core.Interval) (*material.HitRecord, bool) {
	denominator := ray.Direction.Dot(p.Normal)

	// Ray parallel to the plane
	if math.Abs(denominator) < 1e-8 {
		return nil, false
	}

	t := p.Point.Subtract(ray.Origin).Dot(p.Normal) / denominator
	if !tRange.Surrounds(t) {
		return nil, false
	}

	hit := &material.HitRecord{
		T:        t,
		Point:    ray.At(t),
		Material: p.Material,
	}
	hit.SetFaceNormal(ray, p.Normal)

	return hit, true
}

// BoundingBox returns bounds for this plane. An infinite plane has no tight
// box; a thin slab is returned when the plane is axis-aligned, otherwise a
// large box that the BVH treats as always-hit.
func (p *Plane) BoundingBox() core.AABB {
	const largeValue = 1e6
	const epsilon = 0.001

	switch {
	case math.Abs(p.Normal.X) > 1-1e-9:
		return core.NewAABB(
			core.NewVec3(p.Point.X-epsilon, -largeValue, -largeValue),
			core.NewVec3(p.Point.X+epsilon, largeValue, largeValue),
		)
	case math.Abs(p.Normal.Y) > 1-1e-9:
		return core.NewAABB(
			core.NewVec3(-largeValue, p.Point.Y-epsilon, -largeValue),
			core.NewVec3(largeValue, p.Point.Y+epsilon, largeValue),
		)
	case math.Abs(p.Normal.Z) > 1-1e-9:
		return core.NewAABB(
			core.NewVec3(-largeValue, -largeValue, p.Point.Z-epsilon),
			core.NewVec3(largeValue, largeValue, p.Point.Z+epsilon),
		)
	default:
		return core.NewAABB(
			core.NewVec3(-largeValue, -largeValue, -largeValue),
			core.NewVec3(largeValue, largeValue, largeValue),
		)
	}
}
