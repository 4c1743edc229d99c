package geometry

import (
	"github.com/rmyers/go-pathtracer/pkg/core"
	"github.com/rmyers/go-pathtracer/pkg/material"
)

// BVHNode represents a node in the bounding volume hierarchy. Leaf nodes
// carry shapes; internal nodes carry children.
type BVHNode struct {
	Bounds core.AABB
	Left   *BVHNode
	Right  *BVHNode
	Shapes []Shape // Non-nil only for leaf nodes
}

// BVH accelerates ray-shape intersection by pruning subtrees whose bounds
// the ray misses. Construction uses median splits along the longest axis.
type BVH struct {
	Root *BVHNode
}

// Leaf threshold: nodes with this many or fewer shapes are not split further
const leafThreshold = 4

// NewBVH constructs a BVH from a slice of shapes
func NewBVH(shapes []Shape) *BVH {
	if len(shapes) == 0 {
		return &BVH{}
	}

	// Copy so splitting never reorders the caller's slice
	shapesCopy := make([]Shape, len(shapes))
	copy(shapesCopy, shapes)

	return &BVH{Root: buildBVH(shapesCopy)}
}

func buildBVH(shapes []Shape) *BVHNode {
	bounds := shapes[0].BoundingBox()
	for _, shape := range shapes[1:] {
		bounds = bounds.Union(shape.BoundingBox())
	}

	if len(shapes) <= leafThreshold {
		return &BVHNode{Bounds: bounds, Shapes: shapes}
	}

	axis := bounds.LongestAxis()
	splitPos := axisValue(bounds.Center(), axis)

	var left, right []Shape
	for _, shape := range shapes {
		if axisValue(shape.BoundingBox().Center(), axis) < splitPos {
			left = append(left, shape)
		} else {
			right = append(right, shape)
		}
	}

	// Degenerate split (all centers on one side): keep a leaf
	if len(left) == 0 || len(right) == 0 {
		return &BVHNode{Bounds: bounds, Shapes: shapes}
	}

	return &BVHNode{
		Bounds: bounds,
		Left:   buildBVH(left),
		Right:  buildBVH(right),
	}
}

func axisValue(v core.Vec3, axis int) float64 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

// Hit finds the closest intersection within tRange, or false if the ray
// misses everything. Results are identical to a linear scan over the
// same shapes.
func (bvh *BVH) Hit(ray core.Ray, tRange core.Interval) (*material.HitRecord, bool) {
	if bvh.Root == nil {
		return nil, false
	}
	return hitNode(bvh.Root, ray, tRange)
}

func hitNode(node *BVHNode, ray core.Ray, tRange core.Interval) (*material.HitRecord, bool) {
	if !node.Bounds.Hit(ray, tRange) {
		return nil, false
	}

	if node.Shapes != nil {
		var closest *material.HitRecord
		closestSoFar := tRange.Max
		for _, shape := range node.Shapes {
			if hit, ok := shape.Hit(ray, core.NewInterval(tRange.Min, closestSoFar)); ok {
				closestSoFar = hit.T
				closest = hit
			}
		}
		return closest, closest != nil
	}

	closest, _ := hitNode(node.Left, ray, tRange)
	rightRange := tRange
	if closest != nil {
		rightRange.Max = closest.T
	}
	if hit, ok := hitNode(node.Right, ray, rightRange); ok {
		closest = hit
	}

	return closest, closest != nil
}
