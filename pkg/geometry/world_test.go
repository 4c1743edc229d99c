package geometry

import (
	"math"
	"testing"

	"github.com/rmyers/go-pathtracer/pkg/core"
	"github.com/rmyers/go-pathtracer/pkg/material"
)

func TestWorldClosestHit(t *testing.T) {
	// Two overlapping spheres along the ray; the nearer surface must win
	nearMat := material.NewLambertian(core.NewVec3(1, 0, 0))
	farMat := material.NewLambertian(core.NewVec3(0, 0, 1))

	world := NewWorld(
		NewSphere(core.NewVec3(0, 0, 2), 1.0, farMat),
		NewSphere(core.NewVec3(0, 0, 1), 1.0, nearMat),
	)
	ray := core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1))

	hit, ok := world.Hit(ray, fullRange())
	if !ok {
		t.Fatal("expected hit")
	}
	if math.Abs(hit.T-5) > 1e-12 {
		t.Errorf("expected nearest surface at t = 5, got %v", hit.T)
	}
	if hit.Material != nearMat {
		t.Error("closest hit should carry the nearer sphere's material")
	}
}

func TestWorldNoHit(t *testing.T) {
	world := NewWorld(
		NewSphere(core.NewVec3(0, 0, 5), 1.0, testMaterial()),
	)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0))

	if _, ok := world.Hit(ray, fullRange()); ok {
		t.Error("ray missing all shapes should report no hit")
	}
}

func TestWorldEmpty(t *testing.T) {
	world := NewWorld()
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))

	if _, ok := world.Hit(ray, fullRange()); ok {
		t.Error("empty world should never hit")
	}
}

func TestWorldPreprocessedMatchesLinear(t *testing.T) {
	world := NewWorld(
		NewSphere(core.NewVec3(0, 0, 2), 1.0, testMaterial()),
		NewSphere(core.NewVec3(0, 0, 5), 1.0, testMaterial()),
		NewSphere(core.NewVec3(3, 0, 3), 1.0, testMaterial()),
		NewPlane(core.NewVec3(0, -2, 0), core.NewVec3(0, 1, 0), testMaterial()),
	)
	ray := core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1))

	linearHit, linearOK := world.Hit(ray, fullRange())

	world.Preprocess()
	bvhHit, bvhOK := world.Hit(ray, fullRange())

	if linearOK != bvhOK {
		t.Fatalf("BVH hit %v, linear hit %v", bvhOK, linearOK)
	}
	if math.Abs(linearHit.T-bvhHit.T) > 1e-12 {
		t.Errorf("BVH t = %v, linear t = %v", bvhHit.T, linearHit.T)
	}
}
