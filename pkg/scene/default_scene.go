package scene

import (
	"github.com/rmyers/go-pathtracer/pkg/core"
	"github.com/rmyers/go-pathtracer/pkg/geometry"
	"github.com/rmyers/go-pathtracer/pkg/material"
	"github.com/rmyers/go-pathtracer/pkg/renderer"
)

// NewDefaultScene creates the built-in demo scene: a matte ground plane
// with one diffuse, one glass and one metal sphere under a blue sky
// gradient
func NewDefaultScene() *Scene {
	ground := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))
	matte := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	glass := material.NewDielectric(1.5)
	metal := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.05)

	world := geometry.NewWorld(
		geometry.NewPlane(core.NewVec3(0, -0.5, 0), core.NewVec3(0, 1, 0), ground),
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, matte),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, glass),
		geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, metal),
	)

	cameraConfig := renderer.CameraConfig{
		LookFrom: core.NewVec3(-2, 2, 1),
		LookAt:   core.NewVec3(0, 0, -1),
		Up:       core.NewVec3(0, 1, 0),
		VFov:     25.0,
		Aperture: 0.05,
	}

	return NewScene(cameraConfig, renderer.DefaultSamplingConfig(), world,
		core.NewVec3(0.5, 0.7, 1.0), // sky blue at the top
		core.NewVec3(1.0, 1.0, 1.0), // white at the horizon
	)
}
