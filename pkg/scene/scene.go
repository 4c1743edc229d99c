package scene

import (
	"github.com/rmyers/go-pathtracer/pkg/core"
	"github.com/rmyers/go-pathtracer/pkg/geometry"
	"github.com/rmyers/go-pathtracer/pkg/renderer"
)

// Scene contains everything needed for a render: camera, world, background
// and sampling configuration. Once built it is read-only and shared across
// all render workers.
type Scene struct {
	Camera         *renderer.Camera
	CameraConfig   renderer.CameraConfig
	World          *geometry.World
	TopColor       core.Vec3 // Background gradient at the zenith
	BottomColor    core.Vec3 // Background gradient at the horizon
	SamplingConfig renderer.SamplingConfig
}

// NewScene builds a scene from its parts. The camera aspect ratio is
// derived from the image dimensions, and the world's acceleration
// structure is built here so rendering starts from a fully immutable
// scene.
func NewScene(cameraConfig renderer.CameraConfig, samplingConfig renderer.SamplingConfig,
	world *geometry.World, topColor, bottomColor core.Vec3) *Scene {

	cameraConfig.AspectRatio = float64(samplingConfig.Width) / float64(samplingConfig.Height)
	world.Preprocess()

	return &Scene{
		Camera:         renderer.NewCamera(cameraConfig),
		CameraConfig:   cameraConfig,
		World:          world,
		TopColor:       topColor,
		BottomColor:    bottomColor,
		SamplingConfig: samplingConfig,
	}
}

// GetCamera implements renderer.Scene
func (s *Scene) GetCamera() *renderer.Camera { return s.Camera }

// GetBackgroundColors implements renderer.Scene
func (s *Scene) GetBackgroundColors() (core.Vec3, core.Vec3) {
	return s.TopColor, s.BottomColor
}

// GetWorld implements renderer.Scene
func (s *Scene) GetWorld() *geometry.World { return s.World }

// GetSamplingConfig implements renderer.Scene
func (s *Scene) GetSamplingConfig() renderer.SamplingConfig { return s.SamplingConfig }
