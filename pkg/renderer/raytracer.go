package renderer

import (
	"image"
	"image/color"
	"math"
	"math/rand"

	"github.com/rmyers/go-pathtracer/pkg/core"
	"github.com/rmyers/go-pathtracer/pkg/geometry"
)

// tMinEpsilon keeps scattered rays from immediately re-hitting the surface
// they left (shadow acne)
const tMinEpsilon = 0.001

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	Width           int   // Image width in pixels
	Height          int   // Image height in pixels
	SamplesPerPixel int   // Number of rays per pixel
	MaxDepth        int   // Maximum ray bounce depth
	Seed            int64 // Base seed for the per-task generators
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		Width:           400,
		Height:          225,
		SamplesPerPixel: 100,
		MaxDepth:        50,
		Seed:            42,
	}
}

// Scene provides everything the raytracer needs. Defined here rather than
// in the scene package to avoid an import cycle.
type Scene interface {
	GetCamera() *Camera
	GetBackgroundColors() (top, bottom core.Vec3)
	GetWorld() *geometry.World
	GetSamplingConfig() SamplingConfig
}

// Raytracer evaluates radiance along camera rays for a single scene.
// It holds no mutable state and is safe to share across workers.
type Raytracer struct {
	scene  Scene
	config SamplingConfig
}

// NewRaytracer creates a raytracer for the given scene
func NewRaytracer(scene Scene) *Raytracer {
	return &Raytracer{
		scene:  scene,
		config: scene.GetSamplingConfig(),
	}
}

// backgroundColor returns the sky gradient for a ray that escaped the scene
func (rt *Raytracer) backgroundColor(r core.Ray) core.Vec3 {
	topColor, bottomColor := rt.scene.GetBackgroundColors()

	unitDirection := r.Direction.Normalize()
	t := 0.5 * (unitDirection.Y + 1.0)

	return bottomColor.Multiply(1.0 - t).Add(topColor.Multiply(t))
}

// RayColor returns the radiance arriving along the ray, recursing on
// scattered rays until the depth budget runs out. Depth exhaustion returns
// black: an energy cutoff that trades a little bias for bounded work.
func (rt *Raytracer) RayColor(r core.Ray, depth int, random *rand.Rand) core.Vec3 {
	if depth <= 0 {
		return core.Vec3{}
	}

	hit, ok := rt.scene.GetWorld().Hit(r, core.NewInterval(tMinEpsilon, math.Inf(1)))
	if !ok {
		return rt.backgroundColor(r)
	}

	scatter, didScatter := hit.Material.Scatter(r, *hit, random)
	if !didScatter {
		return core.Vec3{} // Absorbed
	}

	return scatter.Attenuation.MultiplyVec(rt.RayColor(scatter.Scattered, depth-1, random))
}

// samplePixel averages SamplesPerPixel jittered camera rays through
// pixel (i, j)
func (rt *Raytracer) samplePixel(i, j int, random *rand.Rand) core.Vec3 {
	camera := rt.scene.GetCamera()
	accum := core.Vec3{}

	for sample := 0; sample < rt.config.SamplesPerPixel; sample++ {
		s := (float64(i) + random.Float64()) / float64(rt.config.Width)
		t := (float64(j) + random.Float64()) / float64(rt.config.Height)
		ray := camera.GetRay(s, t, random)
		accum = accum.Add(rt.RayColor(ray, rt.config.MaxDepth, random))
	}

	return accum.Multiply(1.0 / float64(rt.config.SamplesPerPixel))
}

// RenderRows renders scanlines [yMin, yMax) into the shared image and
// returns the number of samples taken. Row ranges across tasks never
// overlap, so the buffer needs no locking. j counts up from the bottom of
// the viewport while image rows count down from the top.
func (rt *Raytracer) RenderRows(yMin, yMax int, img *image.RGBA, random *rand.Rand) int {
	samples := 0
	for y := yMin; y < yMax; y++ {
		j := rt.config.Height - 1 - y
		for i := 0; i < rt.config.Width; i++ {
			colorVec := rt.samplePixel(i, j, random)
			img.SetRGBA(i, y, vec3ToColor(colorVec))
			samples += rt.config.SamplesPerPixel
		}
	}
	return samples
}

// vec3ToColor finalizes a linear color value: gamma-2 correction, clamp
// to [0,1], scale to 8-bit
func vec3ToColor(colorVec core.Vec3) color.RGBA {
	colorVec = colorVec.GammaCorrect(2.0).Clamp(0.0, 1.0)
	return color.RGBA{
		R: uint8(255 * colorVec.X),
		G: uint8(255 * colorVec.Y),
		B: uint8(255 * colorVec.Z),
		A: 255,
	}
}
