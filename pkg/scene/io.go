package scene

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rmyers/go-pathtracer/pkg/core"
	"github.com/rmyers/go-pathtracer/pkg/geometry"
	"github.com/rmyers/go-pathtracer/pkg/material"
	"github.com/rmyers/go-pathtracer/pkg/renderer"
)

// The wire format is a declarative JSON document: render settings, camera
// parameters, a list of named materials and a list of objects referencing
// materials by name. Any malformed input is rejected with a descriptive
// error before rendering starts.

// VecDoc is a 3D vector or point in the scene document
type VecDoc struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// ColorDoc is an RGB color in linear space
type ColorDoc struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
}

// RenderDoc defines image size and quality parameters
type RenderDoc struct {
	Width           int   `json:"width"`
	Height          int   `json:"height"`
	SamplesPerPixel int   `json:"samples_per_pixel"`
	MaxDepth        int   `json:"max_depth"`
	Seed            int64 `json:"seed"`
}

// CameraDoc defines the viewpoint
type CameraDoc struct {
	LookFrom      VecDoc  `json:"look_from"`
	LookAt        VecDoc  `json:"look_at"`
	Up            VecDoc  `json:"up"`
	VFov          float64 `json:"vfov"`
	Aperture      float64 `json:"aperture"`
	FocusDistance float64 `json:"focus_distance"`
}

// BackgroundDoc defines the sky gradient; equal colors give a constant
// background
type BackgroundDoc struct {
	Top    ColorDoc `json:"top"`
	Bottom ColorDoc `json:"bottom"`
}

// MaterialDoc defines a named material of kind lambertian, metal or
// dielectric
type MaterialDoc struct {
	Name            string   `json:"name"`
	Type            string   `json:"type"`
	Albedo          ColorDoc `json:"albedo"`           // lambertian, metal
	Fuzz            float64  `json:"fuzz"`             // metal
	RefractiveIndex float64  `json:"refractive_index"` // dielectric
}

// ObjectDoc defines a geometric primitive of kind sphere or plane
type ObjectDoc struct {
	Type     string  `json:"type"`
	Center   VecDoc  `json:"center"` // sphere
	Radius   float64 `json:"radius"` // sphere
	Point    VecDoc  `json:"point"`  // plane
	Normal   VecDoc  `json:"normal"` // plane
	Material string  `json:"material"`
}

// Document is the root of a scene file
type Document struct {
	Render     RenderDoc     `json:"render"`
	Camera     CameraDoc     `json:"camera"`
	Background BackgroundDoc `json:"background"`
	Materials  []MaterialDoc `json:"materials"`
	Objects    []ObjectDoc   `json:"objects"`
}

func (v VecDoc) vec3() core.Vec3   { return core.NewVec3(v.X, v.Y, v.Z) }
func (c ColorDoc) vec3() core.Vec3 { return core.NewVec3(c.R, c.G, c.B) }

// Load reads and builds a scene from a JSON file
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene: %w", err)
	}
	return Parse(data)
}

// Parse builds a scene from JSON data, validating it first
func Parse(data []byte) (*Scene, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode scene: %w", err)
	}
	return doc.Build()
}

// Validate checks the document for malformed input: non-positive
// dimensions or quality settings, unknown kinds, dangling material
// references and degenerate parameters
func (doc *Document) Validate() error {
	r := doc.Render
	if r.Width <= 0 || r.Height <= 0 {
		return fmt.Errorf("render dimensions must be positive, got %dx%d", r.Width, r.Height)
	}
	if r.SamplesPerPixel <= 0 {
		return fmt.Errorf("samples_per_pixel must be positive, got %d", r.SamplesPerPixel)
	}
	if r.MaxDepth <= 0 {
		return fmt.Errorf("max_depth must be positive, got %d", r.MaxDepth)
	}

	c := doc.Camera
	if c.VFov <= 0 || c.VFov >= 180 {
		return fmt.Errorf("camera vfov must be in (0, 180), got %g", c.VFov)
	}
	if c.LookFrom == c.LookAt {
		return fmt.Errorf("camera look_from and look_at must differ")
	}
	if c.Up.vec3().NearZero() {
		return fmt.Errorf("camera up vector must be non-zero")
	}
	if c.Aperture < 0 {
		return fmt.Errorf("camera aperture must be non-negative, got %g", c.Aperture)
	}

	names := make(map[string]bool, len(doc.Materials))
	for _, m := range doc.Materials {
		if m.Name == "" {
			return fmt.Errorf("material name must not be empty")
		}
		if names[m.Name] {
			return fmt.Errorf("duplicate material %q", m.Name)
		}
		names[m.Name] = true

		switch m.Type {
		case "lambertian":
		case "metal":
			if m.Fuzz < 0 || m.Fuzz > 1 {
				return fmt.Errorf("material %q: fuzz must be in [0, 1], got %g", m.Name, m.Fuzz)
			}
		case "dielectric":
			if m.RefractiveIndex <= 0 {
				return fmt.Errorf("material %q: refractive_index must be positive, got %g",
					m.Name, m.RefractiveIndex)
			}
		default:
			return fmt.Errorf("material %q: unknown type %q", m.Name, m.Type)
		}
	}

	for i, o := range doc.Objects {
		if !names[o.Material] {
			return fmt.Errorf("object %d: unknown material %q", i, o.Material)
		}
		switch o.Type {
		case "sphere":
			if o.Radius <= 0 {
				return fmt.Errorf("object %d: sphere radius must be positive, got %g", i, o.Radius)
			}
		case "plane":
			if o.Normal.vec3().NearZero() {
				return fmt.Errorf("object %d: plane normal must be non-zero", i)
			}
		default:
			return fmt.Errorf("object %d: unknown type %q", i, o.Type)
		}
	}

	return nil
}

// Build validates the document and constructs the in-memory scene
func (doc *Document) Build() (*Scene, error) {
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	materials := make(map[string]material.Material, len(doc.Materials))
	for _, m := range doc.Materials {
		switch m.Type {
		case "lambertian":
			materials[m.Name] = material.NewLambertian(m.Albedo.vec3())
		case "metal":
			materials[m.Name] = material.NewMetal(m.Albedo.vec3(), m.Fuzz)
		case "dielectric":
			materials[m.Name] = material.NewDielectric(m.RefractiveIndex)
		}
	}

	world := geometry.NewWorld()
	for _, o := range doc.Objects {
		mat := materials[o.Material]
		switch o.Type {
		case "sphere":
			world.Add(geometry.NewSphere(o.Center.vec3(), o.Radius, mat))
		case "plane":
			world.Add(geometry.NewPlane(o.Point.vec3(), o.Normal.vec3(), mat))
		}
	}

	cameraConfig := renderer.CameraConfig{
		LookFrom:      doc.Camera.LookFrom.vec3(),
		LookAt:        doc.Camera.LookAt.vec3(),
		Up:            doc.Camera.Up.vec3(),
		VFov:          doc.Camera.VFov,
		Aperture:      doc.Camera.Aperture,
		FocusDistance: doc.Camera.FocusDistance,
	}

	samplingConfig := renderer.SamplingConfig{
		Width:           doc.Render.Width,
		Height:          doc.Render.Height,
		SamplesPerPixel: doc.Render.SamplesPerPixel,
		MaxDepth:        doc.Render.MaxDepth,
		Seed:            doc.Render.Seed,
	}

	return NewScene(cameraConfig, samplingConfig, world,
		doc.Background.Top.vec3(), doc.Background.Bottom.vec3()), nil
}
