package material

import (
	"math/rand"

	"github.com/rmyers/go-pathtracer/pkg/core"
)

// Material describes how a surface scatters incoming light. Implementations
// are immutable after construction and may be shared freely across shapes
// and across render workers; all randomness comes from the caller-supplied
// generator.
type Material interface {
	// Scatter produces an attenuation color and an outgoing ray for the
	// given incoming ray and hit point. It returns false when the ray is
	// absorbed.
	Scatter(rayIn core.Ray, hit HitRecord, random *rand.Rand) (ScatterResult, bool)
}

// ScatterResult contains the outcome of a scattering event
type ScatterResult struct {
	Attenuation core.Vec3 // Color attenuation applied to the scattered radiance
	Scattered   core.Ray  // The outgoing ray
}

// HitRecord contains information about a ray-object intersection. It is
// produced per intersection test and owned by the caller; nothing retains it.
type HitRecord struct {
	Point     core.Vec3 // Point of intersection
	Normal    core.Vec3 // Unit surface normal, always facing the incoming ray
	T         float64   // Parameter t along the ray
	FrontFace bool      // Whether the ray hit the front face
	Material  Material  // Material of the hit object
}

// SetFaceNormal orients the stored normal against the incoming ray and
// records which face was hit. Materials rely on this convention: the normal
// they see always opposes the incoming ray direction.
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}
