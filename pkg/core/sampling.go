package core

import "math/rand"

// Sampling helpers for the scattering and camera models. Every function
// takes the caller's generator explicitly; workers each own one generator
// and nothing here holds shared mutable state.

// RandomInUnitSphere generates a random point inside the unit sphere
// by rejection sampling
func RandomInUnitSphere(random *rand.Rand) Vec3 {
	for {
		p := NewVec3(
			2*random.Float64()-1,
			2*random.Float64()-1,
			2*random.Float64()-1,
		)
		if p.LengthSquared() < 1.0 {
			return p
		}
	}
}

// RandomUnitVector generates a uniformly distributed direction on the
// unit sphere
func RandomUnitVector(random *rand.Rand) Vec3 {
	return RandomInUnitSphere(random).Normalize()
}

// RandomInUnitDisk generates a random point in the unit disk on the
// z=0 plane (used for lens aperture jitter)
func RandomInUnitDisk(random *rand.Rand) Vec3 {
	for {
		p := NewVec3(2*random.Float64()-1, 2*random.Float64()-1, 0)
		if p.LengthSquared() < 1.0 {
			return p
		}
	}
}
