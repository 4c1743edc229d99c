package core

import (
	"math"
	"testing"
)

func TestReflectPreservesLength(t *testing.T) {
	tests := []struct {
		name string
		v    Vec3
		n    Vec3
	}{
		{"45 degrees off ground", NewVec3(1, -1, 0), NewVec3(0, 1, 0)},
		{"oblique", NewVec3(3, -2, 1), NewVec3(0, 1, 0)},
		{"tilted normal", NewVec3(1, -2, 0.5), NewVec3(1, 1, 1).Normalize()},
		{"head on", NewVec3(0, 0, -5), NewVec3(0, 0, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reflected := Reflect(tt.v, tt.n)
			if math.Abs(reflected.Length()-tt.v.Length()) > 1e-12 {
				t.Errorf("reflection changed length: %v -> %v", tt.v.Length(), reflected.Length())
			}
		})
	}
}

func TestReflectKnownValue(t *testing.T) {
	// A 45-degree ray bouncing off the ground flips its vertical component
	reflected := Reflect(NewVec3(1, -1, 0), NewVec3(0, 1, 0))
	expected := NewVec3(1, 1, 0)

	if reflected.Subtract(expected).Length() > 1e-12 {
		t.Errorf("expected %v, got %v", expected, reflected)
	}
}

func TestRefractMatchedIndices(t *testing.T) {
	// With an index ratio of 1 at normal incidence the ray passes straight through
	uv := NewVec3(0, 0, -1)
	n := NewVec3(0, 0, 1)

	refracted := Refract(uv, n, 1.0)
	if refracted.Subtract(uv).Length() > 1e-12 {
		t.Errorf("expected unchanged direction %v, got %v", uv, refracted)
	}
}

func TestRefractBendsTowardNormal(t *testing.T) {
	// Entering a denser medium (ratio < 1) the ray bends toward the normal,
	// so the angle from -n shrinks
	uv := NewVec3(1, -1, 0).Normalize()
	n := NewVec3(0, 1, 0)

	refracted := Refract(uv, n, 1.0/1.5).Normalize()

	cosBefore := uv.Dot(n.Negate())
	cosAfter := refracted.Dot(n.Negate())
	if cosAfter <= cosBefore {
		t.Errorf("expected refracted ray closer to normal: cos before %v, after %v", cosBefore, cosAfter)
	}
}

func TestNormalizeZeroVector(t *testing.T) {
	zero := Vec3{}
	if zero.Normalize() != zero {
		t.Errorf("zero vector should normalize to zero, got %v", zero.Normalize())
	}
}

func TestNormalizeUnitLength(t *testing.T) {
	v := NewVec3(3, -4, 12)
	if math.Abs(v.Normalize().Length()-1.0) > 1e-12 {
		t.Errorf("normalized length should be 1, got %v", v.Normalize().Length())
	}
}

func TestCrossOrthogonality(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(-2, 0.5, 4)
	c := a.Cross(b)

	if math.Abs(c.Dot(a)) > 1e-12 || math.Abs(c.Dot(b)) > 1e-12 {
		t.Errorf("cross product not orthogonal to inputs: %v", c)
	}
}

func TestClamp(t *testing.T) {
	v := NewVec3(-0.5, 0.5, 1.5).Clamp(0, 1)
	expected := NewVec3(0, 0.5, 1)
	if v != expected {
		t.Errorf("expected %v, got %v", expected, v)
	}
}

func TestLuminance(t *testing.T) {
	if got := NewVec3(1, 1, 1).Luminance(); math.Abs(got-1.0) > 1e-12 {
		t.Errorf("white should have luminance 1, got %v", got)
	}
	green := NewVec3(0, 1, 0).Luminance()
	blue := NewVec3(0, 0, 1).Luminance()
	if green <= blue {
		t.Errorf("green should be perceptually brighter than blue: %v vs %v", green, blue)
	}
}

func TestGammaCorrect(t *testing.T) {
	v := NewVec3(0.25, 1.0, 0.0).GammaCorrect(2.0)
	expected := NewVec3(0.5, 1.0, 0.0)
	if v.Subtract(expected).Length() > 1e-12 {
		t.Errorf("expected %v, got %v", expected, v)
	}
}
