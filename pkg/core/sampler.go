package core

import (
	"math"
	"math/rand"
)

// Sampler is the per-worker source of random numbers. Each render goroutine
// owns exactly one Sampler (wrapping its own *rand.Rand) and reuses it across
// every ray it traces, so no shared mutable RNG state crosses goroutines.
type Sampler struct {
	rng *rand.Rand
}

// NewSampler wraps an existing *rand.Rand. Passing distinct sources per
// goroutine is the caller's responsibility (see tracer.World.Draw).
func NewSampler(rng *rand.Rand) *Sampler { return &Sampler{rng: rng} }

func (s *Sampler) Get1D() float64   { return s.rng.Float64() }
func (s *Sampler) Get2D() Vec2      { return Vec2{X: s.rng.Float64(), Y: s.rng.Float64()} }
func (s *Sampler) Rand() *rand.Rand { return s.rng }

// RandomInUnitDisk samples uniformly within the unit disk (used by the
// thin-lens camera for depth-of-field).
func (s *Sampler) RandomInUnitDisk() Vec3 {
	for {
		p := Vec3{X: 2*s.rng.Float64() - 1, Y: 2*s.rng.Float64() - 1}
		if p.LengthSquared() < 1 {
			return p
		}
	}
}

// RandomInUnitSphere samples uniformly within the unit ball (used by
// Metal's fuzz perturbation).
func (s *Sampler) RandomInUnitSphere() Vec3 {
	for {
		p := Vec3{X: 2*s.rng.Float64() - 1, Y: 2*s.rng.Float64() - 1, Z: 2*s.rng.Float64() - 1}
		if p.LengthSquared() < 1 {
			return p
		}
	}
}

// SampleCosineHemisphere draws a direction from the cosine-weighted
// hemisphere around normal n, with pdf(omega) = cos(theta)/pi.
func SampleCosineHemisphere(n Vec3, u Vec2) Vec3 {
	r := math.Sqrt(u.X)
	theta := 2 * math.Pi * u.Y
	x := r * math.Cos(theta)
	y := r * math.Sin(theta)
	z := math.Sqrt(math.Max(0, 1-u.X))
	onb := NewONBFromW(n)
	return onb.LocalXYZ(x, y, z)
}

// SampleUniformSphere draws a direction uniformly over the full sphere,
// with pdf(omega) = 1/(4*pi) everywhere.
func SampleUniformSphere(u Vec2) Vec3 {
	z := 1 - 2*u.X
	r := math.Sqrt(math.Max(0, 1-z*z))
	phi := 2 * math.Pi * u.Y
	return Vec3{X: r * math.Cos(phi), Y: r * math.Sin(phi), Z: z}
}
