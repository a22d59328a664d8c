package pdf

import (
	"math"

	"github.com/kestrelrender/pathtracer/pkg/core"
)

// BlinnPhongLobe samples a microfacet half-vector from a cosine-to-the-
// exponent lobe around the ideal mirror direction, then reflects the fixed
// incoming direction through it. Half-vectors that land under the surface
// are rejected and resampled; the rejection loop is the source of a small
// grazing-angle bias between this PDF and the material's evaluated BRDF,
// traded for simplicity over an unbounded analytic correction.
type BlinnPhongLobe struct {
	Normal   core.Vec3
	Incoming core.Vec3 // ray arriving at the surface (points toward the surface)
	Exponent float64
	mirror   core.Vec3
	frame    core.ONB
}

func NewBlinnPhongLobe(normal, incoming core.Vec3, exponent float64) *BlinnPhongLobe {
	unit := incoming.Normalize()
	mirror := unit.Reflect(normal).Normalize()
	return &BlinnPhongLobe{
		Normal:   normal,
		Incoming: unit,
		Exponent: exponent,
		mirror:   mirror,
		frame:    core.NewONBFromW(mirror),
	}
}

func (b *BlinnPhongLobe) sampleHalfVector(sampler *core.Sampler) core.Vec3 {
	for i := 0; i < 64; i++ {
		u := sampler.Get2D()
		cosTheta := math.Pow(u.X, 1.0/(b.Exponent+1))
		sinTheta := math.Sqrt(math.Max(0, 1-cosTheta*cosTheta))
		phi := 2 * math.Pi * u.Y
		h := b.frame.LocalXYZ(sinTheta*math.Cos(phi), sinTheta*math.Sin(phi), cosTheta)
		if h.Dot(b.Normal) > 0 {
			return h
		}
	}
	return b.mirror
}

func (b *BlinnPhongLobe) halfVectorPDF(h core.Vec3) float64 {
	cosTheta := h.Dot(b.mirror)
	if cosTheta <= 0 || h.Dot(b.Normal) <= 0 {
		return 0
	}
	return (b.Exponent + 1) / (2 * math.Pi) * math.Pow(cosTheta, b.Exponent)
}

// Value returns the density of scattering direction omega, converting the
// half-vector density to the solid-angle measure of the outgoing direction
// via the Jacobian 1/(4|incident . h|).
func (b *BlinnPhongLobe) Value(omega core.Vec3) float64 {
	outgoing := omega.Normalize()
	incident := b.Incoming.Negate()
	h := incident.Add(outgoing).Normalize()
	denom := 4 * math.Abs(incident.Dot(h))
	if denom < 1e-8 {
		return 0
	}
	return b.halfVectorPDF(h) / denom
}

func (b *BlinnPhongLobe) Sample(sampler *core.Sampler) core.Vec3 {
	h := b.sampleHalfVector(sampler)
	incident := b.Incoming.Negate()
	reflected := h.Multiply(2 * incident.Dot(h)).Subtract(incident)
	return reflected.Normalize()
}
