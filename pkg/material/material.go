// Package material implements the surface BRDFs: how a ray scatters off a
// hit point, how much light it carries away, and (for emitters) how much
// light it adds on its own. Scattering returns one of three explicit
// result shapes so the caller's bounce loop knows exactly how to fold the
// result into its running throughput without per-material special casing.
package material

import (
	"github.com/kestrelrender/pathtracer/pkg/core"
	"github.com/kestrelrender/pathtracer/pkg/pdf"
)

// HitRecord describes the surface point a ray struck.
type HitRecord struct {
	P         core.Vec3
	Normal    core.Vec3
	T         float64
	U, V      float64
	FrontFace bool
	Material  Material
}

// SetFaceNormal orients Normal against the incoming ray and records which
// side of the surface it struck.
func (h *HitRecord) SetFaceNormal(rayIn core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = rayIn.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// ScatterKind distinguishes the three shapes a scattering event can take.
type ScatterKind int

const (
	// Specular is a deterministic bounce (mirror, glass): no PDF, no MIS,
	// attenuation applies directly to the traced ray.
	Specular ScatterKind = iota
	// Scatter is importance-sampled from a PDF whose cosine-weighted
	// integral already cancels into Attenuation (e.g. Lambertian, where
	// albedo/pi * cos / (cos/pi) == albedo). The caller reweights by
	// PDF.Value(omega)/mixture.Value(omega) to correct for sampling from
	// the combined light/BRDF mixture instead of PDF directly.
	Scatter
	// SpecularDiffuse is importance-sampled from a PDF like Scatter, but
	// the BRDF is not analytically cancelled (it bakes in its own cosine
	// term), so the caller must evaluate EvalBRDF(omega) instead of
	// multiplying by cos(theta).
	SpecularDiffuse
)

// ScatterResult reports how a ray scattered off a surface. Which fields
// are meaningful depends on Kind.
type ScatterResult struct {
	Kind ScatterKind

	// Attenuation is valid for Specular and Scatter.
	Attenuation core.Vec3
	// SpecularRay is valid for Specular only.
	SpecularRay core.Ray

	// PDF is the material's own sampling density, valid for Scatter and
	// SpecularDiffuse.
	PDF pdf.PDF
	// EvalBRDF evaluates the full BRDF (including its cosine term) for a
	// candidate outgoing direction, valid for SpecularDiffuse only.
	EvalBRDF func(omega core.Vec3) core.Vec3
}

// Material scatters incoming rays and, for emitters, radiates light of
// its own.
type Material interface {
	Scatter(rayIn core.Ray, hit *HitRecord, sampler *core.Sampler) (ScatterResult, bool)
	Emit(u, v float64, p core.Vec3, frontFace bool) core.Vec3
}

// nonEmitter is embedded by materials that never emit light.
type nonEmitter struct{}

func (nonEmitter) Emit(u, v float64, p core.Vec3, frontFace bool) core.Vec3 { return core.Vec3{} }
