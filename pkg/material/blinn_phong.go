package material

import (
	"math"

	"github.com/kestrelrender/pathtracer/pkg/core"
	"github.com/kestrelrender/pathtracer/pkg/pdf"
)

// BlinnPhong mixes a Lambertian diffuse lobe with an achromatic Blinn-Phong
// specular highlight, weighted by KSpecular (the probability mass of the
// specular lobe). Because the specular term doesn't analytically cancel
// against a cosine-weighted PDF, it scatters as SpecularDiffuse: the caller
// evaluates the full BRDF (EvalBRDF) rather than multiplying Attenuation by
// cos(theta).
type BlinnPhong struct {
	nonEmitter
	Color     core.Vec3
	KSpecular float64 // in [0,1]
	Exponent  float64 // > 0
}

func NewBlinnPhong(color core.Vec3, kSpecular, exponent float64) *BlinnPhong {
	return &BlinnPhong{Color: color, KSpecular: kSpecular, Exponent: exponent}
}

// evalBRDF returns the outgoing radiance multiplier for scattering
// direction omega, cosine term included:
//
//	(color/pi * (1-ks) + ks * (e+8)/(8*pi) * max(0, h.n)^e) * max(0, l.n)
//
// where h is the half-vector between the view and light directions. The
// specular lobe is white; tinted highlights belong to AshikhminShirley.
func (b *BlinnPhong) evalBRDF(incoming, normal, omega core.Vec3) core.Vec3 {
	cosL := omega.Dot(normal)
	if cosL <= 0 {
		return core.Vec3{}
	}
	diffuse := b.Color.Multiply((1 - b.KSpecular) / math.Pi)

	h := incoming.Negate().Add(omega).Normalize()
	cosH := math.Max(0, h.Dot(normal))
	spec := b.KSpecular * (b.Exponent + 8) / (8 * math.Pi) * math.Pow(cosH, b.Exponent)

	return diffuse.Add(core.NewVec3(spec, spec, spec)).Multiply(cosL)
}

func (b *BlinnPhong) Scatter(rayIn core.Ray, hit *HitRecord, sampler *core.Sampler) (ScatterResult, bool) {
	incoming := rayIn.Direction.Normalize()
	normal := hit.Normal

	specLobe := pdf.NewBlinnPhongLobe(normal, incoming, b.Exponent)
	cosineLobe := pdf.NewCosine(normal)
	mixture := pdf.NewMixture(specLobe, cosineLobe, b.KSpecular)

	return ScatterResult{
		Kind: SpecularDiffuse,
		PDF:  mixture,
		EvalBRDF: func(omega core.Vec3) core.Vec3 {
			return b.evalBRDF(incoming, normal, omega)
		},
	}, true
}
