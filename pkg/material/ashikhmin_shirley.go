package material

import (
	"math"

	"github.com/kestrelrender/pathtracer/pkg/core"
	"github.com/kestrelrender/pathtracer/pkg/pdf"
)

// AshikhminShirley is the anisotropic Ashikhmin-Shirley BRDF: a diffuse
// base RDiffuse coupled with Fresnel so it vanishes where the specular
// reflectance RSpecular takes over, plus an anisotropic specular lobe
// controlled by two independent exponents Nu/Nv along an arbitrary tangent
// frame. KSpecular weights the sampling mixture (the specular branch is
// chosen with probability sqrt(KSpecular)). Like BlinnPhong, it scatters
// as SpecularDiffuse since the BRDF bakes in its own cosine term.
type AshikhminShirley struct {
	nonEmitter
	RSpecular core.Vec3
	RDiffuse  core.Vec3
	KSpecular float64 // in [0,1]
	Nu, Nv    float64 // > 0
}

func NewAshikhminShirley(rSpecular, rDiffuse core.Vec3, kSpecular, nu, nv float64) *AshikhminShirley {
	return &AshikhminShirley{RSpecular: rSpecular, RDiffuse: rDiffuse, KSpecular: kSpecular, Nu: nu, Nv: nv}
}

func schlickVec(rs core.Vec3, cosine float64) core.Vec3 {
	f := math.Pow(1-cosine, 5)
	return core.NewVec3(
		rs.X+(1-rs.X)*f,
		rs.Y+(1-rs.Y)*f,
		rs.Z+(1-rs.Z)*f,
	)
}

// evalBRDF returns the outgoing radiance multiplier for direction omega,
// cosine term included. The specular term is
//
//	sqrt((nu+1)(nv+1))/(8*pi) * (h.n)^e / ((h.v)*(n.v + n.l - n.v*n.l)) * F(h.v)
//
// with e = (nu*(h.u)^2 + nv*(h.vb)^2) / (1 - (h.n)^2) over the tangent
// frame (u, vb), and F the Schlick interpolation of RSpecular. The diffuse
// term is the coupling-preserving
//
//	28/(23*pi) * RDiffuse * (1-RSpecular) * (1-(1-n.v/2)^5) * (1-(1-n.l/2)^5)
//
// Evaluation is zero below the horizon (l.n < 0 or v.n < 0).
func (a *AshikhminShirley) evalBRDF(frame core.ONB, incoming, normal, omega core.Vec3) core.Vec3 {
	outgoing := omega.Normalize()
	cosL := outgoing.Dot(normal)
	if cosL <= 0 {
		return core.Vec3{}
	}
	view := incoming.Negate()
	cosV := view.Dot(normal)
	if cosV <= 0 {
		return core.Vec3{}
	}

	oneMinusRS := core.NewVec3(1-a.RSpecular.X, 1-a.RSpecular.Y, 1-a.RSpecular.Z)
	diffuseTerm := (28.0 / (23.0 * math.Pi)) *
		(1 - math.Pow(1-cosV/2, 5)) * (1 - math.Pow(1-cosL/2, 5))
	diffuse := a.RDiffuse.MultiplyVec(oneMinusRS).Multiply(diffuseTerm)

	h := view.Add(outgoing).Normalize()
	cosH := h.Dot(normal)
	if cosH <= 0 {
		return diffuse.Multiply(cosL)
	}
	hu := h.Dot(frame.U)
	hv := h.Dot(frame.V)
	exponent := (a.Nu + a.Nv) / 2
	if denom := 1 - cosH*cosH; denom > 1e-12 {
		exponent = (a.Nu*hu*hu + a.Nv*hv*hv) / denom
	}

	hDotV := math.Max(h.Dot(view), 1e-6)
	denom := hDotV * (cosV + cosL - cosV*cosL)
	norm := math.Sqrt((a.Nu+1)*(a.Nv+1)) / (8 * math.Pi)
	specular := schlickVec(a.RSpecular, hDotV).Multiply(norm * math.Pow(cosH, exponent) / denom)

	return diffuse.Add(specular).Multiply(cosL)
}

func (a *AshikhminShirley) Scatter(rayIn core.Ray, hit *HitRecord, sampler *core.Sampler) (ScatterResult, bool) {
	incoming := rayIn.Direction.Normalize()
	normal := hit.Normal
	frame := core.NewONBFromW(normal)

	specLobe := pdf.NewAshikhminShirleyLobe(normal, incoming, a.Nu, a.Nv)
	cosineLobe := pdf.NewCosine(normal)
	mixture := pdf.NewMixture(specLobe, cosineLobe, math.Sqrt(a.KSpecular))

	return ScatterResult{
		Kind: SpecularDiffuse,
		PDF:  mixture,
		EvalBRDF: func(omega core.Vec3) core.Vec3 {
			return a.evalBRDF(frame, incoming, normal, omega)
		},
	}, true
}
