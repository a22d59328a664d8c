package pdf

import (
	"math"

	"github.com/kestrelrender/pathtracer/pkg/core"
)

// AshikhminShirleyLobe samples the anisotropic specular half-vector of the
// Ashikhmin-Shirley BRDF via the standard four-quadrant mapping, then
// reflects the fixed incoming direction through it. Tangent/bitangent come
// from an arbitrary orthonormal frame around the normal; the material has
// no UV-aligned anisotropy axis in this core, so Nu/Nv orient along that
// frame rather than a surface parameterization. As with BlinnPhongLobe,
// this trades a small grazing-angle mismatch against the evaluated BRDF
// for a rejection-free, closed-form sampler.
type AshikhminShirleyLobe struct {
	Normal   core.Vec3
	Incoming core.Vec3
	Nu, Nv   float64
	frame    core.ONB
}

func NewAshikhminShirleyLobe(normal, incoming core.Vec3, nu, nv float64) *AshikhminShirleyLobe {
	return &AshikhminShirleyLobe{
		Normal:   normal,
		Incoming: incoming.Normalize(),
		Nu:       nu,
		Nv:       nv,
		frame:    core.NewONBFromW(normal),
	}
}

// sampleHalfVector implements the Ashikhmin-Shirley quadrant remapping.
func (a *AshikhminShirleyLobe) sampleHalfVector(sampler *core.Sampler) (h core.Vec3, phi, cosTheta float64) {
	u := sampler.Get2D()
	xi1, xi2 := u.X, u.Y

	var quadrantPhi float64
	var sign float64 = 1
	var base float64

	switch {
	case xi1 < 0.25:
		base = 4 * xi1
		quadrantPhi = 0
	case xi1 < 0.5:
		base = 4 * (0.5 - xi1)
		quadrantPhi = math.Pi
		sign = -1
	case xi1 < 0.75:
		base = 4 * (xi1 - 0.5)
		quadrantPhi = math.Pi
	default:
		base = 4 * (1 - xi1)
		quadrantPhi = 2 * math.Pi
		sign = -1
	}

	ratio := math.Sqrt((a.Nu + 1) / (a.Nv + 1))
	phiBase := math.Atan(ratio * math.Tan(math.Pi/2*base))
	phi = quadrantPhi + sign*phiBase

	cosPhi, sinPhi := math.Cos(phi), math.Sin(phi)
	exponent := 1.0 / (a.Nu*cosPhi*cosPhi + a.Nv*sinPhi*sinPhi + 1)
	cosTheta = math.Pow(1-xi2, exponent)
	sinTheta := math.Sqrt(math.Max(0, 1-cosTheta*cosTheta))

	local := core.Vec3{X: sinTheta * cosPhi, Y: sinTheta * sinPhi, Z: cosTheta}
	h = a.frame.Local(local)
	return h, phi, cosTheta
}

func (a *AshikhminShirleyLobe) halfVectorPDF(h core.Vec3) float64 {
	cosThetaH := h.Dot(a.Normal)
	if cosThetaH <= 0 {
		return 0
	}
	local := core.Vec3{
		X: h.Dot(a.frame.U),
		Y: h.Dot(a.frame.V),
		Z: cosThetaH,
	}
	norm := math.Sqrt((a.Nu+1)*(a.Nv+1)) / (2 * math.Pi)
	return norm * math.Pow(cosThetaH, a.bucketExponent(local))
}

// bucketExponent returns nu*cos^2(phi)+nv*sin^2(phi) given an h already
// projected into the tangent frame, without re-deriving phi via atan2.
func (a *AshikhminShirleyLobe) bucketExponent(local core.Vec3) float64 {
	denom := local.X*local.X + local.Y*local.Y
	if denom < 1e-12 {
		return (a.Nu + a.Nv) / 2
	}
	cos2 := local.X * local.X / denom
	sin2 := local.Y * local.Y / denom
	return a.Nu*cos2 + a.Nv*sin2
}

// Value returns the density of scattering direction omega.
func (a *AshikhminShirleyLobe) Value(omega core.Vec3) float64 {
	outgoing := omega.Normalize()
	incident := a.Incoming.Negate()
	h := incident.Add(outgoing).Normalize()
	denom := 4 * math.Abs(outgoing.Dot(h))
	if denom < 1e-8 {
		return 0
	}
	return a.halfVectorPDF(h) / denom
}

func (a *AshikhminShirleyLobe) Sample(sampler *core.Sampler) core.Vec3 {
	h, _, _ := a.sampleHalfVector(sampler)
	incident := a.Incoming.Negate()
	reflected := h.Multiply(2 * incident.Dot(h)).Subtract(incident)
	return reflected.Normalize()
}
