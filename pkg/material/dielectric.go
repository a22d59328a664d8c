package material

import (
	"math"

	"github.com/kestrelrender/pathtracer/pkg/core"
)

// Dielectric is clear refractive glass: always a deterministic specular
// bounce, randomly choosing reflection vs. refraction per sample weighted
// by Schlick's approximation to the Fresnel reflectance.
type Dielectric struct {
	nonEmitter
	RefractiveIndex float64
}

func NewDielectric(refractiveIndex float64) *Dielectric {
	return &Dielectric{RefractiveIndex: refractiveIndex}
}

func schlickReflectance(cosine, refIdx float64) float64 {
	r0 := (1 - refIdx) / (1 + refIdx)
	r0 *= r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}

func (d *Dielectric) scatterDirection(rayIn core.Ray, hit *HitRecord, sampler *core.Sampler) core.Vec3 {
	etaRatio := d.RefractiveIndex
	if hit.FrontFace {
		etaRatio = 1.0 / d.RefractiveIndex
	}

	unitDirection := rayIn.Direction.Normalize()
	cosTheta := math.Min(unitDirection.Negate().Dot(hit.Normal), 1.0)
	sinTheta := math.Sqrt(math.Max(0, 1-cosTheta*cosTheta))

	cannotRefract := etaRatio*sinTheta > 1.0
	if cannotRefract || schlickReflectance(cosTheta, etaRatio) > sampler.Get1D() {
		return unitDirection.Reflect(hit.Normal)
	}
	return unitDirection.Refract(hit.Normal, etaRatio)
}

func (d *Dielectric) Scatter(rayIn core.Ray, hit *HitRecord, sampler *core.Sampler) (ScatterResult, bool) {
	direction := d.scatterDirection(rayIn, hit, sampler)
	return ScatterResult{
		Kind:        Specular,
		Attenuation: core.NewVec3(1, 1, 1),
		SpecularRay: core.NewRay(hit.P, direction),
	}, true
}
