package material

import (
	"math"

	"github.com/kestrelrender/pathtracer/pkg/core"
)

// Metal is a fuzzed mirror: the reflected ray is perturbed by Fuzz times a
// random point in the unit sphere. Rays that end up pointing into the
// surface after fuzzing are absorbed. Attenuation is a Schlick-fresnel
// interpolation toward white at grazing incidence, so even a tinted metal
// reflects the full spectrum near the silhouette.
type Metal struct {
	nonEmitter
	Albedo core.Vec3
	Fuzz   float64
}

func NewMetal(albedo core.Vec3, fuzz float64) *Metal {
	if fuzz > 1 {
		fuzz = 1
	}
	return &Metal{Albedo: albedo, Fuzz: fuzz}
}

func (m *Metal) Scatter(rayIn core.Ray, hit *HitRecord, sampler *core.Sampler) (ScatterResult, bool) {
	unitIn := rayIn.Direction.Normalize()
	reflected := unitIn.Reflect(hit.Normal)
	reflected = reflected.Add(sampler.RandomInUnitSphere().Multiply(m.Fuzz)).Normalize()
	if reflected.Dot(hit.Normal) <= 0 {
		return ScatterResult{}, false
	}
	cosTheta := math.Max(0, math.Min(1, unitIn.Negate().Dot(hit.Normal)))
	return ScatterResult{
		Kind:        Specular,
		Attenuation: schlickVec(m.Albedo, cosTheta),
		SpecularRay: core.NewRay(hit.P, reflected),
	}, true
}
