package material

import "github.com/kestrelrender/pathtracer/pkg/core"

// Blend probabilistically selects between two arbitrary nested materials
// per scatter event, weighted by Chance (probability of A). Unlike a
// blend of two leaf BRDFs, A and B can themselves be Blends, Metals,
// dielectrics or emitters; emission is a weighted sum of both children's
// emission rather than a random pick, since emitted radiance isn't a
// Monte-Carlo estimator the way scattering is.
type Blend struct {
	A, B   Material
	Chance float64
}

func NewBlend(a, b Material, chance float64) *Blend {
	return &Blend{A: a, B: b, Chance: chance}
}

func (b *Blend) Scatter(rayIn core.Ray, hit *HitRecord, sampler *core.Sampler) (ScatterResult, bool) {
	if sampler.Get1D() < b.Chance {
		return b.A.Scatter(rayIn, hit, sampler)
	}
	return b.B.Scatter(rayIn, hit, sampler)
}

func (b *Blend) Emit(u, v float64, p core.Vec3, frontFace bool) core.Vec3 {
	a := b.A.Emit(u, v, p, frontFace).Multiply(b.Chance)
	c := b.B.Emit(u, v, p, frontFace).Multiply(1 - b.Chance)
	return a.Add(c)
}
