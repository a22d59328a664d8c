package pdf

import "github.com/kestrelrender/pathtracer/pkg/core"

// Mixture combines two PDFs P and Q with mixing weight chance: samples are
// drawn from P with probability chance and from Q otherwise, and the
// density of any direction is the matching convex combination. This is the
// one-sample 50/50 mixture used for light/BRDF multiple importance
// sampling: no power-heuristic weighting, just a single blended draw.
type Mixture struct {
	P, Q   PDF
	Chance float64
}

func NewMixture(p, q PDF, chance float64) *Mixture {
	return &Mixture{P: p, Q: q, Chance: chance}
}

func (m *Mixture) Value(omega core.Vec3) float64 {
	return m.Chance*m.P.Value(omega) + (1-m.Chance)*m.Q.Value(omega)
}

func (m *Mixture) Sample(sampler *core.Sampler) core.Vec3 {
	if sampler.Get1D() < m.Chance {
		return m.P.Sample(sampler)
	}
	return m.Q.Sample(sampler)
}
