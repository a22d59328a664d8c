package pdf

import "github.com/kestrelrender/pathtracer/pkg/core"

// LightSet is the PDF over directions formed by uniformly choosing one of a
// fixed set of emitters and sampling it. Value averages every emitter's
// density at the shading point (the light-surface PDF);
// Sample picks one emitter uniformly at random and delegates to it.
type LightSet struct {
	Origin   core.Vec3
	Emitters []Emitter
}

func NewLightSet(origin core.Vec3, emitters []Emitter) *LightSet {
	return &LightSet{Origin: origin, Emitters: emitters}
}

func (l *LightSet) Value(omega core.Vec3) float64 {
	if len(l.Emitters) == 0 {
		return 0
	}
	sum := 0.0
	for _, e := range l.Emitters {
		sum += e.PDFValue(l.Origin, omega)
	}
	return sum / float64(len(l.Emitters))
}

func (l *LightSet) Sample(sampler *core.Sampler) core.Vec3 {
	if len(l.Emitters) == 0 {
		return core.Vec3{X: 1}
	}
	idx := int(sampler.Get1D() * float64(len(l.Emitters)))
	if idx >= len(l.Emitters) {
		idx = len(l.Emitters) - 1
	}
	return l.Emitters[idx].Random(l.Origin, sampler)
}
