package material

import (
	"math"

	"github.com/kestrelrender/pathtracer/pkg/core"
)

// ColoredDielectric is glass that absorbs light along its internal path via
// Beer-Lambert attenuation: exp(-color * absorption * distance), applied
// when the ray exits the medium. The distance traveled is the length of
// the incoming ray segment that ended at this hit
// (hit.T * rayIn.Direction.Length()), not the bare parametric t, since
// rays in this core don't carry unit-length directions.
type ColoredDielectric struct {
	nonEmitter
	RefractiveIndex float64
	Absorption      float64
	Color           core.Vec3
}

func NewColoredDielectric(refractiveIndex, absorption float64, color core.Vec3) *ColoredDielectric {
	return &ColoredDielectric{RefractiveIndex: refractiveIndex, Absorption: absorption, Color: color}
}

func (d *ColoredDielectric) Scatter(rayIn core.Ray, hit *HitRecord, sampler *core.Sampler) (ScatterResult, bool) {
	inner := Dielectric{RefractiveIndex: d.RefractiveIndex}
	direction := inner.scatterDirection(rayIn, hit, sampler)

	attenuation := core.NewVec3(1, 1, 1)
	if !hit.FrontFace {
		pathLength := hit.T * rayIn.Direction.Length()
		attenuation = core.NewVec3(
			math.Exp(-d.Color.X*d.Absorption*pathLength),
			math.Exp(-d.Color.Y*d.Absorption*pathLength),
			math.Exp(-d.Color.Z*d.Absorption*pathLength),
		)
	}

	return ScatterResult{
		Kind:        Specular,
		Attenuation: attenuation,
		SpecularRay: core.NewRay(hit.P, direction),
	}, true
}
