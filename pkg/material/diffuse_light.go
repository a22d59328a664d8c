package material

import (
	"github.com/kestrelrender/pathtracer/pkg/core"
	"github.com/kestrelrender/pathtracer/pkg/texture"
)

// DiffuseLight emits Emission and scatters nothing. By default it only
// emits from its front face (the side the surface normal points toward);
// TwoSided lights (used for HDRI-textured light panels) emit from both.
type DiffuseLight struct {
	Emission texture.Texture
	TwoSided bool
}

func NewDiffuseLight(emission texture.Texture) *DiffuseLight {
	return &DiffuseLight{Emission: emission}
}

func (l *DiffuseLight) Scatter(rayIn core.Ray, hit *HitRecord, sampler *core.Sampler) (ScatterResult, bool) {
	return ScatterResult{}, false
}

func (l *DiffuseLight) Emit(u, v float64, p core.Vec3, frontFace bool) core.Vec3 {
	if !frontFace && !l.TwoSided {
		return core.Vec3{}
	}
	return l.Emission.Value(u, v, p)
}
