package material

import (
	"github.com/kestrelrender/pathtracer/pkg/core"
	"github.com/kestrelrender/pathtracer/pkg/pdf"
	"github.com/kestrelrender/pathtracer/pkg/texture"
)

// Isotropic scatters uniformly over the full sphere of directions,
// regardless of the incoming direction or surface normal. Used as the
// phase function of a homogeneous participating medium.
type Isotropic struct {
	nonEmitter
	Albedo texture.Texture
}

func NewIsotropic(albedo texture.Texture) *Isotropic { return &Isotropic{Albedo: albedo} }

func (i *Isotropic) Scatter(rayIn core.Ray, hit *HitRecord, sampler *core.Sampler) (ScatterResult, bool) {
	return ScatterResult{
		Kind:        Scatter,
		Attenuation: i.Albedo.Value(hit.U, hit.V, hit.P),
		PDF:         pdf.NewUniformSphere(),
	}, true
}
