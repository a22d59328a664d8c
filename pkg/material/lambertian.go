package material

import (
	"github.com/kestrelrender/pathtracer/pkg/core"
	"github.com/kestrelrender/pathtracer/pkg/pdf"
	"github.com/kestrelrender/pathtracer/pkg/texture"
)

// Lambertian is an ideal diffuse surface. Any texture.Texture works as its
// albedo, a flat color (texture.Solid) included, so no separate
// "textured" variant is needed.
type Lambertian struct {
	nonEmitter
	Albedo texture.Texture
}

func NewLambertian(albedo texture.Texture) *Lambertian { return &Lambertian{Albedo: albedo} }

func (l *Lambertian) Scatter(rayIn core.Ray, hit *HitRecord, sampler *core.Sampler) (ScatterResult, bool) {
	return ScatterResult{
		Kind:        Scatter,
		Attenuation: l.Albedo.Value(hit.U, hit.V, hit.P),
		PDF:         pdf.NewCosine(hit.Normal),
	}, true
}
