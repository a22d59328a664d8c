package pdf

import (
	"math"

	"github.com/kestrelrender/pathtracer/pkg/core"
)

// Cosine is the cosine-weighted hemisphere PDF around a fixed normal, used
// by Lambertian scattering and the diffuse branch of Blinn-Phong and
// Ashikhmin-Shirley.
type Cosine struct {
	onb core.ONB
}

func NewCosine(normal core.Vec3) *Cosine {
	return &Cosine{onb: core.NewONBFromW(normal)}
}

func (c *Cosine) Value(omega core.Vec3) float64 {
	cosine := omega.Normalize().Dot(c.onb.W)
	if cosine <= 0 {
		return 0
	}
	return cosine / math.Pi
}

func (c *Cosine) Sample(sampler *core.Sampler) core.Vec3 {
	return core.SampleCosineHemisphere(c.onb.W, sampler.Get2D())
}
