// Package pdf implements the probability density functions sampled by the
// integrator: cosine-hemisphere and uniform-sphere PDFs for diffuse and
// isotropic scattering, the specular lobe PDFs for Blinn-Phong and
// Ashikhmin-Shirley, the light-surface PDF averaged over a set of emitters,
// and the PDFMixture that blends a light PDF with a material PDF for
// multiple importance sampling.
package pdf

import "github.com/kestrelrender/pathtracer/pkg/core"

// PDF is sampled by the integrator to pick a scattered/shadow direction and
// to evaluate the density of an arbitrary direction for MIS weighting.
type PDF interface {
	// Value returns the probability density of direction omega (unit vector).
	Value(omega core.Vec3) float64
	// Sample draws a direction according to this density.
	Sample(sampler *core.Sampler) core.Vec3
}

// Emitter is implemented by any scene object usable as a light: it must be
// able to report the density of sampling direction omega from shading point
// origin, and to draw such a direction itself. Geometry (sphere, rect) and
// the environment map sampler both implement this.
type Emitter interface {
	PDFValue(origin, omega core.Vec3) float64
	Random(origin core.Vec3, sampler *core.Sampler) core.Vec3
}
