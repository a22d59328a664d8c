package pdf

import (
	"math"

	"github.com/kestrelrender/pathtracer/pkg/core"
)

// UniformSphere is the isotropic PDF over the full sphere of directions,
// used by the Isotropic (participating-medium) material.
type UniformSphere struct{}

func NewUniformSphere() *UniformSphere { return &UniformSphere{} }

func (UniformSphere) Value(core.Vec3) float64 { return 1.0 / (4.0 * math.Pi) }

func (UniformSphere) Sample(sampler *core.Sampler) core.Vec3 {
	return core.SampleUniformSphere(sampler.Get2D())
}

// SphereConePDF is the solid-angle PDF of sampling a sphere of the given
// radius, seen from a point at the given distance, by sampling the visible
// cap (Archimedes-on-cap). Used by geometry.Sphere.PDFValue.
func SphereConePDF(distanceSquared, radius float64) float64 {
	cosThetaMax := math.Sqrt(math.Max(0, 1-radius*radius/distanceSquared))
	solidAngle := 2 * math.Pi * (1 - cosThetaMax)
	if solidAngle <= 0 {
		return 0
	}
	return 1.0 / solidAngle
}
