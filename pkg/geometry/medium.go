package geometry

import (
	"math"
	"math/rand"

	"github.com/kestrelrender/pathtracer/pkg/core"
	"github.com/kestrelrender/pathtracer/pkg/material"
	"github.com/kestrelrender/pathtracer/pkg/texture"
)

// ConstantMedium wraps a boundary shape with a homogeneous, isotropic
// participating medium. A ray that enters the boundary has some chance of
// scattering at a random depth inside it, sampled from an exponential
// free-flight distribution; Density controls the mean free path
// (1/Density). Only single-scatter isotropic media are supported: no
// multiple scattering, no heterogeneous density field.
//
// Hit samples its free-flight distance from the package-level math/rand
// source (safe for concurrent use) rather than a per-worker Sampler: the
// Hittable interface's Hit only threads a ray and t-bounds, not a sampler.
// Every other random draw in this core happens in Scatter/PDF.Sample,
// which do take one; widening Hittable across every primitive for the
// sake of one shape isn't worth it.
type ConstantMedium struct {
	Boundary      Hittable
	NegInvDensity float64
	PhaseFunction material.Material
}

// NewConstantMedium builds a medium of the given density (particles per
// unit distance) using an Isotropic phase function of the given color.
func NewConstantMedium(boundary Hittable, density float64, phaseColor core.Vec3) *ConstantMedium {
	return &ConstantMedium{
		Boundary:      boundary,
		NegInvDensity: -1.0 / density,
		PhaseFunction: material.NewIsotropic(texture.NewSolid(phaseColor)),
	}
}

func (c *ConstantMedium) Hit(r core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	hit1, ok := c.Boundary.Hit(r, math.Inf(-1), math.Inf(1))
	if !ok {
		return nil, false
	}
	hit2, ok := c.Boundary.Hit(r, hit1.T+0.0001, math.Inf(1))
	if !ok {
		return nil, false
	}

	t1, t2 := hit1.T, hit2.T
	if t1 < tMin {
		t1 = tMin
	}
	if t2 > tMax {
		t2 = tMax
	}
	if t1 >= t2 {
		return nil, false
	}
	if t1 < 0 {
		t1 = 0
	}

	rayLength := r.Direction.Length()
	distanceInsideBoundary := (t2 - t1) * rayLength
	hitDistance := c.NegInvDensity * math.Log(rand.Float64())
	if hitDistance > distanceInsideBoundary {
		return nil, false
	}

	t := t1 + hitDistance/rayLength
	hit := &material.HitRecord{
		T:         t,
		P:         r.At(t),
		Normal:    core.NewVec3(1, 0, 0), // arbitrary: isotropic scattering ignores it
		FrontFace: true,
		Material:  c.PhaseFunction,
	}
	return hit, true
}

func (c *ConstantMedium) BoundingBox() core.AABB { return c.Boundary.BoundingBox() }
