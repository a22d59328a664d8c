package geometry

import (
	"math"

	"github.com/kestrelrender/pathtracer/pkg/core"
	"github.com/kestrelrender/pathtracer/pkg/material"
	"github.com/kestrelrender/pathtracer/pkg/pdf"
)

type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material material.Material
}

func NewSphere(center core.Vec3, radius float64, mat material.Material) *Sphere {
	return &Sphere{Center: center, Radius: radius, Material: mat}
}

func sphereUV(p core.Vec3) (u, v float64) {
	theta := math.Acos(-p.Y)
	phi := math.Atan2(-p.Z, p.X) + math.Pi
	return phi / (2 * math.Pi), theta / math.Pi
}

func (s *Sphere) Hit(r core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	oc := r.Origin.Subtract(s.Center)
	a := r.Direction.LengthSquared()
	halfB := oc.Dot(r.Direction)
	c := oc.LengthSquared() - s.Radius*s.Radius
	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return nil, false
	}
	sqrtD := math.Sqrt(discriminant)

	root := (-halfB - sqrtD) / a
	if root < tMin || root > tMax {
		root = (-halfB + sqrtD) / a
		if root < tMin || root > tMax {
			return nil, false
		}
	}

	hit := &material.HitRecord{T: root, P: r.At(root), Material: s.Material}
	outwardNormal := hit.P.Subtract(s.Center).Divide(s.Radius)
	hit.SetFaceNormal(r, outwardNormal)
	hit.U, hit.V = sphereUV(outwardNormal)
	return hit, true
}

func (s *Sphere) BoundingBox() core.AABB {
	radiusVec := core.NewVec3(s.Radius, s.Radius, s.Radius)
	return core.NewAABB(s.Center.Subtract(radiusVec), s.Center.Add(radiusVec))
}

func (s *Sphere) PDFValue(origin, omega core.Vec3) float64 {
	ray := core.NewRay(origin, omega)
	if _, ok := s.Hit(ray, 0.001, math.Inf(1)); !ok {
		return 0
	}
	distanceSquared := s.Center.Subtract(origin).LengthSquared()
	return pdf.SphereConePDF(distanceSquared, s.Radius)
}

func (s *Sphere) Random(origin core.Vec3, sampler *core.Sampler) core.Vec3 {
	direction := s.Center.Subtract(origin)
	distanceSquared := direction.LengthSquared()
	frame := core.NewONBFromW(direction)
	return frame.Local(randomToSphere(s.Radius, distanceSquared, sampler))
}

// randomToSphere draws a direction uniformly over the solid angle
// subtended by a sphere of the given radius, seen from a point whose
// squared distance to the sphere's center is distanceSquared, in the
// local frame where the sphere's center lies along +Z.
func randomToSphere(radius, distanceSquared float64, sampler *core.Sampler) core.Vec3 {
	u := sampler.Get2D()
	cosThetaMax := math.Sqrt(math.Max(0, 1-radius*radius/distanceSquared))
	z := 1 + u.Y*(cosThetaMax-1)
	phi := 2 * math.Pi * u.X
	sinTheta := math.Sqrt(math.Max(0, 1-z*z))
	return core.NewVec3(math.Cos(phi)*sinTheta, math.Sin(phi)*sinTheta, z)
}
