package geometry

import (
	"math"

	"github.com/kestrelrender/pathtracer/pkg/core"
	"github.com/kestrelrender/pathtracer/pkg/material"
)

const rectThickness = 0.0001

// RectXY is an axis-aligned rectangle in the plane z=K. Its outward normal
// is fixed at construction: +Z, or -Z when flipNormal is set. The stored
// normal decides which side counts as the front face, which is what makes
// one-sided emitters (a ceiling light facing down) possible.
type RectXY struct {
	X0, X1, Y0, Y1, K float64
	Normal            core.Vec3
	Material          material.Material
}

func NewRectXY(x0, x1, y0, y1, k float64, flipNormal bool, mat material.Material) *RectXY {
	normal := core.NewVec3(0, 0, 1)
	if flipNormal {
		normal = normal.Negate()
	}
	return &RectXY{X0: x0, X1: x1, Y0: y0, Y1: y1, K: k, Normal: normal, Material: mat}
}

func (r *RectXY) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	if ray.Direction.Z == 0 {
		return nil, false
	}
	t := (r.K - ray.Origin.Z) / ray.Direction.Z
	if t < tMin || t > tMax {
		return nil, false
	}
	x := ray.Origin.X + t*ray.Direction.X
	y := ray.Origin.Y + t*ray.Direction.Y
	if x < r.X0 || x > r.X1 || y < r.Y0 || y > r.Y1 {
		return nil, false
	}
	hit := &material.HitRecord{
		T: t, P: ray.At(t), Material: r.Material,
		U: (x - r.X0) / (r.X1 - r.X0), V: (y - r.Y0) / (r.Y1 - r.Y0),
	}
	hit.SetFaceNormal(ray, r.Normal)
	return hit, true
}

func (r *RectXY) BoundingBox() core.AABB {
	return core.NewAABB(
		core.NewVec3(r.X0, r.Y0, r.K-rectThickness),
		core.NewVec3(r.X1, r.Y1, r.K+rectThickness),
	)
}

func (r *RectXY) area() float64 { return (r.X1 - r.X0) * (r.Y1 - r.Y0) }

func (r *RectXY) PDFValue(origin, omega core.Vec3) float64 {
	hit, ok := r.Hit(core.NewRay(origin, omega), 0.001, math.Inf(1))
	if !ok {
		return 0
	}
	distanceSquared := hit.T * hit.T * omega.LengthSquared()
	cosine := math.Abs(omega.Normalize().Dot(hit.Normal))
	if cosine < 1e-8 {
		return 0
	}
	return distanceSquared / (cosine * r.area())
}

func (r *RectXY) Random(origin core.Vec3, sampler *core.Sampler) core.Vec3 {
	u := sampler.Get2D()
	p := core.NewVec3(r.X0+u.X*(r.X1-r.X0), r.Y0+u.Y*(r.Y1-r.Y0), r.K)
	return p.Subtract(origin)
}

// RectXZ is an axis-aligned rectangle in the plane y=K, normal +Y (or -Y
// when flipped at construction).
type RectXZ struct {
	X0, X1, Z0, Z1, K float64
	Normal            core.Vec3
	Material          material.Material
}

func NewRectXZ(x0, x1, z0, z1, k float64, flipNormal bool, mat material.Material) *RectXZ {
	normal := core.NewVec3(0, 1, 0)
	if flipNormal {
		normal = normal.Negate()
	}
	return &RectXZ{X0: x0, X1: x1, Z0: z0, Z1: z1, K: k, Normal: normal, Material: mat}
}

func (r *RectXZ) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	if ray.Direction.Y == 0 {
		return nil, false
	}
	t := (r.K - ray.Origin.Y) / ray.Direction.Y
	if t < tMin || t > tMax {
		return nil, false
	}
	x := ray.Origin.X + t*ray.Direction.X
	z := ray.Origin.Z + t*ray.Direction.Z
	if x < r.X0 || x > r.X1 || z < r.Z0 || z > r.Z1 {
		return nil, false
	}
	hit := &material.HitRecord{
		T: t, P: ray.At(t), Material: r.Material,
		U: (x - r.X0) / (r.X1 - r.X0), V: (z - r.Z0) / (r.Z1 - r.Z0),
	}
	hit.SetFaceNormal(ray, r.Normal)
	return hit, true
}

func (r *RectXZ) BoundingBox() core.AABB {
	return core.NewAABB(
		core.NewVec3(r.X0, r.K-rectThickness, r.Z0),
		core.NewVec3(r.X1, r.K+rectThickness, r.Z1),
	)
}

func (r *RectXZ) area() float64 { return (r.X1 - r.X0) * (r.Z1 - r.Z0) }

func (r *RectXZ) PDFValue(origin, omega core.Vec3) float64 {
	hit, ok := r.Hit(core.NewRay(origin, omega), 0.001, math.Inf(1))
	if !ok {
		return 0
	}
	distanceSquared := hit.T * hit.T * omega.LengthSquared()
	cosine := math.Abs(omega.Normalize().Dot(hit.Normal))
	if cosine < 1e-8 {
		return 0
	}
	return distanceSquared / (cosine * r.area())
}

func (r *RectXZ) Random(origin core.Vec3, sampler *core.Sampler) core.Vec3 {
	u := sampler.Get2D()
	p := core.NewVec3(r.X0+u.X*(r.X1-r.X0), r.K, r.Z0+u.Y*(r.Z1-r.Z0))
	return p.Subtract(origin)
}

// RectYZ is an axis-aligned rectangle in the plane x=K, normal +X (or -X
// when flipped at construction).
type RectYZ struct {
	Y0, Y1, Z0, Z1, K float64
	Normal            core.Vec3
	Material          material.Material
}

func NewRectYZ(y0, y1, z0, z1, k float64, flipNormal bool, mat material.Material) *RectYZ {
	normal := core.NewVec3(1, 0, 0)
	if flipNormal {
		normal = normal.Negate()
	}
	return &RectYZ{Y0: y0, Y1: y1, Z0: z0, Z1: z1, K: k, Normal: normal, Material: mat}
}

func (r *RectYZ) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	if ray.Direction.X == 0 {
		return nil, false
	}
	t := (r.K - ray.Origin.X) / ray.Direction.X
	if t < tMin || t > tMax {
		return nil, false
	}
	y := ray.Origin.Y + t*ray.Direction.Y
	z := ray.Origin.Z + t*ray.Direction.Z
	if y < r.Y0 || y > r.Y1 || z < r.Z0 || z > r.Z1 {
		return nil, false
	}
	hit := &material.HitRecord{
		T: t, P: ray.At(t), Material: r.Material,
		U: (y - r.Y0) / (r.Y1 - r.Y0), V: (z - r.Z0) / (r.Z1 - r.Z0),
	}
	hit.SetFaceNormal(ray, r.Normal)
	return hit, true
}

func (r *RectYZ) BoundingBox() core.AABB {
	return core.NewAABB(
		core.NewVec3(r.K-rectThickness, r.Y0, r.Z0),
		core.NewVec3(r.K+rectThickness, r.Y1, r.Z1),
	)
}

func (r *RectYZ) area() float64 { return (r.Y1 - r.Y0) * (r.Z1 - r.Z0) }

func (r *RectYZ) PDFValue(origin, omega core.Vec3) float64 {
	hit, ok := r.Hit(core.NewRay(origin, omega), 0.001, math.Inf(1))
	if !ok {
		return 0
	}
	distanceSquared := hit.T * hit.T * omega.LengthSquared()
	cosine := math.Abs(omega.Normalize().Dot(hit.Normal))
	if cosine < 1e-8 {
		return 0
	}
	return distanceSquared / (cosine * r.area())
}

func (r *RectYZ) Random(origin core.Vec3, sampler *core.Sampler) core.Vec3 {
	u := sampler.Get2D()
	p := core.NewVec3(r.K, r.Y0+u.X*(r.Y1-r.Y0), r.Z0+u.Y*(r.Z1-r.Z0))
	return p.Subtract(origin)
}
