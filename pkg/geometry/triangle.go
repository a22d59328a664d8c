package geometry

import (
	"github.com/kestrelrender/pathtracer/pkg/core"
	"github.com/kestrelrender/pathtracer/pkg/material"
)

// Triangle is a single triangle with per-vertex normals and UVs, built by
// the mesh-loading collaborator from an array of positions/normals/UVs and
// a shared material handle.
type Triangle struct {
	P0, P1, P2    core.Vec3
	N0, N1, N2    core.Vec3
	UV0, UV1, UV2 core.Vec2
	Material      material.Material
}

// NewTriangle builds a triangle with explicit per-vertex normals and UVs
// (smooth shading). Flat-shaded triangles pass the same face normal three
// times.
func NewTriangle(p0, p1, p2, n0, n1, n2 core.Vec3, uv0, uv1, uv2 core.Vec2, mat material.Material) *Triangle {
	return &Triangle{
		P0: p0, P1: p1, P2: p2,
		N0: n0, N1: n1, N2: n2,
		UV0: uv0, UV1: uv1, UV2: uv2,
		Material: mat,
	}
}

// NewFlatTriangle builds a triangle whose normal is the geometric face
// normal (counter-clockwise winding, right-hand rule) at all three
// vertices, and UVs fixed at (0,0),(1,0),(0,1).
func NewFlatTriangle(p0, p1, p2 core.Vec3, mat material.Material) *Triangle {
	n := p1.Subtract(p0).Cross(p2.Subtract(p0)).Normalize()
	return NewTriangle(p0, p1, p2, n, n, n,
		core.NewVec2(0, 0), core.NewVec2(1, 0), core.NewVec2(0, 1), mat)
}

// Hit solves the Moller-style 3x3 linear system for the barycentric
// coordinates (beta, gamma) and ray parameter t in one pass, rejecting
// outside the triangle via beta<0 || beta>=1 || gamma<=0 || beta+gamma>=1.
func (tr *Triangle) Hit(r core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	e1 := tr.P1.Subtract(tr.P0)
	e2 := tr.P2.Subtract(tr.P0)
	pvec := r.Direction.Cross(e2)
	det := e1.Dot(pvec)
	if det > -1e-12 && det < 1e-12 {
		return nil, false
	}
	invDet := 1.0 / det

	tvec := r.Origin.Subtract(tr.P0)
	beta := tvec.Dot(pvec) * invDet
	if beta < 0 || beta >= 1 {
		return nil, false
	}

	qvec := tvec.Cross(e1)
	gamma := r.Direction.Dot(qvec) * invDet
	if gamma <= 0 || beta+gamma >= 1 {
		return nil, false
	}

	t := e2.Dot(qvec) * invDet
	if t < tMin || t > tMax {
		return nil, false
	}

	alpha := 1 - beta - gamma
	normal := tr.N0.Multiply(alpha).Add(tr.N1.Multiply(beta)).Add(tr.N2.Multiply(gamma)).Normalize()
	uv := tr.UV0.Multiply(alpha).Add(tr.UV1.Multiply(beta)).Add(tr.UV2.Multiply(gamma))

	hit := &material.HitRecord{T: t, P: r.At(t), Material: tr.Material, U: uv.X, V: uv.Y}
	hit.SetFaceNormal(r, normal)
	return hit, true
}

func (tr *Triangle) BoundingBox() core.AABB {
	return core.NewAABBFromPoints(tr.P0, tr.P1, tr.P2)
}
