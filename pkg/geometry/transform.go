package geometry

import (
	"math"

	"github.com/kestrelrender/pathtracer/pkg/core"
	"github.com/kestrelrender/pathtracer/pkg/material"
)

// Translate offsets an inner object by a fixed world-space vector. The ray
// is translated by -Offset before testing the inner object, and the hit
// point translated back by +Offset on the way out; the normal is
// unaffected by a pure translation.
type Translate struct {
	Inner  Hittable
	Offset core.Vec3
}

func NewTranslate(inner Hittable, offset core.Vec3) *Translate {
	return &Translate{Inner: inner, Offset: offset}
}

func (t *Translate) Hit(r core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	moved := core.NewRay(r.Origin.Subtract(t.Offset), r.Direction)
	hit, ok := t.Inner.Hit(moved, tMin, tMax)
	if !ok {
		return nil, false
	}
	hit.P = hit.P.Add(t.Offset)
	return hit, true
}

func (t *Translate) BoundingBox() core.AABB {
	box := t.Inner.BoundingBox()
	return core.NewAABB(box.Min.Add(t.Offset), box.Max.Add(t.Offset))
}

// RotateY rotates an inner object by Theta radians about the Y axis. The
// ray's origin and direction are rotated by -Theta before testing the
// inner object; the returned hit point and normal are rotated back by
// +Theta. The bounding box is recomputed as the AABB of the eight rotated
// corners of the inner box.
type RotateY struct {
	Inner  Hittable
	Theta  float64
	box    core.AABB
	hasBox bool
}

func NewRotateY(inner Hittable, theta float64) *RotateY {
	ry := &RotateY{Inner: inner, Theta: theta}
	ry.box, ry.hasBox = ry.computeBoundingBox()
	return ry
}

func (ry *RotateY) computeBoundingBox() (core.AABB, bool) {
	inner := ry.Inner.BoundingBox()
	min := core.NewVec3(math.Inf(1), math.Inf(1), math.Inf(1))
	max := core.NewVec3(math.Inf(-1), math.Inf(-1), math.Inf(-1))
	corners := [8]core.Vec3{}
	idx := 0
	for _, x := range [2]float64{inner.Min.X, inner.Max.X} {
		for _, y := range [2]float64{inner.Min.Y, inner.Max.Y} {
			for _, z := range [2]float64{inner.Min.Z, inner.Max.Z} {
				corners[idx] = core.NewVec3(x, y, z)
				idx++
			}
		}
	}
	for _, c := range corners {
		rotated := c.RotateY(ry.Theta)
		min = core.NewVec3(math.Min(min.X, rotated.X), math.Min(min.Y, rotated.Y), math.Min(min.Z, rotated.Z))
		max = core.NewVec3(math.Max(max.X, rotated.X), math.Max(max.Y, rotated.Y), math.Max(max.Z, rotated.Z))
	}
	return core.NewAABB(min, max), true
}

func (ry *RotateY) Hit(r core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	rotated := core.NewRay(r.Origin.RotateY(-ry.Theta), r.Direction.RotateY(-ry.Theta))
	hit, ok := ry.Inner.Hit(rotated, tMin, tMax)
	if !ok {
		return nil, false
	}
	hit.P = hit.P.RotateY(ry.Theta)
	hit.Normal = hit.Normal.RotateY(ry.Theta)
	return hit, true
}

func (ry *RotateY) BoundingBox() core.AABB { return ry.box }
