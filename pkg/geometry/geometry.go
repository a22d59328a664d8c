// Package geometry implements the primitive shapes a scene is built from:
// spheres, axis-aligned rectangles, triangles, axis-aligned boxes built
// from rectangles, the Translate/RotateY instancing wrappers, and a
// homogeneous participating medium. Emissive shapes additionally
// implement pdf.Emitter so the integrator can importance-sample them
// directly as lights.
package geometry

import (
	"github.com/kestrelrender/pathtracer/pkg/core"
	"github.com/kestrelrender/pathtracer/pkg/material"
)

// Hittable is anything a ray can intersect.
type Hittable interface {
	Hit(r core.Ray, tMin, tMax float64) (*material.HitRecord, bool)
	BoundingBox() core.AABB
}

// List is an unordered collection of Hittables tested by linear scan, used
// for small object counts such as the six sides of NewPrism.
type List struct {
	Objects []Hittable
}

func NewList(objects ...Hittable) *List { return &List{Objects: objects} }

func (l *List) Add(h Hittable) { l.Objects = append(l.Objects, h) }

func (l *List) Hit(r core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	var closest *material.HitRecord
	closestSoFar := tMax
	for _, obj := range l.Objects {
		if hit, ok := obj.Hit(r, tMin, closestSoFar); ok {
			closest = hit
			closestSoFar = hit.T
		}
	}
	return closest, closest != nil
}

func (l *List) BoundingBox() core.AABB {
	if len(l.Objects) == 0 {
		return core.AABB{}
	}
	box := l.Objects[0].BoundingBox()
	for _, obj := range l.Objects[1:] {
		box = core.SurroundingBox(box, obj.BoundingBox())
	}
	return box
}
