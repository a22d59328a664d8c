package geometry

import (
	"github.com/kestrelrender/pathtracer/pkg/core"
	"github.com/kestrelrender/pathtracer/pkg/material"
)

// NewPrism builds an axis-aligned box from two opposite corners as six
// rectangles. Non-axis-aligned boxes (e.g. the tilted boxes in a Cornell
// box scene) are built by wrapping the result in RotateY/Translate.
func NewPrism(p0, p1 core.Vec3, mat material.Material) Hittable {
	sides := NewList(
		NewRectXY(p0.X, p1.X, p0.Y, p1.Y, p1.Z, false, mat),
		NewRectXY(p0.X, p1.X, p0.Y, p1.Y, p0.Z, true, mat),
		NewRectXZ(p0.X, p1.X, p0.Z, p1.Z, p1.Y, false, mat),
		NewRectXZ(p0.X, p1.X, p0.Z, p1.Z, p0.Y, true, mat),
		NewRectYZ(p0.Y, p1.Y, p0.Z, p1.Z, p1.X, false, mat),
		NewRectYZ(p0.Y, p1.Y, p0.Z, p1.Z, p0.X, true, mat),
	)
	return sides
}
