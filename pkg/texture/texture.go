// Package texture provides the surface-color lookups materials sample at a
// hit point: flat colors, a procedural checker, and pre-decoded image grids
// (SDR with gamma correction, HDR linear) used by materials and the
// environment background alike.
package texture

import "github.com/kestrelrender/pathtracer/pkg/core"

// Texture maps a surface parameterization and a world-space point to a
// color.
type Texture interface {
	Value(u, v float64, p core.Vec3) core.Vec3
}

// Solid is a constant-color texture.
type Solid struct {
	Color core.Vec3
}

func NewSolid(c core.Vec3) Solid { return Solid{Color: c} }

func (s Solid) Value(u, v float64, p core.Vec3) core.Vec3 { return s.Color }
