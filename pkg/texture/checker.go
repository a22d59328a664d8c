package texture

import (
	"math"

	"github.com/kestrelrender/pathtracer/pkg/core"
)

// Checker alternates between two textures by the sign of
// sin(10x)*sin(10y)*sin(10z), giving a 3D checkerboard that doesn't need a
// surface parameterization.
type Checker struct {
	Odd, Even Texture
}

func NewChecker(odd, even Texture) Checker { return Checker{Odd: odd, Even: even} }

func (c Checker) Value(u, v float64, p core.Vec3) core.Vec3 {
	sines := math.Sin(10*p.X) * math.Sin(10*p.Y) * math.Sin(10*p.Z)
	if sines < 0 {
		return c.Odd.Value(u, v, p)
	}
	return c.Even.Value(u, v, p)
}
