package tracer

import (
	"github.com/kestrelrender/pathtracer/pkg/core"
	"github.com/kestrelrender/pathtracer/pkg/env"
)

// Background is the radiance a ray that escapes the scene carries: either
// a flat color or an HDRI environment map. When HDRI is set, it doubles as
// a light the integrator's MIS mixture can importance-sample (see
// World.lights in scene.go).
type Background struct {
	Color core.Vec3
	HDRI  *env.HDRI
}

// NewColorBackground builds a flat-color background.
func NewColorBackground(color core.Vec3) Background { return Background{Color: color} }

// NewHDRIBackground builds an environment-map background from a
// pre-decoded linear-RGB pixel grid.
func NewHDRIBackground(pixels []core.Vec3, width, height int, yawDegrees float64) Background {
	return Background{HDRI: env.NewHDRI(pixels, width, height, yawDegrees)}
}

// Value returns the radiance arriving along ray.Direction.
func (b Background) Value(ray core.Ray) core.Vec3 {
	if b.HDRI != nil {
		return b.HDRI.Value(ray.Direction)
	}
	return b.Color
}
