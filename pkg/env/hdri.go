package env

import (
	"math"

	"github.com/kestrelrender/pathtracer/pkg/core"
	"github.com/kestrelrender/pathtracer/pkg/texture"
)

// HDRI is an environment-map background: it evaluates a ray's radiance by
// looking up the equirectangular texture in the ray's direction, and it
// implements pdf.Emitter so it can be importance-sampled as a light via
// its Distribution2D, built once from luminance-weighted pixels.
type HDRI struct {
	texture *texture.HDRI
	dist    *Distribution2D
}

// NewHDRI builds the importance-sampling distribution over pixels, rotating
// the source image by yawDegrees first (the yaw offset is baked into the
// pixel grid once at construction, not re-applied per sample).
func NewHDRI(pixels []core.Vec3, width, height int, yawDegrees float64) *HDRI {
	rotated := rotateYaw(pixels, width, height, yawDegrees)
	tex := texture.NewHDRI(rotated, width, height)
	f := luminanceWeights(func(row, col int) float64 {
		return tex.At(row, col).Luminance()
	}, width, height)
	return &HDRI{texture: tex, dist: NewDistribution2D(f, width, height)}
}

// rotateYaw rolls each row of the pixel grid by yawDegrees/360*width
// columns, implementing the optional yaw offset in degrees.
func rotateYaw(pixels []core.Vec3, width, height int, yawDegrees float64) []core.Vec3 {
	if yawDegrees == 0 {
		return pixels
	}
	shift := int(math.Round(yawDegrees / 360.0 * float64(width)))
	shift = ((shift % width) + width) % width
	if shift == 0 {
		return pixels
	}
	out := make([]core.Vec3, len(pixels))
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			src := (col + shift) % width
			out[row*width+col] = pixels[row*width+src]
		}
	}
	return out
}

// directionToUV maps a unit direction to equirectangular (u,v): theta=acos(y)
// maps to v=theta/pi, phi=atan2(z,x) maps to u via the 180-degree-offset
// convention (u' = u + 0.5).
func directionToUV(dir core.Vec3) (u, v float64) {
	theta := math.Acos(clampUnit(dir.Y))
	phi := math.Atan2(dir.Z, dir.X)
	u = phi/(2*math.Pi) + 0.5
	v = theta / math.Pi
	return u, v
}

// uvToDirection is the inverse equirectangular projection used when
// sampling: theta = pi*v, phi = 2*pi*(u-0.5).
func uvToDirection(u, v float64) core.Vec3 {
	theta := math.Pi * v
	phi := 2 * math.Pi * (u - 0.5)
	sinTheta := math.Sin(theta)
	return core.NewVec3(sinTheta*math.Cos(phi), math.Cos(theta), sinTheta*math.Sin(phi))
}

func clampUnit(x float64) float64 {
	if x < -1 {
		return -1
	}
	if x > 1 {
		return 1
	}
	return x
}

// Value evaluates the radiance arriving along a ray direction. The
// direction need not be unit length; it is normalized here.
func (h *HDRI) Value(direction core.Vec3) core.Vec3 {
	u, v := directionToUV(direction.Normalize())
	return h.texture.Value(u, 1-v, core.Vec3{})
}

// PDFValue returns the solid-angle density of sampling direction omega via
// this environment light: pdf(u,v)/(2*pi^2*sin(theta)), the Jacobian of the
// equirectangular-to-solid-angle change of variables.
func (h *HDRI) PDFValue(origin, omega core.Vec3) float64 {
	dir := omega.Normalize()
	u, v := directionToUV(dir)
	theta := v * math.Pi
	sinTheta := math.Sin(theta)
	if sinTheta <= 0 {
		return 0
	}
	return h.dist.Pdf(wrapUnit(u), v) / (2 * math.Pi * math.Pi * sinTheta)
}

// Random draws a direction from the environment map's luminance-weighted
// Distribution2D, independent of origin (the map is treated as infinitely
// far away).
func (h *HDRI) Random(origin core.Vec3, sampler *core.Sampler) core.Vec3 {
	xy := sampler.Get2D()
	u, v, _ := h.dist.SampleContinuous(xy.X, xy.Y)
	return uvToDirection(u, v)
}

func wrapUnit(u float64) float64 {
	u -= math.Floor(u)
	if u < 0 {
		u += 1
	}
	return u
}
