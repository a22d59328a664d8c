package texture

import (
	"math"

	"github.com/kestrelrender/pathtracer/pkg/core"
)

// Image is a texture backed by a pre-decoded pixel grid in gamma space
// (sRGB-ish, as produced by an SDR image decoder upstream of this core).
// Decoding image files is out of scope here; callers hand in already
// decoded pixels. Value applies a gamma-to-linear conversion on read so
// materials always see linear radiance.
type Image struct {
	Pixels        []core.Vec3
	Width, Height int
	Gamma         float64
}

// NewImage defaults Gamma to 2.2 when zero.
func NewImage(pixels []core.Vec3, width, height int, gamma float64) *Image {
	if gamma == 0 {
		gamma = 2.2
	}
	return &Image{Pixels: pixels, Width: width, Height: height, Gamma: gamma}
}

func (img *Image) Value(u, v float64, p core.Vec3) core.Vec3 {
	if img.Width == 0 || img.Height == 0 {
		return core.Vec3{}
	}
	u = clamp01(u)
	v = 1 - clamp01(v)
	i := int(u * float64(img.Width))
	j := int(v * float64(img.Height))
	if i >= img.Width {
		i = img.Width - 1
	}
	if j >= img.Height {
		j = img.Height - 1
	}
	c := img.Pixels[j*img.Width+i]
	return core.NewVec3(
		math.Pow(c.X, img.Gamma),
		math.Pow(c.Y, img.Gamma),
		math.Pow(c.Z, img.Gamma),
	)
}

// HDRI is a texture backed by a pre-decoded linear (radiometric) pixel
// grid, as produced by an HDR image decoder upstream of this core. No
// gamma conversion is applied on read.
type HDRI struct {
	Pixels        []core.Vec3
	Width, Height int
}

func NewHDRI(pixels []core.Vec3, width, height int) *HDRI {
	return &HDRI{Pixels: pixels, Width: width, Height: height}
}

func (h *HDRI) Value(u, v float64, p core.Vec3) core.Vec3 {
	if h.Width == 0 || h.Height == 0 {
		return core.Vec3{}
	}
	u = clamp01(u)
	v = 1 - clamp01(v)
	i := int(u * float64(h.Width))
	j := int(v * float64(h.Height))
	if i >= h.Width {
		i = h.Width - 1
	}
	if j >= h.Height {
		j = h.Height - 1
	}
	return h.Pixels[j*h.Width+i]
}

// At looks up a pixel directly by integer (row, column), used by
// env.NewHDRI when building the importance-sampling tables without
// going through (u,v) normalization.
func (h *HDRI) At(row, col int) core.Vec3 {
	if row < 0 {
		row = 0
	}
	if row >= h.Height {
		row = h.Height - 1
	}
	if col < 0 {
		col = 0
	}
	if col >= h.Width {
		col = h.Width - 1
	}
	return h.Pixels[row*h.Width+col]
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
