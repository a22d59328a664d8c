package texture

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kestrelrender/pathtracer/pkg/core"
)

func TestSolidIsConstant(t *testing.T) {
	s := NewSolid(core.NewVec3(0.1, 0.2, 0.3))
	assert.Equal(t, core.NewVec3(0.1, 0.2, 0.3), s.Value(0.5, 0.5, core.NewVec3(1, 2, 3)))
}

func TestCheckerAlternatesSign(t *testing.T) {
	odd := NewSolid(core.NewVec3(0, 0, 0))
	even := NewSolid(core.NewVec3(1, 1, 1))
	c := NewChecker(odd, even)

	// at the origin sin(0)=0 everywhere, so nudge off-axis to exercise both
	// branches within one period.
	a := c.Value(0, 0, core.NewVec3(0.1, 0.1, 0.1))
	b := c.Value(0, 0, core.NewVec3(0.4, 0.1, 0.1))
	assert.NotEqual(t, a, b)
}

func TestImageAppliesGamma(t *testing.T) {
	pixels := []core.Vec3{core.NewVec3(0.5, 0.5, 0.5)}
	img := NewImage(pixels, 1, 1, 2.2)
	got := img.Value(0.5, 0.5, core.Vec3{})
	assert.InDelta(t, 0.5*0.5, got.X, 0.2) // pow(0.5,2.2) ~ 0.218, sanity range check
	assert.Less(t, got.X, 0.5)
}

func TestHDRILinearNoGamma(t *testing.T) {
	pixels := []core.Vec3{core.NewVec3(2.0, 3.0, 4.0)}
	h := NewHDRI(pixels, 1, 1)
	got := h.Value(0.5, 0.5, core.Vec3{})
	assert.Equal(t, core.NewVec3(2.0, 3.0, 4.0), got)
}

func TestHDRIAtIndexing(t *testing.T) {
	pixels := []core.Vec3{
		core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0),
		core.NewVec3(0, 0, 1), core.NewVec3(1, 1, 1),
	}
	h := NewHDRI(pixels, 2, 2)
	assert.Equal(t, core.NewVec3(0, 1, 0), h.At(0, 1))
	assert.Equal(t, core.NewVec3(1, 1, 1), h.At(1, 1))
	assert.Equal(t, core.NewVec3(1, 1, 1), h.At(99, 99))
}
