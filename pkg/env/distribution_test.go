package env

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

// If SampleContinuous(xi) -> (x, pdf), the empirical density
// of x over many samples matches pdf within Monte-Carlo error. Here f is a
// simple linear ramp so the analytic density is known in closed form.
func TestDistribution1DSampleMatchesDensity(t *testing.T) {
	n := 64
	f := make([]float64, n)
	for i := range f {
		f[i] = float64(i + 1) // linear ramp, favors the high end
	}
	d := NewDistribution1D(f)

	rng := rand.New(rand.NewSource(1))
	const trials = 20000
	sumPdf := 0.0
	countUpperHalf := 0
	for i := 0; i < trials; i++ {
		x, pdf, _ := d.SampleContinuous(rng.Float64())
		sumPdf += pdf
		if x > 0.5 {
			countUpperHalf++
		}
	}
	meanPdf := sumPdf / trials
	// E[pdf(X)] over its own distribution is the "self-information"
	// integral; for a ramp it should sit above the uniform density 1.0
	// since the distribution concentrates mass where pdf is larger.
	assert.Greater(t, meanPdf, 1.0)

	// More than half the samples should land in the upper half, since f
	// is increasing.
	assert.Greater(t, countUpperHalf, trials/2)
}

func TestDistribution1DUniformIsFlat(t *testing.T) {
	n := 16
	f := make([]float64, n)
	for i := range f {
		f[i] = 1.0
	}
	d := NewDistribution1D(f)
	for _, u := range []float64{0, 0.25, 0.5, 0.75, 0.999} {
		_, pdf, _ := d.SampleContinuous(u)
		assert.InDelta(t, 1.0, pdf, 1e-9)
	}
}

func TestDistribution1DAllZeroFallsBackToUniform(t *testing.T) {
	d := NewDistribution1D(make([]float64, 8))
	x, pdf, _ := d.SampleContinuous(0.5)
	assert.InDelta(t, 0.0, pdf, 1e-9)
	assert.GreaterOrEqual(t, x, 0.0)
	assert.Less(t, x, 1.0)
}

// A Distribution2D built from a bright 10x10-deg
// patch near one pole should draw ~80%+ of its samples inside that patch.
func TestDistribution2DConcentratesOnBrightPatch(t *testing.T) {
	width, height := 360, 180 // 1 degree per pixel
	f := make([]float64, width*height)
	// Bright patch near the top (zenith), rows [0,10), all columns in
	// [0,10) degrees -> columns [0,10).
	for row := 0; row < 10; row++ {
		for col := 0; col < 10; col++ {
			f[row*width+col] = 1.0
		}
	}
	dist := NewDistribution2D(f, width, height)

	rng := rand.New(rand.NewSource(7))
	inside, trials := 0, 5000
	for i := 0; i < trials; i++ {
		u, v, _ := dist.SampleContinuous(rng.Float64(), rng.Float64())
		row := int(v * float64(height))
		col := int(u * float64(width))
		if row >= 0 && row < 10 && col >= 0 && col < 10 {
			inside++
		}
	}
	frac := float64(inside) / float64(trials)
	assert.Greater(t, frac, 0.75)
}

func TestDistribution2DPdfMatchesConditionalMarginalProduct(t *testing.T) {
	width, height := 4, 4
	f := []float64{
		1, 1, 1, 1,
		2, 2, 2, 2,
		1, 1, 1, 1,
		1, 1, 1, 1,
	}
	dist := NewDistribution2D(f, width, height)
	p := dist.Pdf(0.1, 0.3) // row index 1 (the brighter row), col 0
	assert.Greater(t, p, 0.0)
	assert.False(t, math.IsNaN(p))
	// p(u|v) = 2/2 within the row, p(v) = 2/1.25 over the row integrals.
	assert.InDelta(t, 1.0*(2.0/1.25), p, 1e-9)
}
