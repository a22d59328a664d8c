package env

import "math"

// Distribution2D is built from a luminance-weighted grid of pixels: one
// Distribution1D per row (conditional p(u|v)) plus one marginal
// Distribution1D over the row integrals (p(v)). SampleContinuous draws
// (u,v) by first inverting the marginal to get v, then the matching row's
// conditional to get u; the product of the two densities is pdf(u,v).
type Distribution2D struct {
	conditional   []*Distribution1D
	marginal      *Distribution1D
	width, height int
}

// NewDistribution2D builds the sampler from a row-major function grid of
// size width*height (one value per pixel, already luminance-weighted by
// sin(theta) to account for the equirectangular projection's area
// distortion near the poles).
func NewDistribution2D(f []float64, width, height int) *Distribution2D {
	conditional := make([]*Distribution1D, height)
	marginalFunc := make([]float64, height)
	for v := 0; v < height; v++ {
		row := f[v*width : (v+1)*width]
		conditional[v] = NewDistribution1D(row)
		marginalFunc[v] = conditional[v].FuncInt
	}
	return &Distribution2D{
		conditional: conditional,
		marginal:    NewDistribution1D(marginalFunc),
		width:       width,
		height:      height,
	}
}

// SampleContinuous draws (u,v) in [0,1)^2 from (xi1, xi2) and returns the
// joint density pdf(u,v) = p(u|v)*p(v).
func (d *Distribution2D) SampleContinuous(xi1, xi2 float64) (u, v, pdf float64) {
	v, pdfV, vOffset := d.marginal.SampleContinuous(xi1)
	u, pdfU, _ := d.conditional[vOffset].SampleContinuous(xi2)
	return u, v, pdfU * pdfV
}

// Pdf returns the joint density at an already-known (u,v), used when the
// integrator needs to evaluate this distribution's density for a direction
// sampled by some other PDF (the light/BRDF mixture).
func (d *Distribution2D) Pdf(u, v float64) float64 {
	iu := clampIndex(int(u*float64(d.width)), d.width)
	iv := clampIndex(int(v*float64(d.height)), d.height)
	if d.marginal.FuncInt == 0 {
		return 0
	}
	return d.conditional[iv].Func[iu] / d.marginal.FuncInt
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// luminanceWeights builds the f(u,v) grid: luminance of the
// pixel times sin(pi*(v+0.5)/H) to correct for the equirectangular area
// distortion (rows near the poles cover less solid angle per pixel).
func luminanceWeights(luminance func(row, col int) float64, width, height int) []float64 {
	f := make([]float64, width*height)
	for v := 0; v < height; v++ {
		sinTheta := math.Sin(math.Pi * (float64(v) + 0.5) / float64(height))
		for u := 0; u < width; u++ {
			f[v*width+u] = luminance(v, u) * sinTheta
		}
	}
	return f
}
