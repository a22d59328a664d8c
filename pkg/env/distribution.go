// Package env implements the piecewise-constant 2D importance sampler over
// an equirectangular HDR environment map: a Distribution1D per row (the
// conditional density over u given v) plus one marginal Distribution1D over
// row integrals, and the HDRI background/light that wraps them.
package env

import "sort"

// Distribution1D is a piecewise-constant probability distribution over
// [0,1) built from a function sampled at N equal-width buckets. It stores
// the function values, their integral, and a piecewise-linear CDF so an
// inverse-CDF sample can be found by binary search.
type Distribution1D struct {
	Func    []float64
	CDF     []float64
	FuncInt float64
}

// NewDistribution1D builds the CDF of f by (numerically) integrating each
// bucket in turn. len(f) must be >= 1.
func NewDistribution1D(f []float64) *Distribution1D {
	n := len(f)
	cdf := make([]float64, n+1)
	for i := 1; i <= n; i++ {
		cdf[i] = cdf[i-1] + f[i-1]/float64(n)
	}
	funcInt := cdf[n]
	if funcInt == 0 {
		for i := 1; i <= n; i++ {
			cdf[i] = float64(i) / float64(n)
		}
	} else {
		for i := 1; i <= n; i++ {
			cdf[i] /= funcInt
		}
	}
	return &Distribution1D{Func: append([]float64(nil), f...), CDF: cdf, FuncInt: funcInt}
}

// SampleContinuous inverts the CDF at u, returning the sampled value in
// [0,1) and its probability density with respect to that value.
func (d *Distribution1D) SampleContinuous(u float64) (x, pdf float64, offset int) {
	n := len(d.Func)
	offset = sort.Search(len(d.CDF), func(i int) bool { return d.CDF[i] > u }) - 1
	if offset < 0 {
		offset = 0
	}
	if offset > n-1 {
		offset = n - 1
	}

	du := u - d.CDF[offset]
	if denom := d.CDF[offset+1] - d.CDF[offset]; denom > 0 {
		du /= denom
	}

	if d.FuncInt > 0 {
		pdf = d.Func[offset] / d.FuncInt
	}
	x = (float64(offset) + du) / float64(n)
	return x, pdf, offset
}

// Count returns the number of buckets.
func (d *Distribution1D) Count() int { return len(d.Func) }
