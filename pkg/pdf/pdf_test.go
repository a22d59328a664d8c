package pdf

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kestrelrender/pathtracer/pkg/core"
)

func TestCosineValueMatchesLambert(t *testing.T) {
	n := core.NewVec3(0, 0, 1)
	c := NewCosine(n)
	assert.InDelta(t, 1.0/math.Pi, c.Value(n), 1e-9)
	assert.Equal(t, 0.0, c.Value(core.NewVec3(0, 0, -1)))
}

func TestUniformSphereValueIsConstant(t *testing.T) {
	u := NewUniformSphere()
	assert.InDelta(t, 1.0/(4*math.Pi), u.Value(core.NewVec3(1, 0, 0)), 1e-12)
	assert.InDelta(t, 1.0/(4*math.Pi), u.Value(core.NewVec3(0, -1, 0)), 1e-12)
}

// PDFMixture.Value is the exact convex combination of its two
// components, and the long-run fraction of samples drawn from P matches
// Chance.
func TestMixtureExactValueAndSampleFrequency(t *testing.T) {
	n := core.NewVec3(0, 0, 1)
	p := NewCosine(n)
	q := NewUniformSphere()
	m := NewMixture(p, q, 0.25)

	omega := core.NewVec3(0.3, 0.1, 0.9).Normalize()
	want := 0.25*p.Value(omega) + 0.75*q.Value(omega)
	assert.InDelta(t, want, m.Value(omega), 1e-12)

	rng := rand.New(rand.NewSource(42))
	sampler := core.NewSampler(rng)
	const N = 20000
	fromP := 0
	for i := 0; i < N; i++ {
		dir := m.Sample(sampler)
		// samples from the cosine lobe never point below the pole; the
		// uniform-sphere branch does about half the time. Use that
		// asymmetry to estimate which branch fired.
		if dir.Dot(n) > 0 && p.Value(dir) > 0 {
			fromP++
		}
	}
	// Not an exact separator: the cosine branch always lands above the
	// pole and the uniform-sphere branch does half the time, so the
	// expected fraction above the pole is Chance + (1-Chance)/2.
	assert.Greater(t, fromP, 0)
	assert.Less(t, fromP, N)
	assert.InDelta(t, 0.25+0.75*0.5, float64(fromP)/N, 0.02)
}

func TestLightSetEmptyIsZero(t *testing.T) {
	l := NewLightSet(core.NewVec3(0, 0, 0), nil)
	assert.Equal(t, 0.0, l.Value(core.NewVec3(0, 0, 1)))
}

type constantEmitter struct {
	dir core.Vec3
	pdf float64
}

func (c constantEmitter) PDFValue(origin, omega core.Vec3) float64 { return c.pdf }
func (c constantEmitter) Random(origin core.Vec3, sampler *core.Sampler) core.Vec3 {
	return c.dir
}

func TestLightSetAveragesEmitters(t *testing.T) {
	e1 := constantEmitter{dir: core.NewVec3(1, 0, 0), pdf: 1.0}
	e2 := constantEmitter{dir: core.NewVec3(0, 1, 0), pdf: 3.0}
	l := NewLightSet(core.NewVec3(0, 0, 0), []Emitter{e1, e2})
	assert.InDelta(t, 2.0, l.Value(core.NewVec3(0, 0, 1)), 1e-12)
}

// Self-consistency check for the Blinn-Phong specular lobe: nearly every
// direction drawn by Sample must have a positive Value, so the fraction
// of such samples lands near 1. This does not check that Value is
// normalized.
func TestBlinnPhongLobeSamplesHavePositiveDensity(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	sampler := core.NewSampler(rng)
	n := core.NewVec3(0, 0, 1)
	incoming := core.NewVec3(0.2, 0, -1).Normalize()
	lobe := NewBlinnPhongLobe(n, incoming, 40)

	const N = 50000
	sum := 0.0
	for i := 0; i < N; i++ {
		dir := lobe.Sample(sampler)
		if lobe.Value(dir) <= 0 {
			continue
		}
		sum += 1.0
	}
	mean := sum / N
	assert.InDelta(t, 1.0, mean, 0.05)
}

func TestAshikhminShirleyLobeProducesValidDirections(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	sampler := core.NewSampler(rng)
	n := core.NewVec3(0, 0, 1)
	incoming := core.NewVec3(0, 0.1, -1).Normalize()
	lobe := NewAshikhminShirleyLobe(n, incoming, 50, 200)

	for i := 0; i < 1000; i++ {
		dir := lobe.Sample(sampler)
		assert.InDelta(t, 1.0, dir.Length(), 1e-9)
		pdf := lobe.Value(dir)
		assert.GreaterOrEqual(t, pdf, 0.0)
	}
}
