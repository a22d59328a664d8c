package core

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVec3Arithmetic(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, -1, 2)

	assert.Equal(t, NewVec3(5, 1, 5), a.Add(b))
	assert.Equal(t, NewVec3(-3, 3, 1), a.Subtract(b))
	assert.Equal(t, NewVec3(2, 4, 6), a.Multiply(2))
	assert.InDelta(t, 4-2+6, a.Dot(b), 1e-9)
}

func TestVec3Cross(t *testing.T) {
	x := NewVec3(1, 0, 0)
	y := NewVec3(0, 1, 0)
	assert.Equal(t, NewVec3(0, 0, 1), x.Cross(y))
}

func TestVec3Normalize(t *testing.T) {
	v := NewVec3(3, 4, 0)
	n := v.Normalize()
	assert.InDelta(t, 1.0, n.Length(), 1e-12)
	assert.Equal(t, Vec3{}, Vec3{}.Normalize())
}

func TestHasNaN(t *testing.T) {
	assert.True(t, NewVec3(math.NaN(), 0, 0).HasNaN())
	assert.False(t, NewVec3(1, 2, 3).HasNaN())
}

// Monte-Carlo average of 1/pdf(omega) over cosine-hemisphere
// samples converges to pi.
func TestCosineHemisphereConvergesToPi(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	n := NewVec3(0, 0, 1)
	const N = 200000
	sum := 0.0
	for i := 0; i < N; i++ {
		u := Vec2{X: rng.Float64(), Y: rng.Float64()}
		dir := SampleCosineHemisphere(n, u).Normalize()
		cosTheta := dir.Dot(n)
		if cosTheta <= 0 {
			continue
		}
		pdf := cosTheta / math.Pi
		sum += 1.0 / pdf
	}
	mean := sum / N
	assert.InDelta(t, math.Pi, mean, 0.05)
}

// Monte-Carlo average of 1/pdf(omega) over uniform-sphere
// samples converges to 4*pi.
func TestUniformSphereConvergesTo4Pi(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	const N = 100000
	sum := 0.0
	for i := 0; i < N; i++ {
		_ = SampleUniformSphere(Vec2{X: rng.Float64(), Y: rng.Float64()})
		sum += 1.0 / (1.0 / (4.0 * math.Pi))
	}
	mean := sum / N
	assert.InDelta(t, 4*math.Pi, mean, 1e-9)
}

func TestSampleCosineHemisphereOrthonormalBasis(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	normals := []Vec3{{X: 0, Y: 1, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: 0, Z: 1}, NewVec3(1, 1, 1).Normalize()}
	for _, n := range normals {
		for i := 0; i < 100; i++ {
			dir := SampleCosineHemisphere(n, Vec2{X: rng.Float64(), Y: rng.Float64()})
			assert.GreaterOrEqual(t, dir.Dot(n), -1e-9)
		}
	}
}
