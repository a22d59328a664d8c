package core

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAABBHitSlab(t *testing.T) {
	box := NewAABB(NewVec3(-1, -1, -1), NewVec3(1, 1, 1))

	// Ray straight through the box.
	r := NewRay(NewVec3(0, 0, -5), NewVec3(0, 0, 1))
	assert.True(t, box.Hit(r, 0, math.Inf(1)))

	// Ray that misses entirely.
	miss := NewRay(NewVec3(5, 5, -5), NewVec3(0, 0, 1))
	assert.False(t, box.Hit(miss, 0, math.Inf(1)))

	// Ray whose valid t-interval excludes the box.
	tooFar := NewRay(NewVec3(0, 0, -5), NewVec3(0, 0, 1))
	assert.False(t, box.Hit(tooFar, 0, 1))
}

func TestAABBUnionContainsBoth(t *testing.T) {
	a := NewAABB(NewVec3(0, 0, 0), NewVec3(1, 1, 1))
	p := NewVec3(5, -2, 3)
	b := NewAABBFromPoints(p)
	u := SurroundingBox(a, b)

	assert.True(t, u.Min.X <= a.Min.X && u.Max.X >= a.Max.X)
	assert.True(t, u.Min.X <= p.X && u.Max.X >= p.X)
	assert.True(t, u.Min.Y <= p.Y && u.Max.Y >= p.Y)
	assert.True(t, u.Min.Z <= p.Z && u.Max.Z >= p.Z)
}

func TestLongestAxisTieBreakIsZ(t *testing.T) {
	degenerate := NewAABB(NewVec3(0, 0, 0), NewVec3(0, 0, 0))
	assert.Equal(t, 2, degenerate.LongestAxis())
}

func TestInfiniteAABBNeverHits(t *testing.T) {
	r := NewRay(NewVec3(0, 0, 0), NewVec3(1, 0, 0))
	assert.False(t, InfiniteAABB().Hit(r, 0, math.Inf(1)))
}
