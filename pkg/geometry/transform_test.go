package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kestrelrender/pathtracer/pkg/core"
)

// Translate(delta).Hit on a sphere yields the same world-
// space hit point as a sphere whose center has been translated directly.
func TestTranslateMatchesShiftedSphere(t *testing.T) {
	delta := core.NewVec3(3, -2, 1)
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1, flatMat())
	translated := NewTranslate(sphere, delta)
	shifted := NewSphere(delta, 1, flatMat())

	ray := core.NewRay(core.NewVec3(3, -2, -5), core.NewVec3(0, 0, 1))

	hitA, okA := translated.Hit(ray, 0.001, 1e9)
	hitB, okB := shifted.Hit(ray, 0.001, 1e9)
	require.True(t, okA)
	require.True(t, okB)
	assert.InDelta(t, hitB.P.X, hitA.P.X, 1e-9)
	assert.InDelta(t, hitB.P.Y, hitA.P.Y, 1e-9)
	assert.InDelta(t, hitB.P.Z, hitA.P.Z, 1e-9)
}

// RotateY(theta).Hit on a sphere yields the same world-space
// hit point as a sphere whose center has been rotated directly (spheres
// are themselves rotationally symmetric, so only the center needs to move).
func TestRotateYMatchesRotatedSphere(t *testing.T) {
	theta := math.Pi / 3
	center := core.NewVec3(2, 0, 0)
	sphere := NewSphere(center, 0.5, flatMat())
	rotated := NewRotateY(sphere, theta)
	rotatedCenter := NewSphere(center.RotateY(theta), 0.5, flatMat())

	ray := core.NewRay(rotatedCenter.Center.Add(core.NewVec3(0, 0, -5)), core.NewVec3(0, 0, 1))

	hitA, okA := rotated.Hit(ray, 0.001, 1e9)
	hitB, okB := rotatedCenter.Hit(ray, 0.001, 1e9)
	require.True(t, okA)
	require.True(t, okB)
	assert.InDelta(t, hitB.P.X, hitA.P.X, 1e-9)
	assert.InDelta(t, hitB.P.Y, hitA.P.Y, 1e-9)
	assert.InDelta(t, hitB.P.Z, hitA.P.Z, 1e-9)
}

func TestRotateYBoundingBoxContainsRotatedCorners(t *testing.T) {
	box := NewPrism(core.NewVec3(-1, -1, -1), core.NewVec3(1, 1, 1), flatMat())
	rotated := NewRotateY(box, math.Pi/4)
	bb := rotated.BoundingBox()
	assert.True(t, bb.Max.X >= bb.Min.X)
	assert.True(t, bb.Max.Y >= bb.Min.Y)
	assert.True(t, bb.Max.Z >= bb.Min.Z)
	// The original corner (1,1,1) rotated must lie within the new box.
	corner := core.NewVec3(1, 1, 1).RotateY(math.Pi / 4)
	assert.LessOrEqual(t, bb.Min.X, corner.X+1e-9)
	assert.GreaterOrEqual(t, bb.Max.X, corner.X-1e-9)
}
