package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kestrelrender/pathtracer/pkg/core"
	"github.com/kestrelrender/pathtracer/pkg/material"
	"github.com/kestrelrender/pathtracer/pkg/texture"
)

func flatMat() material.Material {
	return material.NewLambertian(texture.NewSolid(core.NewVec3(1, 1, 1)))
}

func TestTriangleHitCenterAndMiss(t *testing.T) {
	tri := NewFlatTriangle(
		core.NewVec3(-1, -1, 0), core.NewVec3(1, -1, 0), core.NewVec3(0, 1, 0), flatMat())

	ray := core.NewRay(core.NewVec3(0, -0.3, -5), core.NewVec3(0, 0, 1))
	hit, ok := tri.Hit(ray, 0.001, 1e9)
	require.True(t, ok)
	assert.InDelta(t, 5.0, hit.T, 1e-9)
	assert.InDelta(t, 0, hit.P.X, 1e-9)

	miss := core.NewRay(core.NewVec3(10, 10, -5), core.NewVec3(0, 0, 1))
	_, ok = tri.Hit(miss, 0.001, 1e9)
	assert.False(t, ok)
}

func TestTriangleUVInterpolationNearVertex(t *testing.T) {
	n := core.NewVec3(0, 0, 1)
	tri := NewTriangle(
		core.NewVec3(-1, -1, 0), core.NewVec3(1, -1, 0), core.NewVec3(0, 1, 0),
		n, n, n,
		core.NewVec2(0, 0), core.NewVec2(1, 0), core.NewVec2(0, 1),
		flatMat())

	// A ray near P2 (beta small, gamma close to 1) should interpolate UV
	// close to UV2=(0,1).
	ray := core.NewRay(core.NewVec3(0, 0.95, -5), core.NewVec3(0, 0, 1))
	hit, ok := tri.Hit(ray, 0.001, 1e9)
	require.True(t, ok)
	assert.InDelta(t, 0, hit.U, 0.1)
	assert.InDelta(t, 1, hit.V, 0.1)
}

func TestTriangleBoundingBox(t *testing.T) {
	tri := NewFlatTriangle(core.NewVec3(-1, -1, -1), core.NewVec3(2, 0, 0), core.NewVec3(0, 3, 1), flatMat())
	box := tri.BoundingBox()
	assert.Equal(t, core.NewVec3(-1, -1, -1), box.Min)
	assert.Equal(t, core.NewVec3(2, 3, 1), box.Max)
}
