package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kestrelrender/pathtracer/pkg/core"
	"github.com/kestrelrender/pathtracer/pkg/material"
	"github.com/kestrelrender/pathtracer/pkg/texture"
)

func meshQuad(mat material.Material) MeshData {
	return MeshData{
		Positions: []core.Vec3{
			core.NewVec3(-1, -1, 0),
			core.NewVec3(1, -1, 0),
			core.NewVec3(1, 1, 0),
			core.NewVec3(-1, 1, 0),
		},
		Indices:  []int{0, 1, 2, 0, 2, 3},
		Material: mat,
	}
}

func TestBuildMeshExpandsIndexedTriangles(t *testing.T) {
	mat := material.NewLambertian(texture.NewSolid(core.NewVec3(0.5, 0.5, 0.5)))
	tris, err := BuildMesh(meshQuad(mat))
	require.NoError(t, err)
	require.Len(t, tris, 2)

	// a ray through the quad's center must hit one of the two triangles
	ray := core.NewRay(core.NewVec3(0.1, 0.1, -5), core.NewVec3(0, 0, 1))
	hit, ok := NewList(tris...).Hit(ray, 0.001, 1e9)
	require.True(t, ok)
	assert.InDelta(t, 5.0, hit.T, 1e-9)
}

func TestBuildMeshRejectsRaggedInput(t *testing.T) {
	mat := material.NewLambertian(texture.NewSolid(core.NewVec3(0.5, 0.5, 0.5)))

	bad := meshQuad(mat)
	bad.Indices = bad.Indices[:5]
	_, err := BuildMesh(bad)
	assert.Error(t, err)

	bad = meshQuad(mat)
	bad.Normals = []core.Vec3{{X: 0, Y: 0, Z: 1}}
	_, err = BuildMesh(bad)
	assert.Error(t, err)

	bad = meshQuad(mat)
	bad.Indices = []int{0, 1, 9}
	_, err = BuildMesh(bad)
	assert.Error(t, err)
}

func TestBuildMeshInterpolatesSuppliedNormals(t *testing.T) {
	mat := material.NewLambertian(texture.NewSolid(core.NewVec3(0.5, 0.5, 0.5)))
	data := meshQuad(mat)
	data.Normals = []core.Vec3{
		core.NewVec3(0, 0, -1),
		core.NewVec3(0, 0, -1),
		core.NewVec3(0, 0, -1),
		core.NewVec3(0, 0, -1),
	}
	tris, err := BuildMesh(data)
	require.NoError(t, err)

	ray := core.NewRay(core.NewVec3(0.1, 0.1, -5), core.NewVec3(0, 0, 1))
	hit, ok := NewList(tris...).Hit(ray, 0.001, 1e9)
	require.True(t, ok)
	// supplied normals point toward the ray origin, so the hit is front-face
	assert.True(t, hit.FrontFace)
	assert.InDelta(t, -1.0, hit.Normal.Z, 1e-9)
}
