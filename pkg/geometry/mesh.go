package geometry

import (
	"github.com/pkg/errors"

	"github.com/kestrelrender/pathtracer/pkg/core"
	"github.com/kestrelrender/pathtracer/pkg/material"
)

// MeshData is the raw triangle soup a mesh-loading collaborator hands in:
// flat vertex attribute arrays plus an index buffer (three indices per
// triangle) and one material handle for the whole mesh. Normals and UVs
// are optional; absent normals fall back to flat face normals, absent UVs
// to the (0,0)/(1,0)/(0,1) corner parameterization.
type MeshData struct {
	Positions []core.Vec3
	Normals   []core.Vec3
	UVs       []core.Vec2
	Indices   []int
	Material  material.Material
}

// BuildMesh expands MeshData into one Triangle per index triple, ready to
// be appended to a scene's object array.
func BuildMesh(data MeshData) ([]Hittable, error) {
	if len(data.Indices)%3 != 0 {
		return nil, errors.Errorf("geometry: mesh index count %d is not a multiple of 3", len(data.Indices))
	}
	if len(data.Normals) > 0 && len(data.Normals) != len(data.Positions) {
		return nil, errors.Errorf("geometry: mesh has %d normals for %d positions", len(data.Normals), len(data.Positions))
	}
	if len(data.UVs) > 0 && len(data.UVs) != len(data.Positions) {
		return nil, errors.Errorf("geometry: mesh has %d uvs for %d positions", len(data.UVs), len(data.Positions))
	}

	triangles := make([]Hittable, 0, len(data.Indices)/3)
	for i := 0; i+2 < len(data.Indices); i += 3 {
		i0, i1, i2 := data.Indices[i], data.Indices[i+1], data.Indices[i+2]
		if i0 < 0 || i1 < 0 || i2 < 0 ||
			i0 >= len(data.Positions) || i1 >= len(data.Positions) || i2 >= len(data.Positions) {
			return nil, errors.Errorf("geometry: mesh triangle %d references vertex out of range", i/3)
		}
		p0, p1, p2 := data.Positions[i0], data.Positions[i1], data.Positions[i2]

		if len(data.Normals) == 0 && len(data.UVs) == 0 {
			triangles = append(triangles, NewFlatTriangle(p0, p1, p2, data.Material))
			continue
		}

		var n0, n1, n2 core.Vec3
		if len(data.Normals) > 0 {
			n0, n1, n2 = data.Normals[i0], data.Normals[i1], data.Normals[i2]
		} else {
			n := p1.Subtract(p0).Cross(p2.Subtract(p0)).Normalize()
			n0, n1, n2 = n, n, n
		}

		uv0, uv1, uv2 := core.NewVec2(0, 0), core.NewVec2(1, 0), core.NewVec2(0, 1)
		if len(data.UVs) > 0 {
			uv0, uv1, uv2 = data.UVs[i0], data.UVs[i1], data.UVs[i2]
		}

		triangles = append(triangles, NewTriangle(p0, p1, p2, n0, n1, n2, uv0, uv1, uv2, data.Material))
	}
	return triangles, nil
}
