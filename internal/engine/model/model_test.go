package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/meshstep/pkg/formats"
	"github.com/Faultbox/meshstep/pkg/math"
)

const tol = 1e-6

func TestComputeNormals_SingleTriangle(t *testing.T) {
	vertices := []math.Vec3{{X: 0, Y: 0, Z: 0}, {X: 2, Y: 0, Z: 0}, {X: 0, Y: 3, Z: 0}}
	faces := []Face{{V1: 0, V2: 1, V3: 2}}

	faceNormals, vertexNormals, degenerate := ComputeNormals(vertices, faces)
	require.Len(t, faceNormals, 1)
	assert.Empty(t, degenerate)

	n := faceNormals[0]
	e1 := vertices[1].Sub(vertices[0])
	e2 := vertices[2].Sub(vertices[0])

	assert.InDelta(t, 1, n.Length(), tol)
	assert.InDelta(t, 0, n.Dot(e1), tol)
	assert.InDelta(t, 0, n.Dot(e2), tol)
	// right-hand rule: X edge then Y edge points along +Z
	assert.Equal(t, math.Vec3{Z: 1}, n)

	for _, vn := range vertexNormals {
		assert.Equal(t, n, vn)
	}
}

func TestComputeNormals_WindingFlipsSign(t *testing.T) {
	vertices := []math.Vec3{{}, {X: 1}, {Y: 1}}
	faceNormals, _, _ := ComputeNormals(vertices, []Face{{V1: 0, V2: 2, V3: 1}})

	assert.Equal(t, math.Vec3{Z: -1}, faceNormals[0])
}

func TestComputeNormals_Degenerate(t *testing.T) {
	vertices := []math.Vec3{{}, {X: 1}, {X: 2}, {Y: 1}}
	faces := []Face{
		{V1: 0, V2: 1, V3: 2}, // collinear
		{V1: 0, V2: 1, V3: 3},
	}

	faceNormals, vertexNormals, degenerate := ComputeNormals(vertices, faces)

	assert.Equal(t, []int{0}, degenerate)
	assert.Equal(t, math.Vec3{}, faceNormals[0])
	assert.True(t, faceNormals[0].IsFinite())

	// vertex 2 is only used by the degenerate face
	assert.Equal(t, math.Vec3{}, vertexNormals[2])
	assert.Equal(t, math.Vec3{Z: 1}, vertexNormals[0])
}

func TestComputeNormals_UnreferencedVertex(t *testing.T) {
	vertices := []math.Vec3{{}, {X: 1}, {Y: 1}, {X: 5, Y: 5, Z: 5}}
	_, vertexNormals, _ := ComputeNormals(vertices, []Face{{V1: 0, V2: 1, V3: 2}})

	require.Len(t, vertexNormals, 4)
	assert.Equal(t, math.Vec3{}, vertexNormals[3])
}

func TestComputeNormals_AveragesUnweighted(t *testing.T) {
	// Two faces sharing the edge 0-1: one in the XY plane, one in the XZ plane.
	vertices := []math.Vec3{{}, {X: 1}, {Y: 1}, {Z: -10}}
	faces := []Face{
		{V1: 0, V2: 1, V3: 2}, // +Z
		{V1: 0, V2: 1, V3: 3}, // +Y, much larger area
	}

	_, vertexNormals, _ := ComputeNormals(vertices, faces)

	want := math.Vec3{Y: 1, Z: 1}.Normalize()
	assert.InDelta(t, want.Y, vertexNormals[0].Y, tol)
	assert.InDelta(t, want.Z, vertexNormals[0].Z, tol)
	assert.InDelta(t, 0, vertexNormals[0].X, tol)
	assert.Equal(t, math.Vec3{Z: 1}, vertexNormals[2])
	assert.Equal(t, math.Vec3{Y: 1}, vertexNormals[3])
}

func TestComputeNormals_ReorderInvariant(t *testing.T) {
	vertices := []math.Vec3{{}, {X: 1}, {Y: 1}, {X: 10}, {X: 11}, {X: 10, Z: 1}}
	a := []Face{{V1: 0, V2: 1, V3: 2}, {V1: 3, V2: 4, V3: 5}}
	b := []Face{{V1: 3, V2: 4, V3: 5}, {V1: 0, V2: 1, V3: 2}}

	fa, va, _ := ComputeNormals(vertices, a)
	fb, vb, _ := ComputeNormals(vertices, b)

	assert.Equal(t, va, vb)
	assert.Equal(t, fa[0], fb[1])
	assert.Equal(t, fa[1], fb[0])
}

func TestNewMesh(t *testing.T) {
	obj, err := formats.ParseOBJ(strings.NewReader("v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\nt 1 0 0\n"))
	require.NoError(t, err)

	m := NewMesh(obj)
	require.Len(t, m.Faces, 1)
	assert.Equal(t, [3]int{0, 1, 2}, m.Faces[0].Indices())
	assert.Equal(t, math.Vec3{Z: 1}, m.Faces[0].Normal)
	assert.Len(t, m.VertexNormals, 3)

	// the store does not alias the parser's slices
	obj.Vertices[0].X = 99
	assert.Equal(t, float32(0), m.Vertices[0].X)
}

func TestScaled(t *testing.T) {
	m := &Mesh{
		Vertices:      []math.Vec3{{X: 1, Y: 2, Z: 3}},
		VertexNormals: []math.Vec3{{Z: 1}},
	}

	s := m.Scaled(7)
	assert.Equal(t, math.Vec3{X: 7, Y: 14, Z: 21}, s.Vertices[0])
	assert.Equal(t, math.Vec3{X: 1, Y: 2, Z: 3}, m.Vertices[0])
	assert.Equal(t, m.VertexNormals, s.VertexNormals)
}

func TestBounds(t *testing.T) {
	m := &Mesh{Vertices: []math.Vec3{{X: -1, Y: 2, Z: 0}, {X: 3, Y: -2, Z: 1}}}

	b := m.Bounds()
	assert.Equal(t, [3]float32{-1, -2, 0}, b.Min)
	assert.Equal(t, [3]float32{3, 2, 1}, b.Max)
	assert.Equal(t, math.Vec3{X: 1, Y: 0, Z: 0.5}, b.Center())
	assert.Equal(t, math.Vec3{X: 4, Y: 4, Z: 1}, b.Size())

	assert.Equal(t, Bounds{}, (&Mesh{}).Bounds())
}
