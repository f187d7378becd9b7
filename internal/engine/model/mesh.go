package model

import (
	"github.com/Faultbox/meshstep/pkg/formats"
	"github.com/Faultbox/meshstep/pkg/math"
)

// NewMesh builds the mesh store from parsed file data and computes its
// normals. The returned mesh shares no memory with obj.
func NewMesh(obj *formats.OBJ) *Mesh {
	vertices := make([]math.Vec3, len(obj.Vertices))
	copy(vertices, obj.Vertices)

	faces := make([]Face, len(obj.Faces))
	for i, f := range obj.Faces {
		faces[i] = Face{V1: f.V[0], V2: f.V[1], V3: f.V[2]}
	}

	faceNormals, vertexNormals, degenerate := ComputeNormals(vertices, faces)
	for i := range faces {
		faces[i].Normal = faceNormals[i]
	}

	return &Mesh{
		Vertices:      vertices,
		Faces:         faces,
		VertexNormals: vertexNormals,
		Degenerate:    degenerate,
	}
}

// Scaled returns a copy of the mesh with every vertex multiplied by factor.
// Faces and normals are shared with the receiver; a uniform positive scale
// leaves normal directions unchanged.
func (m *Mesh) Scaled(factor float32) *Mesh {
	vertices := make([]math.Vec3, len(m.Vertices))
	for i, v := range m.Vertices {
		vertices[i] = v.Scale(factor)
	}
	return &Mesh{
		Vertices:      vertices,
		Faces:         m.Faces,
		VertexNormals: m.VertexNormals,
		Degenerate:    m.Degenerate,
	}
}

// Bounds returns the axis-aligned bounding box of the vertices.
// An empty mesh has a zero box.
func (m *Mesh) Bounds() Bounds {
	return BoundsOf(m.Vertices)
}

// BoundsOf returns the axis-aligned bounding box of a vertex set.
func BoundsOf(vertices []math.Vec3) Bounds {
	if len(vertices) == 0 {
		return Bounds{}
	}

	bounds := Bounds{
		Min: [3]float32{1e10, 1e10, 1e10},
		Max: [3]float32{-1e10, -1e10, -1e10},
	}
	for _, v := range vertices {
		updateBounds(&bounds, v.Array())
	}
	return bounds
}

func updateBounds(b *Bounds, p [3]float32) {
	if p[0] < b.Min[0] {
		b.Min[0] = p[0]
	}
	if p[1] < b.Min[1] {
		b.Min[1] = p[1]
	}
	if p[2] < b.Min[2] {
		b.Min[2] = p[2]
	}
	if p[0] > b.Max[0] {
		b.Max[0] = p[0]
	}
	if p[1] > b.Max[1] {
		b.Max[1] = p[1]
	}
	if p[2] > b.Max[2] {
		b.Max[2] = p[2]
	}
}
