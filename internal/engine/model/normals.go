package model

import "github.com/Faultbox/meshstep/pkg/math"

// ComputeNormals derives one normal per face and one per vertex.
//
// A face normal is (v2-v1) x (v3-v1) normalised. Collinear or coincident
// corners give a zero vector and the face index is listed in degenerate.
// A vertex normal is the normalised, unweighted sum of the normals of every
// face using the vertex; a vertex no face uses stays the zero vector.
func ComputeNormals(vertices []math.Vec3, faces []Face) (faceNormals, vertexNormals []math.Vec3, degenerate []int) {
	faceNormals = make([]math.Vec3, len(faces))
	vertexNormals = make([]math.Vec3, len(vertices))

	for i, f := range faces {
		v1, v2, v3 := vertices[f.V1], vertices[f.V2], vertices[f.V3]
		n := v2.Sub(v1).Cross(v3.Sub(v1))

		// Degenerate triangle detection
		if n.Length() == 0 || !n.IsFinite() {
			degenerate = append(degenerate, i)
			continue
		}
		n = n.Normalize()
		faceNormals[i] = n

		vertexNormals[f.V1] = vertexNormals[f.V1].Add(n)
		vertexNormals[f.V2] = vertexNormals[f.V2].Add(n)
		vertexNormals[f.V3] = vertexNormals[f.V3].Add(n)
	}

	for i, n := range vertexNormals {
		if n.IsZero() {
			continue
		}
		vertexNormals[i] = n.Normalize()
	}

	return faceNormals, vertexNormals, degenerate
}
