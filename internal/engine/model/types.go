// Package model holds the loaded mesh and derives its normals.
package model

import "github.com/Faultbox/meshstep/pkg/math"

// Face is a triangle referencing three vertices by 0-based index.
type Face struct {
	V1, V2, V3 int
	Normal     math.Vec3 // unit length, or zero for a degenerate face
}

// Indices returns the three vertex indices in winding order.
func (f Face) Indices() [3]int {
	return [3]int{f.V1, f.V2, f.V3}
}

// Mesh is the immutable base geometry of a loaded file.
type Mesh struct {
	Vertices      []math.Vec3
	Faces         []Face
	VertexNormals []math.Vec3

	// Degenerate lists faces whose normal could not be computed.
	Degenerate []int
}

// Bounds holds the axis-aligned bounding box of the mesh.
type Bounds struct {
	Min [3]float32
	Max [3]float32
}

// Center returns the midpoint of the box.
func (b Bounds) Center() math.Vec3 {
	return math.Vec3{
		X: (b.Min[0] + b.Max[0]) / 2,
		Y: (b.Min[1] + b.Max[1]) / 2,
		Z: (b.Min[2] + b.Max[2]) / 2,
	}
}

// Size returns the extent of the box on each axis.
func (b Bounds) Size() math.Vec3 {
	return math.Vec3{
		X: b.Max[0] - b.Min[0],
		Y: b.Max[1] - b.Min[1],
		Z: b.Max[2] - b.Min[2],
	}
}
