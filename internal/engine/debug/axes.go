// Package debug provides reference geometry drawn alongside the mesh.
package debug

// Axis geometry defaults.
const (
	DefaultAxisLength = 1.0
	DefaultArrowSize  = 0.05
)

// AxisColors are the line colours of the X, Y and Z axes.
var AxisColors = [3][3]float32{
	{0, 1, 0}, // X green
	{0, 0, 1}, // Y blue
	{1, 0, 0}, // Z red
}

// AxisLineVertexCount is the number of line vertices per axis.
const AxisLineVertexCount = 2

// AxisHeadVertexCount is the number of arrow head vertices per axis.
const AxisHeadVertexCount = 3

// GenerateAxisVertices creates the three coordinate axes, each a line from
// -length to +length with a triangular arrow head at the positive end.
// lines holds 6 vertices and heads 9, both as [x, y, z] per vertex, in
// X, Y, Z order so axis i starts at vertex i*AxisLineVertexCount in lines
// and i*AxisHeadVertexCount in heads.
func GenerateAxisVertices(length, arrowSize float32) (lines, heads []float32) {
	l, a := length, arrowSize
	back := l - a

	lines = []float32{
		-l, 0, 0, l, 0, 0,
		0, -l, 0, 0, l, 0,
		0, 0, -l, 0, 0, l,
	}
	heads = []float32{
		// X head in the XY plane
		l, 0, 0, back, a, 0, back, -a, 0,
		// Y head in the XY plane
		0, l, 0, a, back, 0, -a, back, 0,
		// Z head in the XZ plane
		0, 0, l, a, 0, back, -a, 0, back,
	}
	return lines, heads
}
