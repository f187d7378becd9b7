package renderer

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/meshstep/internal/engine/model"
	"github.com/Faultbox/meshstep/internal/viewer"
	"github.com/Faultbox/meshstep/pkg/math"
)

// uploadFaces copies the face indices to the element buffer when the
// topology differs from the last upload. Every snapshot shares it.
func (r *Renderer) uploadFaces(f viewer.Frame) {
	if sameFaces(r.uploaded, f.Faces) {
		return
	}

	r.uploaded = f.Faces
	r.indexCount = int32(len(f.Faces) * 3)
	if r.indexCount == 0 {
		return
	}

	indices := make([]uint32, 0, r.indexCount)
	for _, face := range f.Faces {
		indices = append(indices, uint32(face.V1), uint32(face.V2), uint32(face.V3))
	}

	gl.BindVertexArray(r.meshVAO)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.meshEBO)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, unsafe.Pointer(&indices[0]), gl.STATIC_DRAW)
	gl.BindVertexArray(0)

	r.log.Debug("mesh topology uploaded", zap.Int("faces", len(f.Faces)))
}

func sameFaces(a, b []model.Face) bool {
	return len(a) == len(b) && len(a) > 0 && &a[0] == &b[0]
}

// drawSnapshot draws one vertex set over the shared topology.
func (r *Renderer) drawSnapshot(f viewer.Frame, vertices []math.Vec3, color [3]float32) {
	if len(vertices) == 0 {
		return
	}
	r.vertexBuf = interleave(r.vertexBuf[:0], vertices, f.VertexNormals)

	gl.BindVertexArray(r.meshVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.meshVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(r.vertexBuf)*4, unsafe.Pointer(&r.vertexBuf[0]), gl.DYNAMIC_DRAW)

	switch f.Mode {
	case viewer.Filled:
		// Push the fill back so the edges drawn on top stay visible.
		gl.Enable(gl.POLYGON_OFFSET_FILL)
		gl.PolygonOffset(1, 1)
		r.setColor(color, f.Lighting)
		r.drawElements(gl.FILL)
		gl.Disable(gl.POLYGON_OFFSET_FILL)

		r.setColor(EdgeColor, false)
		r.drawElements(gl.LINE)

	default:
		r.setColor(color, false)
		r.drawElements(gl.LINE)
	}

	gl.BindVertexArray(0)
}

func (r *Renderer) drawElements(polygonMode uint32) {
	gl.PolygonMode(gl.FRONT_AND_BACK, polygonMode)
	gl.DrawElements(gl.TRIANGLES, r.indexCount, gl.UNSIGNED_INT, nil)
	gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
}

// interleave appends position and normal pairs to buf. A vertex without a
// normal gets a zero one.
func interleave(buf []float32, vertices, normals []math.Vec3) []float32 {
	for i, v := range vertices {
		var n math.Vec3
		if i < len(normals) {
			n = normals[i]
		}
		buf = append(buf, v.X, v.Y, v.Z, n.X, n.Y, n.Z)
	}
	return buf
}

func boolToInt(b bool) int32 {
	if b {
		return 1
	}
	return 0
}
