package viewer

import (
	"github.com/Faultbox/meshstep/internal/engine/model"
	"github.com/Faultbox/meshstep/pkg/math"
)

// Frame is everything the renderer needs for one frame. Its slices are
// owned by the session and must not be modified.
type Frame struct {
	// Faces index into Base, Previous and Current alike.
	Faces         []model.Face
	VertexNormals []math.Vec3

	Base     []math.Vec3
	Previous []math.Vec3
	Current  []math.Vec3

	Cursor       int
	ShowBase     bool // only before the first step
	ShowPrevious bool // once a step has been taken

	Mode      DisplayMode
	Lighting  bool // shading applies to this frame
	RotationX float32
	RotationY float32
}

// Frame returns the state to draw.
func (s *Session) Frame() Frame {
	cursor := s.player.Cursor()
	return Frame{
		Faces:         s.mesh.Faces,
		VertexNormals: s.mesh.VertexNormals,
		Base:          s.player.Base(),
		Previous:      s.player.Previous(),
		Current:       s.player.Current(),
		Cursor:        cursor,
		ShowBase:      cursor < 0,
		ShowPrevious:  cursor >= 0,
		Mode:          s.mode,
		Lighting:      s.LightingActive(),
		RotationX:     s.rotX,
		RotationY:     s.rotY,
	}
}
