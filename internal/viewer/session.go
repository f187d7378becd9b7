// Package viewer owns the state of one viewing session: the loaded mesh,
// the playback position, the display toggles and the view rotation.
package viewer

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/meshstep/internal/engine/model"
	"github.com/Faultbox/meshstep/internal/logger"
	"github.com/Faultbox/meshstep/internal/playback"
	"github.com/Faultbox/meshstep/pkg/formats"
	"github.com/Faultbox/meshstep/pkg/math"
	"github.com/Faultbox/meshstep/pkg/transform"
)

// DefaultDragSensitivity is the view rotation in degrees per pixel dragged.
const DefaultDragSensitivity = 0.5

// Options configure a new session.
type Options struct {
	Title           string  // window title prefix, "meshstep" when empty
	ModelScale      float32 // applied to the mesh once; 0 means 1
	Mode            DisplayMode
	Lighting        bool
	DragSensitivity float32 // 0 means DefaultDragSensitivity
}

// Session is the viewer state shared by input handling and rendering.
// It is not safe for concurrent use; the event loop owns it.
type Session struct {
	title  string
	mesh   *model.Mesh
	player *playback.Player

	mode         DisplayMode
	lightEnabled bool

	rotX, rotY  float32
	sensitivity float32
	dragging    bool
	dragFrom    math.Vec2

	closeRequested bool

	log *zap.Logger
}

// Load parses an OBJ file and starts a session on it.
func Load(path string, opts Options) (*Session, error) {
	obj, err := formats.ParseOBJFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}

	mesh := model.NewMesh(obj)
	script := transform.NewScript(obj.Transforms)

	logger.Info("mesh loaded",
		zap.String("path", path),
		zap.Int("vertices", len(mesh.Vertices)),
		zap.Int("faces", len(mesh.Faces)),
		zap.Int("transforms", script.Len()))

	return New(mesh, script, opts), nil
}

// New starts a session on an already built mesh and script. The mesh is
// scaled by opts.ModelScale before playback begins.
func New(mesh *model.Mesh, script *transform.Script, opts Options) *Session {
	if opts.Title == "" {
		opts.Title = "meshstep"
	}
	if opts.ModelScale == 0 {
		opts.ModelScale = 1
	}
	if opts.DragSensitivity == 0 {
		opts.DragSensitivity = DefaultDragSensitivity
	}

	scaled := mesh.Scaled(opts.ModelScale)
	s := &Session{
		title:        opts.Title,
		mesh:         scaled,
		player:       playback.New(scaled.Vertices, script),
		mode:         opts.Mode,
		lightEnabled: opts.Lighting,
		sensitivity:  opts.DragSensitivity,
		log:          logger.Named("viewer"),
	}
	s.logLoaded()
	return s
}

func (s *Session) logLoaded() {
	for _, i := range s.mesh.Degenerate {
		f := s.mesh.Faces[i]
		s.log.Warn("degenerate face",
			zap.Int("face", i),
			zap.Ints("vertices", []int{f.V1, f.V2, f.V3}))
	}

	b := s.mesh.Bounds()
	s.log.Debug("mesh bounds",
		zap.Float32s("min", b.Min[:]),
		zap.Float32s("max", b.Max[:]))

	script := s.player.Script()
	for i, e := range script.Entries() {
		switch {
		case e.Err != nil:
			s.log.Warn("skipping transformation", zap.Int("index", i), zap.String("line", e.Line), zap.Error(e.Err))
		case e.Skipped():
			s.log.Warn("skipping transformation", zap.Int("index", i), zap.String("line", e.Line), zap.Stringer("command", e.Command))
		default:
			s.log.Info("transformation", zap.Int("index", i), zap.Stringer("command", e.Command))
		}
	}
}

// Apply performs a user action.
func (s *Session) Apply(a Action) {
	switch a {
	case ToggleDisplayMode:
		if s.mode == Wireframe {
			s.mode = Filled
		} else {
			s.mode = Wireframe
		}
		s.log.Debug("display mode", zap.Stringer("mode", s.mode))

	case ToggleLighting:
		s.lightEnabled = !s.lightEnabled
		s.log.Debug("lighting", zap.Bool("enabled", s.lightEnabled))

	case Step:
		cursor, wrapped := s.player.Step()
		if e, ok := s.player.Entry(); ok {
			s.log.Info("step", zap.Int("cursor", cursor), zap.String("line", e.Line))
		} else {
			s.log.Info("step", zap.Int("cursor", cursor), zap.Bool("wrapped", wrapped))
		}

	case Quit:
		s.closeRequested = true
	}
}

// BeginDrag starts a view rotation at window position (x, y).
func (s *Session) BeginDrag(x, y float32) {
	s.dragging = true
	s.dragFrom = math.Vec2{X: x, Y: y}
}

// DragTo rotates the view by the distance moved since the last drag
// position. Vertical motion turns around X, horizontal motion around Y.
func (s *Session) DragTo(x, y float32) {
	if !s.dragging {
		return
	}
	to := math.Vec2{X: x, Y: y}
	d := to.Sub(s.dragFrom).Scale(s.sensitivity)
	s.rotX += d.Y
	s.rotY += d.X
	s.dragFrom = to
}

// EndDrag stops the view rotation.
func (s *Session) EndDrag() {
	s.dragging = false
}

// Dragging reports whether a drag is in progress.
func (s *Session) Dragging() bool {
	return s.dragging
}

// Rotation returns the view rotation in degrees around X and Y.
func (s *Session) Rotation() (x, y float32) {
	return s.rotX, s.rotY
}

// Mode returns the current display mode.
func (s *Session) Mode() DisplayMode {
	return s.mode
}

// LightEnabled reports the lighting toggle.
func (s *Session) LightEnabled() bool {
	return s.lightEnabled
}

// LightingActive reports whether shading is applied. Lighting only affects
// filled triangles.
func (s *Session) LightingActive() bool {
	return s.lightEnabled && s.mode == Filled
}

// CloseRequested reports whether Quit has been applied.
func (s *Session) CloseRequested() bool {
	return s.closeRequested
}

// Mesh returns the scaled base mesh.
func (s *Session) Mesh() *model.Mesh {
	return s.mesh
}

// Player returns the playback state.
func (s *Session) Player() *playback.Player {
	return s.player
}

// Title describes the playback position, e.g. "meshstep [2/5] t 1 0 0".
func (s *Session) Title() string {
	e, ok := s.player.Entry()
	if !ok {
		return fmt.Sprintf("%s [0/%d] base", s.title, s.player.Len())
	}
	return fmt.Sprintf("%s [%d/%d] %s", s.title, s.player.Cursor()+1, s.player.Len(), e.Line)
}
