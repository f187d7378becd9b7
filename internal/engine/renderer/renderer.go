// Package renderer draws viewer frames with OpenGL.
package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/meshstep/internal/engine/camera"
	"github.com/Faultbox/meshstep/internal/engine/debug"
	"github.com/Faultbox/meshstep/internal/engine/lighting"
	"github.com/Faultbox/meshstep/internal/engine/model"
	"github.com/Faultbox/meshstep/internal/engine/renderer/shaders"
	"github.com/Faultbox/meshstep/internal/engine/shader"
	"github.com/Faultbox/meshstep/internal/logger"
	"github.com/Faultbox/meshstep/internal/viewer"
)

// Snapshot colours.
var (
	BaseColor     = [3]float32{0, 0, 1}
	PreviousColor = [3]float32{0, 1, 0}
	CurrentColor  = [3]float32{1, 0, 0}
	EdgeColor     = [3]float32{0, 0, 0}
)

// Config holds renderer configuration.
type Config struct {
	Background [3]float32
	Light      lighting.Light
	Material   lighting.Material
}

// DefaultConfig returns a grey background with the default light and material.
func DefaultConfig() Config {
	return Config{
		Background: [3]float32{0.5, 0.5, 0.5},
		Light:      lighting.DefaultLight(),
		Material:   lighting.DefaultMaterial(),
	}
}

// Renderer handles all OpenGL rendering.
type Renderer struct {
	config  Config
	program *shader.Program
	log     *zap.Logger

	axesVAO uint32
	axesVBO uint32

	meshVAO    uint32
	meshVBO    uint32
	meshEBO    uint32
	indexCount int32
	uploaded   []model.Face // topology currently in meshEBO
	vertexBuf  []float32
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
		log:    logger.Named("renderer"),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	bg := cfg.Background
	gl.ClearColor(bg[0], bg[1], bg[2], 1.0)

	var err error
	r.program, err = shader.NewProgram(shaders.MeshVertexShader, shaders.MeshFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("mesh shader: %w", err)
	}

	r.createAxes()
	r.createMeshBuffers()

	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	r.log.Debug("closing renderer")
	for _, vao := range []*uint32{&r.axesVAO, &r.meshVAO} {
		if *vao != 0 {
			gl.DeleteVertexArrays(1, vao)
		}
	}
	for _, buf := range []*uint32{&r.axesVBO, &r.meshVBO, &r.meshEBO} {
		if *buf != 0 {
			gl.DeleteBuffers(1, buf)
		}
	}
	if r.program != nil {
		r.program.Delete()
	}
}

// Resize handles window resize. width and height are in pixels.
func (r *Renderer) Resize(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
	r.log.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Draw renders one frame: the axes, then the base geometry before the first
// step or the previous geometry after it, then the current geometry.
func (r *Renderer) Draw(f viewer.Frame, cam *camera.ViewCamera) {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	cam.SetRotation(f.RotationX, f.RotationY)
	view := cam.ViewMatrix()
	proj := cam.ProjectionMatrix()

	r.program.Use()
	gl.UniformMatrix4fv(r.program.Uniform("uView"), 1, false, view.Ptr())
	gl.UniformMatrix4fv(r.program.Uniform("uProjection"), 1, false, proj.Ptr())
	r.setLightUniforms(cam)

	r.drawAxes()

	if len(f.Faces) == 0 {
		return
	}
	r.uploadFaces(f)

	if f.ShowBase {
		r.drawSnapshot(f, f.Base, BaseColor)
	}
	if f.ShowPrevious {
		r.drawSnapshot(f, f.Previous, PreviousColor)
	}
	r.drawSnapshot(f, f.Current, CurrentColor)
}

func (r *Renderer) setLightUniforms(cam *camera.ViewCamera) {
	l, m := r.config.Light, r.config.Material

	// The light is fixed in the world and does not follow the scene rotation.
	pos := l.EyePosition(cam.LookAtMatrix())
	gl.Uniform3f(r.program.Uniform("uLightPos"), pos.X, pos.Y, pos.Z)
	gl.Uniform3fv(r.program.Uniform("uLightAmbient"), 1, &l.Ambient[0])
	gl.Uniform3fv(r.program.Uniform("uLightDiffuse"), 1, &l.Diffuse[0])
	gl.Uniform3fv(r.program.Uniform("uLightSpecular"), 1, &l.Specular[0])

	gl.Uniform3fv(r.program.Uniform("uMatAmbient"), 1, &m.Ambient[0])
	gl.Uniform3fv(r.program.Uniform("uMatDiffuse"), 1, &m.Diffuse[0])
	gl.Uniform3fv(r.program.Uniform("uMatSpecular"), 1, &m.Specular[0])
	gl.Uniform1f(r.program.Uniform("uShininess"), m.Shininess)
	gl.Uniform1i(r.program.Uniform("uTrackColor"), boolToInt(m.TrackColor))
}

func (r *Renderer) setColor(c [3]float32, lit bool) {
	gl.Uniform3f(r.program.Uniform("uColor"), c[0], c[1], c[2])
	gl.Uniform1i(r.program.Uniform("uLighting"), boolToInt(lit))
}

func (r *Renderer) createAxes() {
	lines, heads := debug.GenerateAxisVertices(debug.DefaultAxisLength, debug.DefaultArrowSize)
	vertices := append(append([]float32{}, lines...), heads...)

	gl.GenVertexArrays(1, &r.axesVAO)
	gl.BindVertexArray(r.axesVAO)

	gl.GenBuffers(1, &r.axesVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.axesVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)

	// Position only; the normal attribute stays disabled and lighting is off.
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)
	gl.EnableVertexAttribArray(0)

	gl.BindVertexArray(0)
}

func (r *Renderer) drawAxes() {
	gl.BindVertexArray(r.axesVAO)
	headStart := int32(3 * debug.AxisLineVertexCount)
	for i, c := range debug.AxisColors {
		r.setColor(c, false)
		gl.DrawArrays(gl.LINES, int32(i*debug.AxisLineVertexCount), debug.AxisLineVertexCount)
		gl.DrawArrays(gl.TRIANGLES, headStart+int32(i*debug.AxisHeadVertexCount), debug.AxisHeadVertexCount)
	}
	gl.BindVertexArray(0)
}

func (r *Renderer) createMeshBuffers() {
	gl.GenVertexArrays(1, &r.meshVAO)
	gl.BindVertexArray(r.meshVAO)

	gl.GenBuffers(1, &r.meshVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.meshVBO)

	// Interleaved position and normal
	stride := int32(6 * 4)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 12)
	gl.EnableVertexAttribArray(1)

	gl.GenBuffers(1, &r.meshEBO)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.meshEBO)

	gl.BindVertexArray(0)
}
