// Package camera provides the viewer camera.
package camera

import (
	"github.com/Faultbox/meshstep/pkg/math"
)

// ViewCamera looks from a fixed eye point at the origin. The scene can be
// turned in front of it by RotationX and RotationY, in degrees.
type ViewCamera struct {
	Eye    math.Vec3
	Center math.Vec3
	Up     math.Vec3

	// Projection
	FovY   float32 // degrees
	Near   float32
	Far    float32
	Aspect float32

	RotationX float32
	RotationY float32
}

// New creates a camera at eye looking at the origin with +Y up.
func New(eye math.Vec3, fovY, near, far float32) *ViewCamera {
	return &ViewCamera{
		Eye:    eye,
		Up:     math.Vec3{Y: 1},
		FovY:   fovY,
		Near:   near,
		Far:    far,
		Aspect: 1,
	}
}

// SetViewport updates the aspect ratio. A zero height (minimised window)
// keeps the previous aspect.
func (c *ViewCamera) SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.Aspect = float32(width) / float32(height)
}

// SetRotation sets the scene rotation in degrees.
func (c *ViewCamera) SetRotation(x, y float32) {
	c.RotationX = x
	c.RotationY = y
}

// LookAtMatrix returns the view matrix without the scene rotation.
func (c *ViewCamera) LookAtMatrix() math.Mat4 {
	return math.LookAt(c.Eye, c.Center, c.Up)
}

// ViewMatrix returns LookAt · RotateX · RotateY: the scene is turned about
// Y first, then about X, then viewed from the eye.
func (c *ViewCamera) ViewMatrix() math.Mat4 {
	rx := math.RotateX(math.DegToRad(c.RotationX))
	ry := math.RotateY(math.DegToRad(c.RotationY))
	return c.LookAtMatrix().Mul(rx).Mul(ry)
}

// ProjectionMatrix returns the perspective projection.
func (c *ViewCamera) ProjectionMatrix() math.Mat4 {
	return math.Perspective(math.DegToRad(c.FovY), c.Aspect, c.Near, c.Far)
}
