package camera

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/meshstep/pkg/math"
)

const tol = 1e-5

func newTestCamera() *ViewCamera {
	return New(math.Vec3{X: 1.5, Y: 1.5, Z: 1.5}, 45, 0.1, 100)
}

func TestOriginOnViewAxis(t *testing.T) {
	c := newTestCamera()

	p := c.ViewMatrix().TransformVec3(math.Vec3{})
	eyeDist := c.Eye.Length()

	assert.InDelta(t, 0, p.X, tol)
	assert.InDelta(t, 0, p.Y, tol)
	assert.InDelta(t, -eyeDist, p.Z, tol)
}

func TestNoRotationIsLookAt(t *testing.T) {
	c := newTestCamera()
	assert.Equal(t, c.LookAtMatrix(), c.ViewMatrix())
}

func TestRotationOrder(t *testing.T) {
	c := newTestCamera()
	c.SetRotation(90, 90)

	// Y turns +Z onto +X, then X leaves +X alone.
	got := c.ViewMatrix().TransformVec3(math.Vec3{Z: 1})
	want := c.LookAtMatrix().TransformVec3(math.Vec3{X: 1})

	assert.InDelta(t, want.X, got.X, tol)
	assert.InDelta(t, want.Y, got.Y, tol)
	assert.InDelta(t, want.Z, got.Z, tol)
}

func TestSetViewport(t *testing.T) {
	c := newTestCamera()

	c.SetViewport(640, 480)
	assert.InDelta(t, 640.0/480.0, c.Aspect, tol)

	c.SetViewport(640, 0)
	assert.InDelta(t, 640.0/480.0, c.Aspect, tol)
}

func TestProjectionMatrix(t *testing.T) {
	c := newTestCamera()
	c.SetViewport(100, 100)

	m := c.ProjectionMatrix()
	assert.Equal(t, m[0], m[5])
	assert.Equal(t, float32(-1), m[11])
}
