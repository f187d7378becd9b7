package lighting

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/meshstep/pkg/math"
)

func TestDefaultLight(t *testing.T) {
	l := DefaultLight()

	assert.Equal(t, math.Vec3{X: 1, Y: 1, Z: 1}, l.Position)
	assert.Equal(t, [3]float32{0.2, 0.2, 0.2}, l.Ambient)
	assert.Equal(t, [3]float32{0.8, 0.8, 0.8}, l.Diffuse)
	assert.Equal(t, [3]float32{1, 1, 1}, l.Specular)
}

func TestDefaultMaterial(t *testing.T) {
	m := DefaultMaterial()

	assert.Equal(t, float32(50), m.Shininess)
	assert.Equal(t, [3]float32{1, 1, 1}, m.Specular)
	assert.True(t, m.TrackColor)
}

func TestEyePosition(t *testing.T) {
	l := DefaultLight()

	assert.Equal(t, l.Position, l.EyePosition(math.Identity()))
	assert.Equal(t, math.Vec3{X: 2, Y: 1, Z: 1}, l.EyePosition(math.Translate(1, 0, 0)))
}
