// Package lighting provides the light and material used for shaded meshes.
package lighting

import "github.com/Faultbox/meshstep/pkg/math"

// Light is a single positional light with Phong terms.
type Light struct {
	Position math.Vec3 // world space
	Ambient  [3]float32
	Diffuse  [3]float32
	Specular [3]float32
}

// Material describes how a surface reflects light. When TrackColor is set,
// the ambient and diffuse reflectance follow the draw colour and Ambient and
// Diffuse are ignored.
type Material struct {
	Ambient    [3]float32
	Diffuse    [3]float32
	Specular   [3]float32
	Shininess  float32
	TrackColor bool
}

// DefaultLight returns a white light at (1, 1, 1).
func DefaultLight() Light {
	return Light{
		Position: math.Vec3{X: 1, Y: 1, Z: 1},
		Ambient:  [3]float32{0.2, 0.2, 0.2},
		Diffuse:  [3]float32{0.8, 0.8, 0.8},
		Specular: [3]float32{1, 1, 1},
	}
}

// DefaultMaterial returns a glossy material that takes its colour from the
// snapshot being drawn.
func DefaultMaterial() Material {
	return Material{
		Ambient:    [3]float32{0.2, 0.2, 0.2},
		Diffuse:    [3]float32{0.8, 0.8, 0.8},
		Specular:   [3]float32{1, 1, 1},
		Shininess:  50,
		TrackColor: true,
	}
}

// EyePosition returns the light position in eye space for the given view.
func (l Light) EyePosition(view math.Mat4) math.Vec3 {
	return view.TransformVec3(l.Position)
}
