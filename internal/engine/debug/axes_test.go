package debug

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func vertex(buf []float32, i int) [3]float32 {
	return [3]float32{buf[i*3], buf[i*3+1], buf[i*3+2]}
}

func TestGenerateAxisVertices(t *testing.T) {
	lines, heads := GenerateAxisVertices(DefaultAxisLength, DefaultArrowSize)

	require.Len(t, lines, 3*AxisLineVertexCount*3)
	require.Len(t, heads, 3*AxisHeadVertexCount*3)

	for axis := 0; axis < 3; axis++ {
		from := vertex(lines, axis*AxisLineVertexCount)
		to := vertex(lines, axis*AxisLineVertexCount+1)
		tip := vertex(heads, axis*AxisHeadVertexCount)

		for c := 0; c < 3; c++ {
			if c == axis {
				assert.Equal(t, float32(-1), from[c], "axis %d", axis)
				assert.Equal(t, float32(1), to[c], "axis %d", axis)
			} else {
				assert.Zero(t, from[c], "axis %d", axis)
				assert.Zero(t, to[c], "axis %d", axis)
			}
		}

		// the arrow points at the positive end of its line
		assert.Equal(t, to, tip, "axis %d", axis)
		for v := 1; v < AxisHeadVertexCount; v++ {
			base := vertex(heads, axis*AxisHeadVertexCount+v)
			assert.InDelta(t, 1-DefaultArrowSize, base[axis], 1e-6, "axis %d", axis)
		}
	}
}

func TestAxisColors(t *testing.T) {
	assert.Equal(t, [3]float32{0, 1, 0}, AxisColors[0])
	assert.Equal(t, [3]float32{0, 0, 1}, AxisColors[1])
	assert.Equal(t, [3]float32{1, 0, 0}, AxisColors[2])
}
