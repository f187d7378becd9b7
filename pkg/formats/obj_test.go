package formats

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/meshstep/pkg/math"
)

const cubeCorner = `# corner of a cube
v 0 0 0
v 1 0 0
v 0 1 0
v 0 0 1
f 1 2 3
f 1 3 4
f 1 4 2
s 2 2 2
t 1 0 0
x 90
`

func TestParseOBJ_Geometry(t *testing.T) {
	obj, err := ParseOBJ(strings.NewReader(cubeCorner))
	require.NoError(t, err)

	require.Len(t, obj.Vertices, 4)
	assert.Equal(t, math.Vec3{X: 1}, obj.Vertices[1])

	require.Len(t, obj.Faces, 3)
	assert.Equal(t, [3]int{0, 1, 2}, obj.Faces[0].V)
	assert.Equal(t, 6, obj.Faces[0].Line)

	for _, f := range obj.Faces {
		for _, idx := range f.V {
			assert.GreaterOrEqual(t, idx, 0)
			assert.Less(t, idx, len(obj.Vertices))
		}
	}
}

func TestParseOBJ_TransformsKeptVerbatim(t *testing.T) {
	obj, err := ParseOBJ(strings.NewReader(cubeCorner))
	require.NoError(t, err)

	assert.Equal(t, []string{"s 2 2 2", "t 1 0 0", "x 90"}, obj.Transforms)
}

func TestParseOBJ_FaceReferenceSlashes(t *testing.T) {
	src := "v 0 0 0\nv 1 0 0\nv 0 1 0\nv 1 1 0\nv 2 0 0\nv 0 2 0\n" +
		"f 4/2/1 5/1/2 6/3/3\n" +
		"f 1//1 2//2 3//3\n"

	obj, err := ParseOBJ(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, obj.Faces, 2)

	assert.Equal(t, [3]int{3, 4, 5}, obj.Faces[0].V)
	assert.Equal(t, [3]int{0, 1, 2}, obj.Faces[1].V)
}

func TestParseOBJ_OneBasedIndex(t *testing.T) {
	obj, err := ParseOBJ(strings.NewReader("v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"))
	require.NoError(t, err)
	assert.Equal(t, 0, obj.Faces[0].V[0])
}

func TestParseOBJ_UnknownTokensSkipped(t *testing.T) {
	src := "o thing\nvt 0 0\nvn 0 0 1\nusemtl red\nv 0 0 0\n\n   \nmtllib a.mtl\n"

	obj, err := ParseOBJ(strings.NewReader(src))
	require.NoError(t, err)
	assert.Len(t, obj.Vertices, 1)
	assert.Empty(t, obj.Faces)
	assert.Empty(t, obj.Transforms)
}

func TestParseOBJ_LongLinesSkipped(t *testing.T) {
	long := strings.Repeat("x", 70000)
	src := "v 0 0 0\nv 1 0 0\nv 0 1 0\n# " + long + "\nvt " + long + "\nf 1 2 3\nt 1 0 0"

	obj, err := ParseOBJ(strings.NewReader(src))
	require.NoError(t, err)
	assert.Len(t, obj.Vertices, 3)
	require.Len(t, obj.Faces, 1)
	assert.Equal(t, 6, obj.Faces[0].Line)
	// the last line has no trailing newline
	assert.Equal(t, []string{"t 1 0 0"}, obj.Transforms)
}

func TestParseOBJ_Errors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantErr error
		line    int
	}{
		{
			name:    "vertex with bad number",
			src:     "v 0 abc 0\n",
			wantErr: ErrMalformedVertex,
			line:    1,
		},
		{
			name:    "vertex with too few coordinates",
			src:     "v 0 0\n",
			wantErr: ErrMalformedVertex,
			line:    1,
		},
		{
			name:    "face with bad integer",
			src:     "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 x/2 3\n",
			wantErr: ErrMalformedFace,
			line:    4,
		},
		{
			name:    "face with too few references",
			src:     "v 0 0 0\nv 1 0 0\nf 1 2\n",
			wantErr: ErrMalformedFace,
			line:    3,
		},
		{
			name:    "face index past the end",
			src:     "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 4\n",
			wantErr: ErrFaceIndexRange,
			line:    4,
		},
		{
			name:    "face index zero",
			src:     "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 0 1 2\n",
			wantErr: ErrFaceIndexRange,
			line:    4,
		},
		{
			name:    "repeated vertex",
			src:     "v 0 0 0\nv 1 0 0\nf 1 2 1\n",
			wantErr: ErrDuplicateFaceIndex,
			line:    3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obj, err := ParseOBJ(strings.NewReader(tt.src))
			require.Error(t, err)
			assert.Nil(t, obj)
			assert.ErrorIs(t, err, tt.wantErr)

			var perr *ParseError
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, tt.line, perr.Line)
		})
	}
}

func TestParseOBJ_BadTransformOperandsDoNotFail(t *testing.T) {
	src := "v 0 0 0\ns abc 1 1\nt 1\nc\n"

	obj, err := ParseOBJ(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, []string{"s abc 1 1", "t 1", "c"}, obj.Transforms)
}

func TestParseOBJFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corner.obj")
	require.NoError(t, os.WriteFile(path, []byte(cubeCorner), 0644))

	obj, err := ParseOBJFile(path)
	require.NoError(t, err)
	assert.Len(t, obj.Vertices, 4)
}

func TestParseOBJFile_Missing(t *testing.T) {
	_, err := ParseOBJFile("/nonexistent/path/mesh.obj")
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseOBJFile_Testdata(t *testing.T) {
	obj, err := ParseOBJFile(filepath.Join("testdata", "cube.obj"))
	require.NoError(t, err)

	assert.Len(t, obj.Vertices, 8)
	assert.Len(t, obj.Faces, 12)
	assert.Equal(t, [3]int{2, 1, 3}, obj.Faces[1].V)

	// "s off" is a smoothing group statement, kept and later skipped as a script line
	assert.Equal(t, []string{"s off", "s 0.5 0.5 0.5", "y 45", "t 0 0.25 0", "c 1 0.2 0", "e 0 1 0"}, obj.Transforms)
}
