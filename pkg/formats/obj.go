// Package formats provides parsers for the mesh file formats meshstep reads.
package formats

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/Faultbox/meshstep/pkg/math"
)

// OBJ format errors.
var (
	ErrMalformedVertex    = errors.New("malformed vertex")
	ErrMalformedFace      = errors.New("malformed face")
	ErrFaceIndexRange     = errors.New("face index out of range")
	ErrDuplicateFaceIndex = errors.New("face references a vertex twice")
)

// transformTokens are the leading tokens of transformation script lines.
var transformTokens = map[string]bool{
	"s": true, // scale
	"t": true, // translate
	"x": true, // rotate about X
	"y": true, // rotate about Y
	"z": true, // rotate about Z
	"c": true, // shear
	"e": true, // reflect
}

// IsTransformToken reports whether tok starts a transformation script line.
func IsTransformToken(tok string) bool {
	return transformTokens[tok]
}

// ParseError describes a line that could not be parsed.
type ParseError struct {
	Line int    // 1-based line number
	Text string // raw line content
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// OBJFace is a triangle referencing three vertices by 0-based index.
type OBJFace struct {
	V    [3]int
	Line int // source line, for error reporting
}

// OBJ holds the geometry and transformation script parsed from one file.
type OBJ struct {
	Vertices []math.Vec3
	Faces    []OBJFace

	// Transforms holds script lines verbatim, in file order. Their operands
	// are interpreted later, so a bad operand never fails the load.
	Transforms []string
}

// ParseOBJ parses an OBJ file with an embedded transformation script.
func ParseOBJ(r io.Reader) (*OBJ, error) {
	obj := &OBJ{}
	br := bufio.NewReader(r)

	lineNo := 0
	for {
		raw, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, fmt.Errorf("reading OBJ data: %w", err)
		}
		if raw == "" && err == io.EOF {
			break
		}
		lineNo++
		line := strings.TrimSpace(raw)
		fields := strings.Fields(line)
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		switch tok := fields[0]; {
		case tok == "v":
			v, err := parseVertex(fields[1:])
			if err != nil {
				return nil, &ParseError{Line: lineNo, Text: line, Err: err}
			}
			obj.Vertices = append(obj.Vertices, v)

		case tok == "f":
			face, err := parseFace(fields[1:])
			if err != nil {
				return nil, &ParseError{Line: lineNo, Text: line, Err: err}
			}
			face.Line = lineNo
			obj.Faces = append(obj.Faces, face)

		case IsTransformToken(tok):
			obj.Transforms = append(obj.Transforms, line)
		}

		if err == io.EOF {
			break
		}
	}

	if err := obj.validateFaces(); err != nil {
		return nil, err
	}
	return obj, nil
}

// ParseOBJBytes parses OBJ data held in memory.
func ParseOBJBytes(data []byte) (*OBJ, error) {
	return ParseOBJ(bytes.NewReader(data))
}

// ParseOBJFile parses an OBJ file from disk.
func ParseOBJFile(path string) (*OBJ, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading OBJ file: %w", err)
	}
	return ParseOBJBytes(data)
}

func parseVertex(args []string) (math.Vec3, error) {
	if len(args) < 3 {
		return math.Vec3{}, fmt.Errorf("%w: expected 3 coordinates, got %d", ErrMalformedVertex, len(args))
	}

	var c [3]float32
	for i := range c {
		f, err := strconv.ParseFloat(args[i], 32)
		if err != nil {
			return math.Vec3{}, fmt.Errorf("%w: coordinate %d: %v", ErrMalformedVertex, i+1, err)
		}
		c[i] = float32(f)
	}
	return math.Vec3{X: c[0], Y: c[1], Z: c[2]}, nil
}

// parseFace reads the first three vertex references of a face line.
// A reference is "v", "v/vt", "v//vn" or "v/vt/vn"; only v is used.
func parseFace(args []string) (OBJFace, error) {
	if len(args) < 3 {
		return OBJFace{}, fmt.Errorf("%w: expected 3 vertex references, got %d", ErrMalformedFace, len(args))
	}

	var face OBJFace
	for i := range face.V {
		ref := args[i]
		if slash := strings.IndexByte(ref, '/'); slash >= 0 {
			ref = ref[:slash]
		}
		idx, err := strconv.Atoi(ref)
		if err != nil {
			return OBJFace{}, fmt.Errorf("%w: reference %q: %v", ErrMalformedFace, args[i], err)
		}
		face.V[i] = idx - 1
	}
	return face, nil
}

// validateFaces checks indices once all vertices are known.
func (o *OBJ) validateFaces() error {
	n := len(o.Vertices)
	for _, f := range o.Faces {
		for _, idx := range f.V {
			if idx < 0 || idx >= n {
				return &ParseError{
					Line: f.Line,
					Text: fmt.Sprintf("f %d %d %d", f.V[0]+1, f.V[1]+1, f.V[2]+1),
					Err:  fmt.Errorf("%w: %d not in [1, %d]", ErrFaceIndexRange, idx+1, n),
				}
			}
		}
		if f.V[0] == f.V[1] || f.V[1] == f.V[2] || f.V[0] == f.V[2] {
			return &ParseError{
				Line: f.Line,
				Text: fmt.Sprintf("f %d %d %d", f.V[0]+1, f.V[1]+1, f.V[2]+1),
				Err:  ErrDuplicateFaceIndex,
			}
		}
	}
	return nil
}
