// Package transform interprets transformation script lines and composes
// them into affine matrices.
package transform

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Faultbox/meshstep/pkg/math"
)

// Script line errors.
var (
	ErrEmptyLine      = errors.New("empty script line")
	ErrUnknownCommand = errors.New("unknown transform command")
	ErrMissingOperand = errors.New("missing operand")
)

// OperandError reports an operand that is not a number.
type OperandError struct {
	Index int // 1-based operand position
	Text  string
	Err   error
}

func (e *OperandError) Error() string {
	return fmt.Sprintf("operand %d %q: %v", e.Index, e.Text, e.Err)
}

func (e *OperandError) Unwrap() error {
	return e.Err
}

// Kind identifies a command variant.
type Kind uint8

// Command kinds, one per script token.
const (
	ScaleKind     Kind = iota // s sx sy sz
	TranslateKind             // t tx ty tz
	RotateXKind               // x degrees
	RotateYKind               // y degrees
	RotateZKind               // z degrees
	ShearKind                 // c shx shy shz
	ReflectKind               // e ex ey ez
)

var kindTokens = map[string]Kind{
	"s": ScaleKind,
	"t": TranslateKind,
	"x": RotateXKind,
	"y": RotateYKind,
	"z": RotateZKind,
	"c": ShearKind,
	"e": ReflectKind,
}

// KindForToken returns the kind a script token stands for.
func KindForToken(tok string) (Kind, bool) {
	k, ok := kindTokens[tok]
	return k, ok
}

// Arity returns the number of numeric operands the kind takes.
func (k Kind) Arity() int {
	switch k {
	case RotateXKind, RotateYKind, RotateZKind:
		return 1
	default:
		return 3
	}
}

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case ScaleKind:
		return "Scale"
	case TranslateKind:
		return "Translate"
	case RotateXKind:
		return "RotateX"
	case RotateYKind:
		return "RotateY"
	case RotateZKind:
		return "RotateZ"
	case ShearKind:
		return "Shear"
	case ReflectKind:
		return "Reflect"
	default:
		return fmt.Sprintf("Unknown(%d)", k)
	}
}

// Axis selects a rotation axis.
type Axis uint8

// Rotation axes.
const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// Command is one parsed script operation. The set of implementations is
// closed: Scale, Translate, Rotate, Shear and Reflect.
type Command interface {
	Kind() Kind
	String() string
	command()
}

// Scale multiplies each coordinate by its factor.
type Scale struct{ X, Y, Z float32 }

// Translate offsets each coordinate.
type Translate struct{ X, Y, Z float32 }

// Rotate turns around a coordinate axis by Degrees, right-handed.
type Rotate struct {
	Axis    Axis
	Degrees float32
}

// Shear holds the three shear operands. Only one shear family applies,
// see Matrix.
type Shear struct{ X, Y, Z float32 }

// Reflect mirrors each axis whose flag is exactly 1.
type Reflect struct{ X, Y, Z float32 }

func (Scale) Kind() Kind     { return ScaleKind }
func (Translate) Kind() Kind { return TranslateKind }
func (Shear) Kind() Kind     { return ShearKind }
func (Reflect) Kind() Kind   { return ReflectKind }

func (r Rotate) Kind() Kind {
	switch r.Axis {
	case AxisY:
		return RotateYKind
	case AxisZ:
		return RotateZKind
	default:
		return RotateXKind
	}
}

func (c Scale) String() string     { return fmt.Sprintf("Scale(%g, %g, %g)", c.X, c.Y, c.Z) }
func (c Translate) String() string { return fmt.Sprintf("Translate(%g, %g, %g)", c.X, c.Y, c.Z) }
func (c Rotate) String() string    { return fmt.Sprintf("%s(%g°)", c.Kind(), c.Degrees) }
func (c Shear) String() string     { return fmt.Sprintf("Shear(%g, %g, %g)", c.X, c.Y, c.Z) }
func (c Reflect) String() string   { return fmt.Sprintf("Reflect(%g, %g, %g)", c.X, c.Y, c.Z) }

func (Scale) command()     {}
func (Translate) command() {}
func (Rotate) command()    {}
func (Shear) command()     {}
func (Reflect) command()   {}

// Parse parses one script line such as "t 1 0 0" or "y 45".
// Operands beyond the command's arity are ignored.
func Parse(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, ErrEmptyLine
	}

	kind, ok := KindForToken(fields[0])
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCommand, fields[0])
	}

	args := fields[1:]
	if len(args) < kind.Arity() {
		return nil, fmt.Errorf("%w: %s takes %d, got %d", ErrMissingOperand, kind, kind.Arity(), len(args))
	}

	var v [3]float32
	for i := 0; i < kind.Arity(); i++ {
		f, err := strconv.ParseFloat(args[i], 32)
		if err != nil {
			return nil, &OperandError{Index: i + 1, Text: args[i], Err: err}
		}
		v[i] = float32(f)
	}

	switch kind {
	case ScaleKind:
		return Scale{v[0], v[1], v[2]}, nil
	case TranslateKind:
		return Translate{v[0], v[1], v[2]}, nil
	case RotateXKind:
		return Rotate{Axis: AxisX, Degrees: v[0]}, nil
	case RotateYKind:
		return Rotate{Axis: AxisY, Degrees: v[0]}, nil
	case RotateZKind:
		return Rotate{Axis: AxisZ, Degrees: v[0]}, nil
	case ShearKind:
		return Shear{v[0], v[1], v[2]}, nil
	default:
		return Reflect{v[0], v[1], v[2]}, nil
	}
}

// Matrix returns the matrix for a command. The second result is false
// when the command is a no-op that must be skipped, which is the case for a
// scale with a NaN or infinite factor.
func Matrix(cmd Command) (math.Mat4, bool) {
	switch c := cmd.(type) {
	case Scale:
		if !math.IsFinite(c.X) || !math.IsFinite(c.Y) || !math.IsFinite(c.Z) {
			return math.Identity(), false
		}
		return math.Scale(c.X, c.Y, c.Z), true

	case Translate:
		return math.Translate(c.X, c.Y, c.Z), true

	case Rotate:
		rad := math.DegToRad(c.Degrees)
		switch c.Axis {
		case AxisY:
			return math.RotateY(rad), true
		case AxisZ:
			return math.RotateZ(rad), true
		default:
			return math.RotateX(rad), true
		}

	case Shear:
		return shearMatrix(c), true

	case Reflect:
		return math.Reflect(c.X == 1, c.Y == 1, c.Z == 1), true

	default:
		return math.Identity(), false
	}
}

// shearMatrix picks a single shear family: the first non-zero operand in
// X, Y, Z order selects it and the other two operands are its coefficients.
// The selecting operand is never a coefficient itself.
func shearMatrix(c Shear) math.Mat4 {
	switch {
	case c.X != 0:
		// x and z sheared by y
		return math.Shear(c.Y, 0, 0, 0, 0, c.Z)
	case c.Y != 0:
		// y sheared by x and z
		return math.Shear(0, 0, c.X, c.Z, 0, 0)
	case c.Z != 0:
		// z sheared by x and y
		return math.Shear(0, 0, 0, 0, c.X, c.Y)
	default:
		return math.Identity()
	}
}
