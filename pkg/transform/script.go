package transform

import "github.com/Faultbox/meshstep/pkg/math"

// Entry is one script line with its interpretation.
type Entry struct {
	Line    string  // verbatim source line
	Command Command // nil when Err is set
	Err     error
}

// Skipped reports whether the entry contributes nothing to the transform,
// either because it failed to parse or because its command is a no-op.
func (e Entry) Skipped() bool {
	if e.Err != nil {
		return true
	}
	_, ok := Matrix(e.Command)
	return !ok
}

// Script is an ordered, immutable list of transformation commands.
type Script struct {
	entries []Entry
}

// NewScript interprets script lines in order. Lines that fail to parse are
// kept with their error and skipped when the script is applied.
func NewScript(lines []string) *Script {
	s := &Script{entries: make([]Entry, len(lines))}
	for i, line := range lines {
		cmd, err := Parse(line)
		s.entries[i] = Entry{Line: line, Command: cmd, Err: err}
	}
	return s
}

// Len returns the number of entries.
func (s *Script) Len() int {
	if s == nil {
		return 0
	}
	return len(s.entries)
}

// Entry returns the entry at index i.
func (s *Script) Entry(i int) Entry {
	return s.entries[i]
}

// Entries returns a copy of all entries.
func (s *Script) Entries() []Entry {
	out := make([]Entry, s.Len())
	copy(out, s.entries)
	return out
}

// ClampCursor limits a cursor to [-1, Len()-1].
func (s *Script) ClampCursor(cursor int) int {
	if cursor < -1 {
		return -1
	}
	if last := s.Len() - 1; cursor > last {
		return last
	}
	return cursor
}

// Matrix composes entries 0 through cursor. Entry 0 acts on the geometry
// first, so each command's matrix is multiplied on the left of the
// accumulated transform. A cursor of -1 yields the identity.
func (s *Script) Matrix(cursor int) math.Mat4 {
	m := math.Identity()
	cursor = s.ClampCursor(cursor)
	for i := 0; i <= cursor; i++ {
		e := s.entries[i]
		if e.Err != nil {
			continue
		}
		cm, ok := Matrix(e.Command)
		if !ok {
			continue
		}
		m = cm.Mul(m)
	}
	return m
}

// Apply transforms a copy of base by entries 0 through cursor. The result
// has the same length and index order as base, and base is not modified.
func (s *Script) Apply(base []math.Vec3, cursor int) []math.Vec3 {
	m := s.Matrix(cursor)
	out := make([]math.Vec3, len(base))
	for i, v := range base {
		out[i] = m.TransformVec3(v)
	}
	return out
}
