// Package playback steps through a transformation script and keeps the
// geometry before and after the current step.
package playback

import (
	"github.com/Faultbox/meshstep/pkg/math"
	"github.com/Faultbox/meshstep/pkg/transform"
)

// Player is the playback state machine. Its cursor is the index of the last
// applied command and stays within [-1, Len()-1]; -1 shows the base mesh.
type Player struct {
	base   []math.Vec3
	script *transform.Script
	cursor int

	current  []math.Vec3
	previous []math.Vec3
}

// New creates a player positioned before the first command.
// base is copied; later changes to the caller's slice have no effect.
func New(base []math.Vec3, script *transform.Script) *Player {
	if script == nil {
		script = transform.NewScript(nil)
	}
	p := &Player{
		base:   cloneVertices(base),
		script: script,
	}
	p.rewind()
	return p
}

// Cursor returns the index of the last applied command, or -1.
func (p *Player) Cursor() int {
	return p.cursor
}

// Len returns the number of commands in the script.
func (p *Player) Len() int {
	return p.script.Len()
}

// Script returns the script being played.
func (p *Player) Script() *transform.Script {
	return p.script
}

// Base returns the untransformed vertices.
func (p *Player) Base() []math.Vec3 {
	return p.base
}

// Current returns the vertices with commands 0 through Cursor applied.
// The slice is replaced, never modified, on the next Step.
func (p *Player) Current() []math.Vec3 {
	return p.current
}

// Previous returns the vertices one step behind Current. At cursor 0 and
// -1 this is the base geometry.
func (p *Player) Previous() []math.Vec3 {
	return p.previous
}

// Entry returns the script entry at the cursor. ok is false at cursor -1.
func (p *Player) Entry() (e transform.Entry, ok bool) {
	if p.cursor < 0 {
		return transform.Entry{}, false
	}
	return p.script.Entry(p.cursor), true
}

// Snapshot returns the base transformed by commands 0 through cursor.
// It does not depend on or change the player's state.
func (p *Player) Snapshot(cursor int) []math.Vec3 {
	return p.script.Apply(p.base, cursor)
}

// Step advances the cursor by one command. At the last command, or with an
// empty script, it wraps back to -1 and reports wrapped.
func (p *Player) Step() (cursor int, wrapped bool) {
	if p.cursor < p.script.Len()-1 {
		p.previous = p.current
		p.cursor++
		p.current = p.Snapshot(p.cursor)
		return p.cursor, false
	}

	p.rewind()
	return p.cursor, true
}

// Reset returns to the base geometry without stepping.
func (p *Player) Reset() {
	p.rewind()
}

func (p *Player) rewind() {
	p.cursor = -1
	p.current = cloneVertices(p.base)
	p.previous = cloneVertices(p.base)
}

func cloneVertices(v []math.Vec3) []math.Vec3 {
	out := make([]math.Vec3, len(v))
	copy(out, v)
	return out
}
