package input

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/meshstep/internal/config"
	"github.com/Faultbox/meshstep/internal/viewer"
)

// Bindings maps keys to viewer actions.
type Bindings map[sdl.Scancode]viewer.Action

// NewBindings resolves SDL key names such as "P" or "Escape" from the key
// config. An unknown name is an error.
func NewBindings(keys config.KeyConfig) (Bindings, error) {
	b := make(Bindings)
	groups := []struct {
		names  []string
		action viewer.Action
	}{
		{keys.ToggleMode, viewer.ToggleDisplayMode},
		{keys.ToggleLight, viewer.ToggleLighting},
		{keys.Step, viewer.Step},
		{keys.Quit, viewer.Quit},
	}

	for _, g := range groups {
		for _, name := range g.names {
			sc := sdl.GetScancodeFromName(name)
			if sc == sdl.SCANCODE_UNKNOWN {
				return nil, fmt.Errorf("unknown key name %q for %s", name, g.action)
			}
			b[sc] = g.action
		}
	}
	return b, nil
}

// Action returns the action bound to a key, or viewer.ActionNone.
func (b Bindings) Action(sc sdl.Scancode) viewer.Action {
	if a, ok := b[sc]; ok {
		return a
	}
	return viewer.ActionNone
}
