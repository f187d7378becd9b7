package viewer

import "fmt"

// DisplayMode selects how triangles are drawn.
type DisplayMode uint8

const (
	Wireframe DisplayMode = iota
	Filled
)

// String returns the name used in config files.
func (m DisplayMode) String() string {
	switch m {
	case Wireframe:
		return "wireframe"
	case Filled:
		return "filled"
	default:
		return fmt.Sprintf("DisplayMode(%d)", m)
	}
}

// ParseDisplayMode maps a config name to a DisplayMode.
func ParseDisplayMode(name string) (DisplayMode, error) {
	switch name {
	case "wireframe":
		return Wireframe, nil
	case "filled":
		return Filled, nil
	default:
		return Wireframe, fmt.Errorf("unknown display mode %q", name)
	}
}

// Action is a user command delivered by the input layer.
type Action uint8

const (
	ActionNone Action = iota
	ToggleDisplayMode
	ToggleLighting
	Step
	Quit
)

func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ToggleDisplayMode:
		return "ToggleDisplayMode"
	case ToggleLighting:
		return "ToggleLighting"
	case Step:
		return "Step"
	case Quit:
		return "Quit"
	default:
		return fmt.Sprintf("Action(%d)", a)
	}
}
