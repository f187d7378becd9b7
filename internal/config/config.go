// Package config handles viewer configuration loading.
package config

import (
	"errors"
	"fmt"

	"github.com/Faultbox/meshstep/pkg/math"
)

// Display mode names accepted in view.display_mode.
const (
	ModeWireframe = "wireframe"
	ModeFilled    = "filled"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config holds all viewer settings.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	View    ViewConfig    `yaml:"view"`
	Keys    KeyConfig     `yaml:"keys"`
	Logging LoggingConfig `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
}

// ViewConfig holds how the mesh is presented.
type ViewConfig struct {
	ModelScale      float32    `yaml:"model_scale"`      // applied to the mesh once at load
	DisplayMode     string     `yaml:"display_mode"`     // wireframe or filled
	Lighting        bool       `yaml:"lighting"`         // initial lighting toggle
	DragSensitivity float32    `yaml:"drag_sensitivity"` // degrees per pixel
	FovY            float32    `yaml:"fov_y"`            // degrees
	Near            float32    `yaml:"near"`
	Far             float32    `yaml:"far"`
	Eye             [3]float32 `yaml:"eye"`
	Background      [3]float32 `yaml:"background"`
}

// KeyConfig maps viewer commands to SDL key names.
type KeyConfig struct {
	ToggleMode  []string `yaml:"toggle_mode"`
	ToggleLight []string `yaml:"toggle_light"`
	Step        []string `yaml:"step"`
	Quit        []string `yaml:"quit"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "meshstep",
			Width:  640,
			Height: 480,
			VSync:  true,
		},
		View: ViewConfig{
			ModelScale:      7,
			DisplayMode:     ModeWireframe,
			DragSensitivity: 0.5,
			FovY:            45,
			Near:            0.1,
			Far:             100,
			Eye:             [3]float32{1.5, 1.5, 1.5},
			Background:      [3]float32{0.5, 0.5, 0.5},
		},
		Keys: KeyConfig{
			ToggleMode:  []string{"P"},
			ToggleLight: []string{"L"},
			Step:        []string{"Space"},
			Quit:        []string{"Q", "Escape"},
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Validate reports the first setting that cannot be used.
func (c *Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	case c.View.DisplayMode != ModeWireframe && c.View.DisplayMode != ModeFilled:
		return fmt.Errorf("%w: display_mode %q", ErrInvalid, c.View.DisplayMode)
	case !math.IsFinite(c.View.ModelScale) || c.View.ModelScale <= 0:
		return fmt.Errorf("%w: model_scale %v", ErrInvalid, c.View.ModelScale)
	case !math.IsFinite(c.View.DragSensitivity):
		return fmt.Errorf("%w: drag_sensitivity %v", ErrInvalid, c.View.DragSensitivity)
	case c.View.FovY <= 0 || c.View.FovY >= 180:
		return fmt.Errorf("%w: fov_y %v", ErrInvalid, c.View.FovY)
	case c.View.Near <= 0 || c.View.Far <= c.View.Near:
		return fmt.Errorf("%w: clip range %v..%v", ErrInvalid, c.View.Near, c.View.Far)
	}
	return nil
}
