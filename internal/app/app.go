// Package app runs the viewer event loop.
package app

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/meshstep/internal/config"
	"github.com/Faultbox/meshstep/internal/engine/camera"
	"github.com/Faultbox/meshstep/internal/engine/input"
	"github.com/Faultbox/meshstep/internal/engine/renderer"
	"github.com/Faultbox/meshstep/internal/engine/window"
	"github.com/Faultbox/meshstep/internal/logger"
	"github.com/Faultbox/meshstep/internal/viewer"
	"github.com/Faultbox/meshstep/pkg/math"
)

// App owns the window and drives a viewer session.
type App struct {
	session  *viewer.Session
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	camera   *camera.ViewCamera
	bindings input.Bindings

	running bool
	title   string
	log     *zap.Logger
}

// New opens a window for the session.
func New(cfg *config.Config, session *viewer.Session) (*App, error) {
	a := &App{
		session: session,
		log:     logger.Named("app"),
	}

	var err error
	a.bindings, err = input.NewBindings(cfg.Keys)
	if err != nil {
		return nil, fmt.Errorf("key bindings: %w", err)
	}

	// Window first, since the OpenGL context must exist before the renderer
	a.title = session.Title()
	a.window, err = window.New(window.Config{
		Title:      a.title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	rcfg := renderer.DefaultConfig()
	rcfg.Background = cfg.View.Background
	a.renderer, err = renderer.New(rcfg)
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	eye := cfg.View.Eye
	a.camera = camera.New(math.Vec3{X: eye[0], Y: eye[1], Z: eye[2]}, cfg.View.FovY, cfg.View.Near, cfg.View.Far)
	a.input = input.New()
	a.resize()

	return a, nil
}

// Run processes events and draws frames until the window is closed or the
// session asks to quit.
func (a *App) Run() error {
	a.running = true

	frameCount := 0
	fpsTimer := time.Now()

	a.log.Debug("starting event loop")

	for a.running {
		if a.input.Update() {
			a.running = false
			break
		}

		for _, event := range a.input.Events() {
			a.handle(event)
		}
		if a.session.CloseRequested() {
			a.running = false
			break
		}

		if title := a.session.Title(); title != a.title {
			a.title = title
			a.window.SetTitle(title)
		}

		a.renderer.Draw(a.session.Frame(), a.camera)
		a.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			a.log.Debug("fps", zap.Int("count", frameCount))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// Close releases the renderer and the window.
func (a *App) Close() {
	a.log.Debug("closing")

	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}

func (a *App) handle(e input.Event) {
	switch e.Type {
	case input.EventWindowResize:
		a.resize()

	case input.EventKeyDown:
		if e.Repeat {
			return
		}
		if action := a.bindings.Action(e.Key); action != viewer.ActionNone {
			a.session.Apply(action)
		}

	case input.EventMouseDown:
		if e.Button == sdl.BUTTON_LEFT {
			a.session.BeginDrag(float32(e.MouseX), float32(e.MouseY))
		}

	case input.EventMouseUp:
		if e.Button == sdl.BUTTON_LEFT {
			a.session.EndDrag()
		}

	case input.EventMouseMove:
		a.session.DragTo(float32(e.MouseX), float32(e.MouseY))
	}
}

// resize matches the viewport and projection to the framebuffer.
func (a *App) resize() {
	w, h := a.window.DrawableSize()
	a.renderer.Resize(w, h)
	a.camera.SetViewport(w, h)
}
