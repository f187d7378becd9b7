// Package main is the entry point for the meshstep viewer.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/Faultbox/meshstep/internal/app"
	"github.com/Faultbox/meshstep/internal/config"
	"github.com/Faultbox/meshstep/internal/logger"
	"github.com/Faultbox/meshstep/internal/viewer"
)

// Exit codes.
const (
	exitOK      = 0
	exitUsage   = 1
	exitFailure = -1
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()
	os.Exit(run(config.Args()))
}

func run(args []string) int {
	cfg, session, code := setup(args, os.Stderr)
	if session == nil {
		return code
	}
	defer logger.Sync()

	a, err := app.New(cfg, session)
	if err != nil {
		logger.Error("failed to start viewer", zap.Error(err))
		return exitFailure
	}
	defer a.Close()

	if err := a.Run(); err != nil {
		logger.Error("viewer error", zap.Error(err))
		return exitFailure
	}

	logger.Info("viewer closed")
	return exitOK
}

// setup checks the arguments, loads the config, starts the logger and loads
// the model. A nil session comes with the exit code to return.
func setup(args []string, stderr io.Writer) (*config.Config, *viewer.Session, int) {
	if len(args) != 1 {
		fmt.Fprintf(stderr, "Usage: %s [flags] <file.obj>\n", filepath.Base(os.Args[0]))
		return nil, nil, exitUsage
	}
	path := args[0]

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "Config error: %v\n", err)
		return nil, nil, exitFailure
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(stderr, "Logger error: %v\n", err)
		return nil, nil, exitFailure
	}

	logger.Sugar.Debugf("Config: %+v", cfg)

	mode, err := viewer.ParseDisplayMode(cfg.View.DisplayMode)
	if err != nil {
		logger.Error("invalid display mode", zap.Error(err))
		return nil, nil, exitFailure
	}

	session, err := viewer.Load(path, viewer.Options{
		Title:           cfg.Window.Title,
		ModelScale:      cfg.View.ModelScale,
		Mode:            mode,
		Lighting:        cfg.View.Lighting,
		DragSensitivity: cfg.View.DragSensitivity,
	})
	if err != nil {
		logger.Error("failed to load model", zap.Error(err))
		return nil, nil, exitFailure
	}

	return cfg, session, exitOK
}
