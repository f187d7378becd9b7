package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestRotatedFilesAreTimestamped(t *testing.T) {
	dir := t.TempDir()
	logFile := filepath.Join(dir, "meshstep.log")

	// lumberjack's smallest size is 1MB, so write a bit over 2MB.
	cfg := FileConfig{Path: logFile, MaxSizeMB: 1, MaxBackups: 2, MaxAgeDays: 1}
	if err := InitWithFileConfig("debug", cfg, false); err != nil {
		t.Fatalf("failed to init logger: %v", err)
	}

	line := strings.Repeat("v", 200)
	for i := 0; i < 12000; i++ {
		Sugar.Debugf("vertex %d %s", i, line)
	}
	Sync()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("failed to read dir: %v", err)
	}

	var rotated []string
	for _, e := range entries {
		if e.Name() != "meshstep.log" && strings.HasPrefix(e.Name(), "meshstep-") {
			rotated = append(rotated, e.Name())
		}
	}
	if len(rotated) == 0 {
		t.Fatalf("expected rotated files next to %s, found %v", logFile, entries)
	}
	for _, name := range rotated {
		// meshstep-YYYY-MM-DDTHH-MM-SS.SSS.log
		if !strings.Contains(name, "-20") || !strings.HasSuffix(name, ".log") {
			t.Errorf("rotated file %s has no timestamp", name)
		}
	}
}

func TestLevelFiltering(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		level   string
		present []string
		absent  []string
	}{
		{"error", []string{"ERROR"}, []string{"WARN", "INFO", "DEBUG"}},
		{"warn", []string{"ERROR", "WARN"}, []string{"INFO", "DEBUG"}},
		{"info", []string{"ERROR", "WARN", "INFO"}, []string{"DEBUG"}},
		{"debug", []string{"ERROR", "WARN", "INFO", "DEBUG"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logFile := filepath.Join(dir, tt.level+".log")
			cfg := FileConfig{Path: logFile, MaxSizeMB: 10, MaxBackups: 1, MaxAgeDays: 1}
			if err := InitWithFileConfig(tt.level, cfg, false); err != nil {
				t.Fatalf("failed to init logger: %v", err)
			}

			Debug("debug message")
			Info("info message")
			Warn("warn message")
			Error("error message")
			Sync()

			content, err := os.ReadFile(logFile)
			if err != nil {
				t.Fatalf("failed to read log file: %v", err)
			}

			for _, want := range tt.present {
				if !strings.Contains(string(content), want) {
					t.Errorf("expected %s in log output", want)
				}
			}
			for _, unwanted := range tt.absent {
				if strings.Contains(string(content), unwanted) {
					t.Errorf("unexpected %s in log output for level %s", unwanted, tt.level)
				}
			}
		})
	}
}

func TestNopLogger(t *testing.T) {
	Log, Sugar = zap.NewNop(), zap.NewNop().Sugar()

	Named("model").Warn("degenerate face")
	Info("discarded")
	Sync()
}

func TestNamedLoggerInFile(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "named.log")

	cfg := DefaultFileConfig(logFile)
	cfg.Compress = false
	if err := InitWithFileConfig("info", cfg, false); err != nil {
		t.Fatalf("failed to init logger: %v", err)
	}

	Named("playback").Info("stepped")
	Sync()

	content, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if !strings.Contains(string(content), "playback") || !strings.Contains(string(content), "stepped") {
		t.Errorf("expected component name and message in %q", content)
	}
}

func TestUnknownLevelFallsBackToInfo(t *testing.T) {
	if got := parseLevel("loud"); got.String() != "info" {
		t.Errorf("expected info for unknown level, got %s", got)
	}
	if got := parseLevel("debug"); got.String() != "debug" {
		t.Errorf("expected debug, got %s", got)
	}
}

func TestDefaultFileConfig(t *testing.T) {
	cfg := DefaultFileConfig("/tmp/test.log")

	if cfg.Path != "/tmp/test.log" {
		t.Errorf("expected path /tmp/test.log, got %s", cfg.Path)
	}
	if cfg.MaxSizeMB != 10 {
		t.Errorf("expected MaxSizeMB 10, got %d", cfg.MaxSizeMB)
	}
	if cfg.MaxBackups != 3 {
		t.Errorf("expected MaxBackups 3, got %d", cfg.MaxBackups)
	}
	if cfg.MaxAgeDays != 7 {
		t.Errorf("expected MaxAgeDays 7, got %d", cfg.MaxAgeDays)
	}
	if !cfg.Compress {
		t.Error("expected Compress to be true")
	}
}
