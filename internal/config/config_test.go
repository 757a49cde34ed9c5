package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/chris-regnier/tearoff/internal/state"
)

// isolate keeps Load from picking up a real config or environment.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Mood != "afternoon" {
		t.Errorf("expected mood 'afternoon', got %q", cfg.Mood)
	}
	if cfg.Gesture.TearThreshold != 150 {
		t.Errorf("expected tear threshold 150, got %v", cfg.Gesture.TearThreshold)
	}
	if cfg.Gesture.SwipeThreshold != 50 {
		t.Errorf("expected swipe threshold 50, got %v", cfg.Gesture.SwipeThreshold)
	}
	if cfg.Particles.Count != 50 {
		t.Errorf("expected 50 particles, got %d", cfg.Particles.Count)
	}
	if cfg.Particles.Rerandomize {
		t.Error("expected rerandomize off by default")
	}
	if cfg.Theme.MarkdownStyle != "dark" {
		t.Errorf("expected markdown style 'dark', got %q", cfg.Theme.MarkdownStyle)
	}
	if cfg.InitialMood() != state.Afternoon {
		t.Errorf("InitialMood() = %s", cfg.InitialMood())
	}
}

func TestLoadFromFile(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.toml")

	content := `
mood = "dusk"
date = "2026-02-25"
log_file = "/tmp/tearoff.log"

[gesture]
tear_threshold = 90
cell_height = 16

[particles]
count = 12
seed = 7
rerandomize = true
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.InitialMood() != state.Dusk {
		t.Errorf("expected dusk, got %s", cfg.InitialMood())
	}
	if cfg.Gesture.TearThreshold != 90 {
		t.Errorf("expected tear threshold 90, got %v", cfg.Gesture.TearThreshold)
	}
	if cfg.Gesture.SwipeThreshold != 50 {
		t.Errorf("unset key should keep default, got %v", cfg.Gesture.SwipeThreshold)
	}
	if cfg.Gesture.CellHeight != 16 {
		t.Errorf("expected cell height 16, got %v", cfg.Gesture.CellHeight)
	}
	if cfg.Particles.Count != 12 || cfg.Particles.Seed != 7 || !cfg.Particles.Rerandomize {
		t.Errorf("particles = %+v", cfg.Particles)
	}
	if cfg.LogFile != "/tmp/tearoff.log" {
		t.Errorf("log file = %q", cfg.LogFile)
	}

	d := cfg.CalendarDate(time.Now())
	if d.Month() != time.February || d.Day() != 25 || d.Weekday() != time.Wednesday {
		t.Errorf("calendar date = %v", d)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	isolate(t)
	t.Setenv("TEAROFF_MOOD", "morning")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.InitialMood() != state.Morning {
		t.Errorf("expected morning from env, got %s", cfg.InitialMood())
	}
}

func TestLoadNestedEnvOverride(t *testing.T) {
	isolate(t)
	t.Setenv("TEAROFF_GESTURE_TEAR_THRESHOLD", "200")
	t.Setenv("TEAROFF_PARTICLES_COUNT", "7")
	t.Setenv("TEAROFF_MOOD", "dusk")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Gesture.TearThreshold != 200 {
		t.Errorf("expected tear threshold 200 from env, got %v", cfg.Gesture.TearThreshold)
	}
	if cfg.Particles.Count != 7 {
		t.Errorf("expected 7 particles from env, got %d", cfg.Particles.Count)
	}
	if cfg.InitialMood() != state.Dusk {
		t.Errorf("expected dusk from env, got %s", cfg.InitialMood())
	}
}

func TestLoadMalformedSearchedFile(t *testing.T) {
	isolate(t)
	dir := filepath.Join(os.Getenv("XDG_CONFIG_HOME"), "tearoff")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte("mood = \"dusk\n[gesture\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(""); err == nil {
		t.Fatal("expected error for malformed config on the search path")
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	isolate(t)
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"mood":      `mood = "midnight"`,
		"date":      `date = "25/02/2026"`,
		"threshold": "[gesture]\ntear_threshold = 0",
		"cell":      "[gesture]\ncell_width = -1",
		"count":     "[particles]\ncount = -5",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			isolate(t)
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(body), 0644); err != nil {
				t.Fatal(err)
			}
			_, err := Load(path)
			if !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestCalendarDateDefaultsToNow(t *testing.T) {
	now := time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC)
	cfg := &Config{}
	if got := cfg.CalendarDate(now); !got.Equal(now) {
		t.Errorf("got %v, want %v", got, now)
	}
}
