package cmd

import (
	"regexp"
	"testing"

	"github.com/chris-regnier/tearoff/internal/config"
	"github.com/chris-regnier/tearoff/internal/content"
	"go.uber.org/zap"
)

// stripANSI removes ANSI escape sequences from a string
func stripANSI(s string) string {
	ansiRegex := regexp.MustCompile(`\x1b\[[0-9;]*m`)
	return ansiRegex.ReplaceAllString(s, "")
}

func setupTestEnv(t *testing.T) {
	t.Helper()
	appConfig = &config.Config{
		Mood: "afternoon",
		Date: "2026-02-25",
		Gesture: config.GestureConfig{
			TearThreshold:  150,
			SwipeThreshold: 50,
			CellWidth:      10,
			CellHeight:     20,
		},
		Particles: config.ParticleConfig{Count: 50, Seed: 7},
		Theme:     config.ThemeConfig{MarkdownStyle: "dark"},
	}
	appContent = content.Default()
	logger = zap.NewNop()
	jsonOutput = false
	t.Cleanup(func() { jsonOutput = false })
}
