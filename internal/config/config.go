package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/chris-regnier/tearoff/internal/gesture"
	"github.com/chris-regnier/tearoff/internal/particle"
	"github.com/chris-regnier/tearoff/internal/state"
	"github.com/spf13/viper"
)

// DateLayout is the format of the date key.
const DateLayout = "2006-01-02"

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// GestureConfig holds drag thresholds and the pixel size of a terminal cell.
type GestureConfig struct {
	TearThreshold  float64 `mapstructure:"tear_threshold"`
	SwipeThreshold float64 `mapstructure:"swipe_threshold"`
	CellWidth      float64 `mapstructure:"cell_width"`
	CellHeight     float64 `mapstructure:"cell_height"`
}

// ParticleConfig controls the burst shown after a tear.
type ParticleConfig struct {
	Count       int    `mapstructure:"count"`
	Seed        uint64 `mapstructure:"seed"`
	Rerandomize bool   `mapstructure:"rerandomize"`
}

// ThemeConfig holds help rendering preferences.
type ThemeConfig struct {
	MarkdownStyle string `mapstructure:"markdown_style"`
}

// Config holds the application configuration.
type Config struct {
	Mood        string         `mapstructure:"mood"`
	Date        string         `mapstructure:"date"`
	MaxWidth    int            `mapstructure:"max_width"`
	LogFile     string         `mapstructure:"log_file"`
	Debug       bool           `mapstructure:"debug"`
	ContentFile string         `mapstructure:"content_file"`
	Gesture     GestureConfig  `mapstructure:"gesture"`
	Particles   ParticleConfig `mapstructure:"particles"`
	Theme       ThemeConfig    `mapstructure:"theme"`
}

// DefaultDir returns the default config directory (~/.tearoff/).
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".tearoff")
	}
	return filepath.Join(home, ".tearoff")
}

// Load reads configuration from file, environment variables, and defaults.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("mood", state.DefaultMood.String())
	v.SetDefault("date", "")
	v.SetDefault("max_width", 0)
	v.SetDefault("log_file", "")
	v.SetDefault("debug", false)
	v.SetDefault("content_file", "")
	v.SetDefault("gesture.tear_threshold", gesture.DefaultTearThreshold)
	v.SetDefault("gesture.swipe_threshold", gesture.DefaultSwipeThreshold)
	v.SetDefault("gesture.cell_width", 10)
	v.SetDefault("gesture.cell_height", 20)
	v.SetDefault("particles.count", particle.DefaultCount)
	v.SetDefault("particles.seed", 0)
	v.SetDefault("particles.rerandomize", false)
	v.SetDefault("theme.markdown_style", "dark")

	// Config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// XDG support
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			v.AddConfigPath(filepath.Join(xdg, "tearoff"))
		}
		v.AddConfigPath(DefaultDir())
		v.SetConfigName("config")
		v.SetConfigType("toml")
	}

	// Environment variables: TEAROFF_MOOD, TEAROFF_GESTURE_TEAR_THRESHOLD, etc.
	v.SetEnvPrefix("TEAROFF")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (ignore not found)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that every value is usable.
func (c *Config) Validate() error {
	if _, err := state.ParseMood(c.Mood); err != nil {
		return fmt.Errorf("%w: mood: %w", ErrInvalidConfig, err)
	}
	if c.Date != "" {
		if _, err := time.Parse(DateLayout, c.Date); err != nil {
			return fmt.Errorf("%w: date %q must be YYYY-MM-DD", ErrInvalidConfig, c.Date)
		}
	}
	if c.Gesture.TearThreshold <= 0 || c.Gesture.SwipeThreshold <= 0 {
		return fmt.Errorf("%w: gesture thresholds must be positive", ErrInvalidConfig)
	}
	if c.Gesture.CellWidth <= 0 || c.Gesture.CellHeight <= 0 {
		return fmt.Errorf("%w: gesture cell size must be positive", ErrInvalidConfig)
	}
	if c.Particles.Count < 0 {
		return fmt.Errorf("%w: particles.count must not be negative", ErrInvalidConfig)
	}
	if c.MaxWidth < 0 {
		return fmt.Errorf("%w: max_width must not be negative", ErrInvalidConfig)
	}
	return nil
}

// InitialMood returns the configured starting mood.
func (c *Config) InitialMood() state.MoodStage {
	m, err := state.ParseMood(c.Mood)
	if err != nil {
		return state.DefaultMood
	}
	return m
}

// CalendarDate returns the configured date, or now when unset.
func (c *Config) CalendarDate(now time.Time) time.Time {
	if c.Date == "" {
		return now
	}
	d, err := time.ParseInLocation(DateLayout, c.Date, now.Location())
	if err != nil {
		return now
	}
	return d
}
