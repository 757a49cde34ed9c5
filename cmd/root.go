package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/chris-regnier/tearoff/internal/config"
	"github.com/chris-regnier/tearoff/internal/content"
	"github.com/chris-regnier/tearoff/internal/gesture"
	"github.com/chris-regnier/tearoff/internal/particle"
	"github.com/chris-regnier/tearoff/internal/state"
	"github.com/chris-regnier/tearoff/internal/ui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"
)

var (
	cfgFile    string
	jsonOutput bool
	moodFlag   string
	seedFlag   uint64
	logFile    string
	debugLog   bool
	appConfig  *config.Config
	appContent *content.Content
	logger     = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "tearoff",
	Short: "A tear-off calendar for the terminal",
	Long: `tearoff shows today's calendar page over a mood-tinted background.

Pull the page down to tear it off, swipe the bottom strip left to read the
Resonance wall, and open the Luggage list from the parcel button.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		appConfig = cfg

		// Flags override the file and environment.
		if cmd.Flags().Changed("mood") {
			if _, err := state.ParseMood(moodFlag); err != nil {
				return err
			}
			appConfig.Mood = moodFlag
		}
		if cmd.Flags().Changed("seed") {
			appConfig.Particles.Seed = seedFlag
		}
		if cmd.Flags().Changed("log-file") {
			appConfig.LogFile = logFile
		}
		if cmd.Flags().Changed("debug") {
			appConfig.Debug = debugLog
		}

		appContent, err = content.Load(appConfig.ContentFile)
		if err != nil {
			return fmt.Errorf("loading content: %w", err)
		}

		logger, err = newLogger(appConfig.LogFile, appConfig.Debug)
		if err != nil {
			return fmt.Errorf("opening log: %w", err)
		}
		logger.Debug("config loaded",
			zap.String("mood", appConfig.Mood),
			zap.Float64("tear_threshold", appConfig.Gesture.TearThreshold),
			zap.Float64("swipe_threshold", appConfig.Gesture.SwipeThreshold),
			zap.Uint64("seed", appConfig.Particles.Seed))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			// Non-TTY: print one static frame
			return cardRun(os.Stdout, defaultCardWidth, defaultCardHeight)
		}
		return ui.RunTUI(tuiConfig(time.Now()))
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output in JSON format")
	rootCmd.PersistentFlags().StringVar(&moodFlag, "mood", "", "initial mood (morning|afternoon|dusk)")
	rootCmd.PersistentFlags().Uint64Var(&seedFlag, "seed", 0, "particle seed (0 = time-seeded)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write JSON logs to this file")
	rootCmd.PersistentFlags().BoolVar(&debugLog, "debug", false, "log at debug level")

	// Silence Cobra's built-in error and usage printing so we control stderr output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

// newLogger returns a JSON file logger, or a no-op logger when path is
// empty. The terminal belongs to the UI, so logs never go to stderr.
func newLogger(path string, debug bool) (*zap.Logger, error) {
	if path == "" {
		return zap.NewNop(), nil
	}
	zc := zap.NewProductionConfig()
	zc.OutputPaths = []string{path}
	zc.ErrorOutputPaths = []string{path}
	if debug {
		zc.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return zc.Build()
}

func thresholds() gesture.Thresholds {
	return gesture.Thresholds{
		Tear:  appConfig.Gesture.TearThreshold,
		Swipe: appConfig.Gesture.SwipeThreshold,
	}
}

func tuiConfig(now time.Time) ui.TUIConfig {
	seed := appConfig.Particles.Seed
	if seed == 0 {
		seed = uint64(now.UnixNano())
	}
	return ui.TUIConfig{
		Date:          appConfig.CalendarDate(now),
		Mood:          appConfig.InitialMood(),
		Thresholds:    thresholds(),
		CellWidth:     appConfig.Gesture.CellWidth,
		CellHeight:    appConfig.Gesture.CellHeight,
		Particles:     appConfig.Particles.Count,
		Source:        particle.NewSource(seed),
		Rerandomize:   appConfig.Particles.Rerandomize,
		MaxWidth:      appConfig.MaxWidth,
		MarkdownStyle: appConfig.Theme.MarkdownStyle,
		Content:       appContent,
		Logger:        logger,
	}
}
