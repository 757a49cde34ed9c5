package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/chris-regnier/tearoff/internal/gesture"
	"github.com/chris-regnier/tearoff/internal/state"
	"github.com/chris-regnier/tearoff/internal/ui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var replayCmd = &cobra.Command{
	Use:   "replay <step>...",
	Short: "Apply scripted gestures and actions, then print the state",
	Long: `Replay a sequence of steps against a fresh screen state.

Gesture steps release a drag at the given pixel offset and are decided
against the configured thresholds:

  tear:<dy>    pull the page down by dy pixels and let go
  swipe:<dx>   drag the bottom strip by dx pixels (negative is left)

Action steps change the state directly:

  mood:<morning|afternoon|dusk>
  open:<resonance|luggage>
  close
  tear`,
	Example: `  tearoff replay tear:160 swipe:-60 close
  tearoff replay mood:dusk open:luggage --json`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return replayRun(os.Stdout, args)
	},
}

// replayResult is the JSON shape of a replay.
type replayResult struct {
	Steps []ui.ReplayStep `json:"steps"`
	Final state.State     `json:"final"`
}

func replayRun(w io.Writer, args []string) error {
	steps, final, err := replay(state.New(appConfig.InitialMood()), thresholds(), args)
	if err != nil {
		return err
	}
	if jsonOutput {
		return ui.FormatJSON(w, replayResult{Steps: steps, Final: final})
	}
	ui.FormatReplay(w, steps, final)
	return nil
}

// replay applies each step in order. The first malformed step aborts.
func replay(s state.State, th gesture.Thresholds, args []string) ([]ui.ReplayStep, state.State, error) {
	steps := make([]ui.ReplayStep, 0, len(args))
	for _, arg := range args {
		a, result, err := decideStep(s, th, arg)
		if err != nil {
			return nil, s, fmt.Errorf("step %q: %w", arg, err)
		}
		next := s
		if a != nil {
			next = state.Reduce(s, *a)
			if result == "" {
				result = a.String()
			}
		}
		changed := state.Diff(s, next).Any()
		if a != nil && !changed {
			result += " (no change)"
		}
		logger.Debug("replay step",
			zap.String("input", arg),
			zap.String("result", result),
			zap.Bool("changed", changed))
		s = next
		steps = append(steps, ui.ReplayStep{Input: arg, Result: result, Changed: changed, State: s})
	}
	return steps, s, nil
}

// decideStep turns one step into the action it requests, if any. Gestures
// are only possible where the screen would accept them: the page exists
// until torn and nothing under an open overlay can be dragged.
func decideStep(s state.State, th gesture.Thresholds, arg string) (*state.Action, string, error) {
	name, value, ok := strings.Cut(strings.TrimSpace(arg), ":")
	gestureStep := ok && (strings.EqualFold(name, "tear") || strings.EqualFold(name, "swipe"))
	if !gestureStep {
		a, err := state.ParseAction(arg)
		if err != nil {
			return nil, "", err
		}
		return &a, "", nil
	}

	px, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, "", fmt.Errorf("%w: offset %q is not a number", state.ErrUnknownAction, value)
	}
	if s.Overlay != state.OverlayNone {
		return nil, "blocked by " + s.Overlay.String(), nil
	}

	if strings.EqualFold(name, "tear") {
		if s.Torn {
			return nil, "no page left", nil
		}
		if !th.TearCommitted(px) {
			return nil, "snapped back", nil
		}
		a := state.Tear()
		return &a, "torn", nil
	}

	if !th.SwipeCommitted(px) {
		return nil, "snapped back", nil
	}
	a := state.Open(state.OverlayResonance)
	return &a, "opened resonance", nil
}

func init() {
	rootCmd.AddCommand(replayCmd)
}
