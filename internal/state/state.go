package state

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for parsing user-supplied names.
var (
	ErrUnknownMood    = errors.New("unknown mood stage")
	ErrUnknownOverlay = errors.New("unknown overlay")
)

// MoodStage selects the background palette and quote.
type MoodStage int

const (
	Morning MoodStage = iota
	Afternoon
	Dusk
)

// DefaultMood is the stage shown on a fresh load.
const DefaultMood = Afternoon

// Moods lists the stages in selector order.
var Moods = []MoodStage{Morning, Afternoon, Dusk}

func (m MoodStage) String() string {
	switch m {
	case Morning:
		return "morning"
	case Afternoon:
		return "afternoon"
	case Dusk:
		return "dusk"
	default:
		return fmt.Sprintf("MoodStage(%d)", int(m))
	}
}

// Valid reports whether m is one of the three defined stages.
func (m MoodStage) Valid() bool {
	return m >= Morning && m <= Dusk
}

// ParseMood converts a stage name (case-insensitive) to a MoodStage.
func ParseMood(s string) (MoodStage, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "morning":
		return Morning, nil
	case "afternoon":
		return Afternoon, nil
	case "dusk":
		return Dusk, nil
	}
	return 0, fmt.Errorf("%w: %q (must be morning, afternoon or dusk)", ErrUnknownMood, s)
}

// Overlay identifies the full-screen panel currently shown.
type Overlay int

const (
	OverlayNone Overlay = iota
	OverlayResonance
	OverlayLuggage
)

func (o Overlay) String() string {
	switch o {
	case OverlayNone:
		return "none"
	case OverlayResonance:
		return "resonance"
	case OverlayLuggage:
		return "luggage"
	default:
		return fmt.Sprintf("Overlay(%d)", int(o))
	}
}

// Valid reports whether o is one of the defined overlays.
func (o Overlay) Valid() bool {
	return o >= OverlayNone && o <= OverlayLuggage
}

// ParseOverlay converts an overlay name to an Overlay.
func ParseOverlay(s string) (Overlay, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none", "":
		return OverlayNone, nil
	case "resonance":
		return OverlayResonance, nil
	case "luggage":
		return OverlayLuggage, nil
	}
	return 0, fmt.Errorf("%w: %q (must be none, resonance or luggage)", ErrUnknownOverlay, s)
}

// State is the whole of the screen's shared state. Components receive a
// copy and request changes through actions.
type State struct {
	Mood    MoodStage `json:"mood"`
	Torn    bool      `json:"torn"`
	Overlay Overlay   `json:"overlay"`
}

// New returns the fresh-load state for the given initial mood. An invalid
// mood falls back to DefaultMood.
func New(mood MoodStage) State {
	if !mood.Valid() {
		mood = DefaultMood
	}
	return State{Mood: mood}
}

// MarshalText lets MoodStage appear by name in JSON output.
func (m MoodStage) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText parses a stage name.
func (m *MoodStage) UnmarshalText(b []byte) error {
	v, err := ParseMood(string(b))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// MarshalText lets Overlay appear by name in JSON output.
func (o Overlay) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText parses an overlay name.
func (o *Overlay) UnmarshalText(b []byte) error {
	v, err := ParseOverlay(string(b))
	if err != nil {
		return err
	}
	*o = v
	return nil
}
