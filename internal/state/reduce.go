package state

import "fmt"

// ActionKind enumerates the transitions the screen supports.
type ActionKind int

const (
	ActionSelectMood ActionKind = iota + 1
	ActionTear
	ActionOpenOverlay
	ActionCloseOverlay
)

func (k ActionKind) String() string {
	switch k {
	case ActionSelectMood:
		return "select-mood"
	case ActionTear:
		return "tear"
	case ActionOpenOverlay:
		return "open-overlay"
	case ActionCloseOverlay:
		return "close-overlay"
	default:
		return fmt.Sprintf("ActionKind(%d)", int(k))
	}
}

// Action is a request to change State. Only the field matching Kind is read.
type Action struct {
	Kind    ActionKind
	Mood    MoodStage
	Overlay Overlay
}

// SelectMood builds an action that sets the mood stage.
func SelectMood(m MoodStage) Action { return Action{Kind: ActionSelectMood, Mood: m} }

// Tear builds the action that marks the calendar page as torn.
func Tear() Action { return Action{Kind: ActionTear} }

// Open builds an action that shows the given overlay, replacing any other.
func Open(o Overlay) Action { return Action{Kind: ActionOpenOverlay, Overlay: o} }

// Close builds the action that hides the active overlay.
func Close() Action { return Action{Kind: ActionCloseOverlay} }

func (a Action) String() string {
	switch a.Kind {
	case ActionSelectMood:
		return fmt.Sprintf("%s(%s)", a.Kind, a.Mood)
	case ActionOpenOverlay:
		return fmt.Sprintf("%s(%s)", a.Kind, a.Overlay)
	default:
		return a.Kind.String()
	}
}

// Reduce returns the state that results from applying a to s. It never
// produces an invalid state: malformed actions return s unchanged.
//
// Torn is one-way. Opening an overlay replaces the current one. Selecting
// the active mood is a no-op.
func Reduce(s State, a Action) State {
	switch a.Kind {
	case ActionSelectMood:
		if a.Mood.Valid() {
			s.Mood = a.Mood
		}
	case ActionTear:
		s.Torn = true
	case ActionOpenOverlay:
		if a.Overlay.Valid() {
			s.Overlay = a.Overlay
		}
	case ActionCloseOverlay:
		s.Overlay = OverlayNone
	}
	return s
}

// Changed reports which parts of the state differ between two snapshots.
type Changed struct {
	Mood    bool
	Torn    bool
	Overlay bool
}

// Diff compares two states.
func Diff(before, after State) Changed {
	return Changed{
		Mood:    before.Mood != after.Mood,
		Torn:    before.Torn != after.Torn,
		Overlay: before.Overlay != after.Overlay,
	}
}

// Any reports whether anything changed.
func (c Changed) Any() bool {
	return c.Mood || c.Torn || c.Overlay
}
