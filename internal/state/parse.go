package state

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownAction is returned by ParseAction for unrecognised input.
var ErrUnknownAction = errors.New("unknown action")

// ParseAction reads the textual form of an action:
//
//	mood:<stage>    select a mood stage
//	open:<overlay>  open resonance or luggage
//	close           close the active overlay
//	tear            mark the page as torn
func ParseAction(s string) (Action, error) {
	name, arg, hasArg := strings.Cut(strings.TrimSpace(s), ":")
	switch strings.ToLower(name) {
	case "mood":
		m, err := ParseMood(arg)
		if err != nil {
			return Action{}, err
		}
		return SelectMood(m), nil
	case "open":
		o, err := ParseOverlay(arg)
		if err != nil {
			return Action{}, err
		}
		if o == OverlayNone {
			return Action{}, fmt.Errorf("%w: open needs resonance or luggage", ErrUnknownOverlay)
		}
		return Open(o), nil
	case "close":
		if hasArg {
			break
		}
		return Close(), nil
	case "tear":
		if hasArg {
			break
		}
		return Tear(), nil
	}
	return Action{}, fmt.Errorf("%w: %q", ErrUnknownAction, s)
}
