package ui

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/chris-regnier/tearoff/internal/state"
)

// FormatState writes a one-line summary of the screen state.
func FormatState(w io.Writer, s state.State) {
	fmt.Fprintf(w, "mood=%s torn=%t overlay=%s\n", s.Mood, s.Torn, s.Overlay)
}

// ReplayStep is one line of replay output.
type ReplayStep struct {
	Input   string      `json:"input"`
	Result  string      `json:"result"`
	Changed bool        `json:"changed"`
	State   state.State `json:"state"`
}

// FormatReplay writes each step and the final state as text.
func FormatReplay(w io.Writer, steps []ReplayStep, final state.State) {
	if len(steps) == 0 {
		fmt.Fprintln(w, "No actions.")
	}
	for i, s := range steps {
		mark := " "
		if s.Changed {
			mark = "*"
		}
		fmt.Fprintf(w, "%2d %s %-16s %s\n", i+1, mark, s.Input, s.Result)
	}
	fmt.Fprint(w, "final: ")
	FormatState(w, final)
}

// FormatJSON writes any value as JSON to the writer.
func FormatJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
