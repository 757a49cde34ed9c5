package state

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestReduceTransitions(t *testing.T) {
	cases := []struct {
		name   string
		start  State
		action Action
		want   State
	}{
		{
			name:   "select morning",
			start:  New(Afternoon),
			action: SelectMood(Morning),
			want:   State{Mood: Morning},
		},
		{
			name:   "select active mood is a no-op",
			start:  State{Mood: Dusk, Torn: true},
			action: SelectMood(Dusk),
			want:   State{Mood: Dusk, Torn: true},
		},
		{
			name:   "invalid mood ignored",
			start:  New(Afternoon),
			action: SelectMood(MoodStage(7)),
			want:   State{Mood: Afternoon},
		},
		{
			name:   "tear",
			start:  New(Afternoon),
			action: Tear(),
			want:   State{Mood: Afternoon, Torn: true},
		},
		{
			name:   "open resonance",
			start:  State{Mood: Afternoon, Torn: true},
			action: Open(OverlayResonance),
			want:   State{Mood: Afternoon, Torn: true, Overlay: OverlayResonance},
		},
		{
			name:   "open luggage replaces resonance",
			start:  State{Mood: Afternoon, Overlay: OverlayResonance},
			action: Open(OverlayLuggage),
			want:   State{Mood: Afternoon, Overlay: OverlayLuggage},
		},
		{
			name:   "open invalid overlay ignored",
			start:  State{Mood: Afternoon, Overlay: OverlayLuggage},
			action: Open(Overlay(12)),
			want:   State{Mood: Afternoon, Overlay: OverlayLuggage},
		},
		{
			name:   "close",
			start:  State{Mood: Afternoon, Overlay: OverlayResonance},
			action: Close(),
			want:   State{Mood: Afternoon},
		},
		{
			name:   "close with nothing open",
			start:  New(Morning),
			action: Close(),
			want:   State{Mood: Morning},
		},
		{
			name:   "zero action",
			start:  State{Mood: Dusk, Torn: true, Overlay: OverlayLuggage},
			action: Action{},
			want:   State{Mood: Dusk, Torn: true, Overlay: OverlayLuggage},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Reduce(tc.start, tc.action)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Reduce(%v) mismatch (-want +got):\n%s", tc.action, diff)
			}
		})
	}
}

func TestTornIsMonotonic(t *testing.T) {
	actions := []Action{
		SelectMood(Morning), Open(OverlayResonance), Close(), Tear(),
		SelectMood(Dusk), Open(OverlayLuggage), Tear(), Close(), {},
	}
	s := Reduce(New(DefaultMood), Tear())
	for _, a := range actions {
		s = Reduce(s, a)
		if !s.Torn {
			t.Fatalf("torn flag reset after %v", a)
		}
	}
}

func TestOverlayAlwaysValid(t *testing.T) {
	s := New(DefaultMood)
	seq := []Action{
		Open(OverlayResonance), Open(OverlayLuggage), Open(Overlay(-3)),
		Close(), Open(Overlay(99)), Open(OverlayResonance), Close(), Close(),
	}
	for _, a := range seq {
		s = Reduce(s, a)
		if !s.Overlay.Valid() {
			t.Fatalf("invalid overlay %d after %v", s.Overlay, a)
		}
	}
}

func TestSelectMoodIdempotent(t *testing.T) {
	for _, m := range Moods {
		once := Reduce(New(DefaultMood), SelectMood(m))
		twice := Reduce(once, SelectMood(m))
		if once != twice {
			t.Errorf("selecting %s twice changed state: %+v -> %+v", m, once, twice)
		}
		if Diff(once, twice).Any() {
			t.Errorf("Diff reported change for repeated %s", m)
		}
	}
}

func TestDiff(t *testing.T) {
	before := New(Afternoon)
	after := Reduce(Reduce(before, Tear()), Open(OverlayLuggage))
	got := Diff(before, after)
	want := Changed{Torn: true, Overlay: true}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Diff mismatch (-want +got):\n%s", diff)
	}
}

func TestActionString(t *testing.T) {
	cases := map[string]Action{
		"select-mood(dusk)":       SelectMood(Dusk),
		"tear":                    Tear(),
		"open-overlay(resonance)": Open(OverlayResonance),
		"close-overlay":           Close(),
	}
	for want, a := range cases {
		if got := a.String(); got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	}
}
