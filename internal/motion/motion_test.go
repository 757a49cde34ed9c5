package motion

import (
	"math"
	"testing"
	"time"
)

func almostEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func TestInterpolateClamps(t *testing.T) {
	cases := []struct {
		v, want float64
	}{
		{-50, 0},
		{0, 0},
		{100, 2.5},
		{200, 5},
		{400, 5},
	}
	for _, tc := range cases {
		if got := Interpolate(tc.v, 0, 200, 0, 5); !almostEqual(got, tc.want, 1e-9) {
			t.Errorf("Interpolate(%v) = %v, want %v", tc.v, got, tc.want)
		}
	}
}

func TestInterpolateDescendingOutput(t *testing.T) {
	if got := Interpolate(150, 0, 300, 1, 0); !almostEqual(got, 0.5, 1e-9) {
		t.Errorf("got %v, want 0.5", got)
	}
}

func TestInterpolateDegenerateRange(t *testing.T) {
	if got := Interpolate(10, 5, 5, 3, 9); got != 3 {
		t.Errorf("got %v, want 3", got)
	}
}

func TestClampSwappedBounds(t *testing.T) {
	if got := Clamp(-150, 0, -100); got != -100 {
		t.Errorf("got %v, want -100", got)
	}
}

func TestProgress(t *testing.T) {
	cases := []struct {
		elapsed, delay, dur time.Duration
		want                float64
	}{
		{0, 0, time.Second, 0},
		{500 * time.Millisecond, 0, time.Second, 0.5},
		{100 * time.Millisecond, 200 * time.Millisecond, time.Second, 0},
		{700 * time.Millisecond, 200 * time.Millisecond, time.Second, 0.5},
		{3 * time.Second, 0, time.Second, 1},
		{time.Millisecond, 0, 0, 1},
	}
	for _, tc := range cases {
		if got := Progress(tc.elapsed, tc.delay, tc.dur); !almostEqual(got, tc.want, 1e-9) {
			t.Errorf("Progress(%v, %v, %v) = %v, want %v", tc.elapsed, tc.delay, tc.dur, got, tc.want)
		}
	}
}

func TestFrames(t *testing.T) {
	if got := Frames(800 * time.Millisecond); got != 48 {
		t.Errorf("Frames(800ms) = %d, want 48", got)
	}
	if got := Frames(0); got != 0 {
		t.Errorf("Frames(0) = %d, want 0", got)
	}
}

func TestEaseInEndpointsAndShape(t *testing.T) {
	if EaseIn(0) != 0 || EaseIn(1) != 1 {
		t.Fatalf("endpoints: %v %v", EaseIn(0), EaseIn(1))
	}
	mid := EaseIn(0.5)
	if mid >= 0.5 {
		t.Errorf("ease-in should lag linear at midpoint, got %v", mid)
	}
	prev := 0.0
	for i := 1; i <= 20; i++ {
		v := EaseIn(float64(i) / 20)
		if v < prev {
			t.Fatalf("ease-in not monotonic at %d: %v < %v", i, v, prev)
		}
		prev = v
	}
}

func TestLinearBezierIsIdentity(t *testing.T) {
	lin := CubicBezier(0, 0, 1, 1)
	for _, x := range []float64{0.1, 0.25, 0.5, 0.9} {
		if got := lin(x); !almostEqual(got, x, 1e-4) {
			t.Errorf("linear bezier(%v) = %v", x, got)
		}
	}
}

func TestSpringSettlesOnTarget(t *testing.T) {
	for name, p := range map[string]SpringParams{"snappy": Snappy, "falling": Falling} {
		t.Run(name, func(t *testing.T) {
			s := NewSpring(p, -600)
			s.Target = 0
			for i := 0; i < 10*FPS && !s.Settled(0.5); i++ {
				s.Step()
			}
			if !s.Settled(0.5) {
				t.Fatalf("spring did not settle: pos=%v vel=%v", s.Pos, s.Vel)
			}
		})
	}
}

func TestSpringAtRestStaysPut(t *testing.T) {
	s := NewSpring(Snappy, 12)
	s.Step()
	if s.Pos != 12 || s.Vel != 0 {
		t.Errorf("resting spring moved: %+v", s)
	}
}

func TestSpringSnap(t *testing.T) {
	s := NewSpring(Snappy, 0)
	s.Target = 100
	s.Step()
	s.Snap()
	if s.Pos != 100 || s.Vel != 0 {
		t.Errorf("snap left pos=%v vel=%v", s.Pos, s.Vel)
	}
}
