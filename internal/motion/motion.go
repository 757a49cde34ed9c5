// Package motion holds the small numeric toolkit behind every animation on
// the screen: clamped interpolation, easing curves and damped springs.
//
// All functions are pure or advance only on explicit Step calls, so the
// animation of any element is a deterministic function of elapsed frames.
package motion

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
)

// FPS is the frame rate animations are stepped at.
const FPS = 60

// Frame is the wall-clock length of one animation frame.
const Frame = time.Second / FPS

// Clamp limits v to [lo, hi]. lo and hi may be given in either order.
func Clamp(v, lo, hi float64) float64 {
	if lo > hi {
		lo, hi = hi, lo
	}
	return math.Max(lo, math.Min(hi, v))
}

// Interpolate maps v from [inLo, inHi] onto [outLo, outHi], clamping at the
// ends. A degenerate input range returns outLo.
func Interpolate(v, inLo, inHi, outLo, outHi float64) float64 {
	if inHi == inLo {
		return outLo
	}
	t := Clamp((v-inLo)/(inHi-inLo), 0, 1)
	return outLo + t*(outHi-outLo)
}

// Mix linearly blends a and b; t is clamped to [0, 1].
func Mix(a, b, t float64) float64 {
	t = Clamp(t, 0, 1)
	if t == 1 {
		return b
	}
	return a + (b-a)*t
}

// Progress returns how far elapsed is through a timeline that starts after
// delay and lasts duration, clamped to [0, 1].
func Progress(elapsed, delay, duration time.Duration) float64 {
	if elapsed <= delay {
		return 0
	}
	if duration <= 0 {
		return 1
	}
	return Clamp(float64(elapsed-delay)/float64(duration), 0, 1)
}

// Frames converts a duration to the nearest whole number of frames.
func Frames(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	return int(math.Round(d.Seconds() * FPS))
}

// SpringParams describes a damped spring by mass-spring-damper constants.
type SpringParams struct {
	Stiffness float64
	Damping   float64
	Mass      float64
}

// Presets.
var (
	// Snappy settles quickly with a little overshoot; used for panel slides
	// and snap-back.
	Snappy = SpringParams{Stiffness: 500, Damping: 25, Mass: 1}
	// Falling is soft and slow; used for particle drops.
	Falling = SpringParams{Stiffness: 50, Damping: 12, Mass: 1}
)

// harmonica parameterizes springs by angular frequency and damping ratio.
func (p SpringParams) harmonica() harmonica.Spring {
	mass := p.Mass
	if mass <= 0 {
		mass = 1
	}
	omega := math.Sqrt(p.Stiffness / mass)
	zeta := 0.0
	if omega > 0 {
		zeta = p.Damping / (2 * math.Sqrt(p.Stiffness*mass))
	}
	return harmonica.NewSpring(harmonica.FPS(FPS), omega, zeta)
}

// Spring animates a single value toward a target.
type Spring struct {
	spring harmonica.Spring
	Pos    float64
	Vel    float64
	Target float64
}

// NewSpring returns a spring resting at pos.
func NewSpring(p SpringParams, pos float64) Spring {
	return Spring{spring: p.harmonica(), Pos: pos, Target: pos}
}

// Step advances the spring by one frame.
func (s *Spring) Step() {
	s.Pos, s.Vel = s.spring.Update(s.Pos, s.Vel, s.Target)
}

// Settled reports whether the spring is within eps of its target and
// nearly stationary.
func (s Spring) Settled(eps float64) bool {
	return math.Abs(s.Pos-s.Target) < eps && math.Abs(s.Vel) < eps*FPS
}

// Snap moves the spring to its target immediately.
func (s *Spring) Snap() {
	s.Pos = s.Target
	s.Vel = 0
}
