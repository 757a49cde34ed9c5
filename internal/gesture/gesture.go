// Package gesture turns continuous drag displacement into visual feedback
// and discrete commit decisions. Nothing here renders; all inputs and
// outputs are in pixels and degrees.
package gesture

import (
	"time"

	"github.com/chris-regnier/tearoff/internal/motion"
)

// Default commit thresholds in pixels.
const (
	DefaultTearThreshold  = 150
	DefaultSwipeThreshold = 50
)

// Calendar card feedback ranges.
const (
	rotateRange  = 200 // px of drag for full rotation
	maxRotate    = 5   // degrees
	opacityRange = 300 // px of drag to fade out
)

// Card drag constraints: the card rests at 0 and follows the pointer
// elastically.
const (
	CardElastic = 0.7
)

// Hot-zone drag constraints.
const (
	SwipeMin     = -100
	SwipeMax     = 0
	SwipeElastic = 0.5
)

// Exit animation of a torn card.
const (
	ExitDistance = 1000
	ExitRotate   = 15
	ExitDuration = 800 * time.Millisecond
)

// Thresholds holds the commit distances for both gestures.
type Thresholds struct {
	Tear  float64
	Swipe float64
}

// DefaultThresholds returns the standard thresholds.
func DefaultThresholds() Thresholds {
	return Thresholds{Tear: DefaultTearThreshold, Swipe: DefaultSwipeThreshold}
}

// TearCommitted reports whether a vertical drag released at offsetY tears
// the card. The comparison is strict: releasing exactly at the threshold
// does not tear.
func (t Thresholds) TearCommitted(offsetY float64) bool {
	return offsetY > t.Tear
}

// SwipeCommitted reports whether a horizontal drag released at offsetX
// opens the message wall. Only leftward drags past the threshold count.
func (t Thresholds) SwipeCommitted(offsetX float64) bool {
	return offsetX < -t.Swipe
}

// CardRotation is the card's tilt in degrees for a drag offset.
func CardRotation(offsetY float64) float64 {
	return motion.Interpolate(offsetY, 0, rotateRange, 0, maxRotate)
}

// CardOpacity is the card's opacity for a drag offset.
func CardOpacity(offsetY float64) float64 {
	return motion.Interpolate(offsetY, 0, opacityRange, 1, 0)
}

// Elastic constrains a raw displacement to [lo, hi]; overflow beyond either
// bound is scaled by elastic. An elastic of 0 is a hard stop and 1 ignores
// the bounds.
func Elastic(raw, lo, hi, elastic float64) float64 {
	switch {
	case raw < lo:
		return lo + (raw-lo)*elastic
	case raw > hi:
		return hi + (raw-hi)*elastic
	default:
		return raw
	}
}

// CardDisplacement is where the card is drawn for a raw vertical offset.
func CardDisplacement(offsetY float64) float64 {
	return Elastic(offsetY, 0, 0, CardElastic)
}

// SwipeDisplacement is where the hot-zone content is drawn for a raw
// horizontal offset.
func SwipeDisplacement(offsetX float64) float64 {
	return Elastic(offsetX, SwipeMin, SwipeMax, SwipeElastic)
}

// Pose is a card transform.
type Pose struct {
	Y       float64 // px, downward positive
	Rotate  float64 // degrees
	Opacity float64 // 0..1
}

// DragPose is the card's pose while being dragged.
func DragPose(offsetY float64) Pose {
	return Pose{
		Y:       CardDisplacement(offsetY),
		Rotate:  CardRotation(offsetY),
		Opacity: CardOpacity(offsetY),
	}
}

// ExitPose is the torn card's pose elapsed into its exit animation,
// starting from the pose it was released at.
func ExitPose(from Pose, elapsed time.Duration) Pose {
	p := motion.EaseIn(motion.Progress(elapsed, 0, ExitDuration))
	return Pose{
		Y:       motion.Mix(from.Y, ExitDistance, p),
		Rotate:  motion.Mix(from.Rotate, ExitRotate, p),
		Opacity: motion.Mix(from.Opacity, 0, p),
	}
}

// ExitDone reports whether the exit animation has finished.
func ExitDone(elapsed time.Duration) bool {
	return elapsed >= ExitDuration
}
