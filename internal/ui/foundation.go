package ui

import (
	"math"

	"github.com/chris-regnier/tearoff/internal/canvas"
	"github.com/chris-regnier/tearoff/internal/gesture"
	"github.com/chris-regnier/tearoff/internal/motion"
	"github.com/chris-regnier/tearoff/internal/particle"
)

// Luggage button opacity once the page is torn.
const buttonTornOpacity = 0.8

// foundationModel is the bottom strip: the swipe hot-zone, the particle
// pile and the luggage button.
type foundationModel struct {
	drag gesture.Drag
	snap motion.Spring // hot-zone offset returning to rest

	burst  *particle.Burst
	button motion.Spring // luggage button opacity
}

func newFoundationModel() *foundationModel {
	return &foundationModel{
		drag:   gesture.NewDrag(gesture.AxisX),
		snap:   motion.NewSpring(motion.Snappy, 0),
		button: motion.NewSpring(motion.Snappy, 0),
	}
}

// displayed is the hot-zone content's drawn displacement in pixels.
func (f *foundationModel) displayed() float64 {
	if f.drag.Active() {
		return gesture.SwipeDisplacement(f.drag.Offset())
	}
	return f.snap.Pos
}

func (f *foundationModel) press(px, py float64) {
	start := f.snap.Pos
	f.snap.Snap()
	f.drag.BeginAt(px, py, start)
}

func (f *foundationModel) move(px, py float64) {
	f.drag.Move(px, py)
}

func (f *foundationModel) nudge(delta float64) {
	if !f.drag.Active() {
		start := f.snap.Pos
		f.snap.Snap()
		f.drag.Nudge(start)
	}
	f.drag.Nudge(delta)
}

// release ends the hot-zone drag and returns the raw horizontal offset.
func (f *foundationModel) release() (float64, bool) {
	if !f.drag.Active() {
		return 0, false
	}
	off := f.drag.End()
	f.snap = motion.NewSpring(motion.Snappy, gesture.SwipeDisplacement(off))
	f.snap.Target = 0
	return off, true
}

// torn drops a burst onto the strip and brings up the luggage button.
func (f *foundationModel) torn(b *particle.Burst) {
	f.burst = b
	f.button.Target = buttonTornOpacity
}

func (f *foundationModel) step() {
	if !f.drag.Active() {
		f.snap.Step()
		if f.snap.Settled(0.5) {
			f.snap.Snap()
		}
	}
	f.button.Step()
	if f.button.Settled(0.005) {
		f.button.Snap()
	}
	if f.burst != nil {
		f.burst.Step()
	}
}

func (f *foundationModel) animating() bool {
	if !f.drag.Active() && f.snap.Pos != f.snap.Target {
		return true
	}
	if f.button.Pos != f.button.Target {
		return true
	}
	return f.burst != nil && !f.burst.Settled()
}

// glyph picks a character for a piece's shape, size and angle.
func glyph(s particle.Snapshot) rune {
	if s.Scale < 0.75 {
		return '·'
	}
	big := (s.Width+s.Height)/2 >= 20
	if s.Shape == particle.ShapeCircle {
		if big {
			return '●'
		}
		return '•'
	}
	if s.Clipped {
		return '◤'
	}
	a := math.Mod(math.Abs(s.Angle), 90)
	if a > 22.5 && a < 67.5 {
		return '◆'
	}
	if big {
		return '■'
	}
	return '▪'
}

func (f *foundationModel) draw(cv *canvas.Canvas, l layout, pulse bool) {
	if f.burst != nil {
		for _, s := range f.burst.Snapshots() {
			if s.Opacity <= 0 {
				continue
			}
			y := l.h - 1 - l.rows(s.Bottom-s.Y)
			if y < l.stripTop || y >= l.h {
				continue
			}
			x := int(math.Round(s.Left/100*float64(l.w))) + l.cols(s.X)
			under := cv.At(x, y).BG
			cv.Set(x, y, glyph(s), fade(stone300, under, s.Opacity), false)
		}
	}

	// Swipe cue, carried along by the drag.
	cueOpacity := 0.3
	if pulse {
		cueOpacity = 0.15
	}
	cx := l.cueCol + l.cols(f.displayed())
	cv.Set(cx, l.cueRow, '←', fade(stone500, cv.At(cx, l.cueRow).BG, cueOpacity), false)

	if op := motion.Clamp(f.button.Pos, 0, 1); op > 0.01 {
		x := l.buttonCol
		for _, r := range luggageButton {
			under := cv.At(x, l.buttonRow).BG
			fg := stone400
			if r != '(' && r != ')' {
				fg = stone600
			}
			cv.FillRect(x, l.buttonRow, 1, 1, fade(fade(white, under, 0.4), under, op))
			x += cv.Set(x, l.buttonRow, r, fade(fg, under, op), false)
		}
	}
}
