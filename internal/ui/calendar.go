package ui

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/chris-regnier/tearoff/internal/canvas"
	"github.com/chris-regnier/tearoff/internal/gesture"
	"github.com/chris-regnier/tearoff/internal/motion"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"
)

// digitFont draws the day number three columns wide and five rows tall.
var digitFont = [10][5]string{
	{"███", "█ █", "█ █", "█ █", "███"},
	{" █ ", "██ ", " █ ", " █ ", "███"},
	{"███", "  █", "███", "█  ", "███"},
	{"███", "  █", "███", "  █", "███"},
	{"█ █", "█ █", "███", "  █", "  █"},
	{"███", "█  ", "███", "  █", "███"},
	{"███", "█  ", "███", "█ █", "███"},
	{"███", "  █", "  █", "  █", "  █"},
	{"███", "█ █", "███", "█ █", "███"},
	{"███", "█ █", "███", "  █", "███"},
}

// bigNumber renders n in digitFont.
func bigNumber(n int) []string {
	rows := make([]string, 5)
	for i, d := range strconv.Itoa(n) {
		for r := range rows {
			if i > 0 {
				rows[r] += " "
			}
			rows[r] += digitFont[d-'0'][r]
		}
	}
	return rows
}

// spaced puts a space between every rune, for tracked-out lettering.
func spaced(s string) string {
	return strings.Join(strings.Split(s, ""), " ")
}

// calendarModel is the tear-off page. It only lives while the page has not
// been torn; after the tear it plays its exit and the root drops it.
type calendarModel struct {
	date time.Time
	drag gesture.Drag
	// snap carries the raw offset back to rest after a short release.
	snap motion.Spring

	exiting   bool
	exitFrom  gesture.Pose
	exitFrame int
}

func newCalendarModel(date time.Time) *calendarModel {
	return &calendarModel{
		date: date,
		drag: gesture.NewDrag(gesture.AxisY),
		snap: motion.NewSpring(motion.Snappy, 0),
	}
}

// interactive reports whether the page still accepts drags.
func (c *calendarModel) interactive() bool {
	return !c.exiting
}

// offset is the raw vertical displacement currently shown.
func (c *calendarModel) offset() float64 {
	if c.drag.Active() {
		return c.drag.Offset()
	}
	return c.snap.Pos
}

func (c *calendarModel) pose() gesture.Pose {
	if c.exiting {
		return gesture.ExitPose(c.exitFrom, c.exitElapsed())
	}
	return gesture.DragPose(c.offset())
}

func (c *calendarModel) exitElapsed() time.Duration {
	return time.Duration(c.exitFrame) * motion.Frame
}

// press starts a pointer drag at a pixel position.
func (c *calendarModel) press(px, py float64) {
	if !c.interactive() {
		return
	}
	start := c.snap.Pos
	c.snap.Snap()
	c.drag.BeginAt(px, py, start)
}

func (c *calendarModel) move(px, py float64) {
	if !c.interactive() {
		return
	}
	c.drag.Move(px, py)
}

// nudge pulls the page by delta pixels from the keyboard.
func (c *calendarModel) nudge(delta float64) {
	if !c.interactive() {
		return
	}
	if !c.drag.Active() {
		start := c.snap.Pos
		c.snap.Snap()
		c.drag.Nudge(start)
	}
	c.drag.Nudge(delta)
}

// release ends the drag and returns the final raw offset. The page springs
// back unless the caller commits the tear with beginExit.
func (c *calendarModel) release() (float64, bool) {
	if !c.drag.Active() {
		return 0, false
	}
	off := c.drag.End()
	c.snap = motion.NewSpring(motion.Snappy, off)
	c.snap.Target = 0
	return off, true
}

// beginExit starts the torn page's fall from the pose at offset.
func (c *calendarModel) beginExit(offset float64) {
	c.drag.Cancel()
	c.exiting = true
	c.exitFrom = gesture.DragPose(offset)
	c.exitFrame = 0
}

func (c *calendarModel) step() {
	if c.exiting {
		c.exitFrame++
		return
	}
	if !c.drag.Active() {
		c.snap.Step()
		if c.snap.Settled(0.5) {
			c.snap.Snap()
		}
	}
}

func (c *calendarModel) animating() bool {
	if c.exiting {
		return !c.done()
	}
	return !c.drag.Active() && c.snap.Pos != c.snap.Target
}

// done reports whether the exit animation has finished.
func (c *calendarModel) done() bool {
	return c.exiting && gesture.ExitDone(c.exitElapsed())
}

// draw paints the page over whatever is already on the canvas.
func (c *calendarModel) draw(cv *canvas.Canvas, l layout, hint string, pulse bool) {
	p := c.pose()
	if p.Opacity <= 0 {
		return
	}
	dy := l.rows(p.Y)
	sin := math.Sin(p.Rotate * math.Pi / 180)
	skew := func(r int) int {
		return int(math.Round(float64(r) * l.cellH * sin / l.cellW))
	}
	cardH := l.cardBottom - l.cardTop
	cardW := l.cardRight - l.cardLeft

	// Paper.
	for r := 0; r < cardH; r++ {
		y := l.cardTop + r + dy
		for x := l.cardLeft; x < l.cardRight; x++ {
			xx := x + skew(r)
			under := cv.At(xx, y).BG
			cv.FillRect(xx, y, 1, 1, fade(paper, under, p.Opacity))
		}
	}

	// Torn edge along the bottom.
	edgeY := l.cardBottom + dy
	for x := l.cardLeft; x < l.cardRight; x++ {
		xx := x + skew(cardH)
		under := cv.At(xx, edgeY).BG
		cv.Set(xx, edgeY, '▼', fade(paper, under, p.Opacity), false)
	}

	text := func(r int, s string, fg colorful.Color, bold bool) {
		if r < 0 || r >= cardH {
			return
		}
		y := l.cardTop + r + dy
		x := l.cardLeft + (cardW-runewidth.StringWidth(s))/2 + skew(r)
		under := cv.At(x, y).BG
		cv.Text(x, y, s, fade(fg, under, p.Opacity), bold)
	}

	month := c.date.Format("January")
	weekday := strings.ToUpper(c.date.Format("Monday"))
	digits := bigNumber(c.date.Day())

	const hintSpace = 2
	block := 1 + len(digits) + 1 + 1
	gap := 0
	if cardH-hintSpace >= block+3 {
		gap = 1
	}
	block += 2 * gap
	r := max((cardH-hintSpace-block)/2, 0)

	text(r, month, stone500, false)
	r += 1 + gap
	if cardH >= block {
		for _, line := range digits {
			text(r, line, fade(stone900, paper, 0.9), true)
			r++
		}
	} else {
		text(r, strconv.Itoa(c.date.Day()), stone900, true)
		r++
	}
	r += gap
	text(r, "────", stone300, false)
	r++
	text(r, spaced(weekday), stone400, false)

	if hr := cardH - hintSpace; hr > r && hint != "" {
		op := 0.6
		if pulse {
			op = 0.3
		}
		text(hr, spaced(strings.ToUpper(hint)), fade(stone400, paper, op), false)
	}
}
