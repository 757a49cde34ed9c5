package ui

import (
	"time"

	"github.com/chris-regnier/tearoff/internal/canvas"
	"github.com/chris-regnier/tearoff/internal/motion"
	"github.com/chris-regnier/tearoff/internal/state"
)

// Mood background timings.
const (
	paletteFade   = time.Second
	quoteDelay    = 500 * time.Millisecond
	quoteEntrance = 400 * time.Millisecond
	quoteRisePx   = 20
)

var moodIcons = map[state.MoodStage]rune{
	state.Morning:   '≋',
	state.Afternoon: '☀',
	state.Dusk:      '☾',
}

// moodModel is the always-present background: gradient, quote and the
// inline mood selector. The selector's visibility is local to it.
type moodModel struct {
	selectorOpen bool
	selector     motion.Spring // 0 hidden, 1 shown

	from      Palette
	to        Palette
	fadeFrame int

	frame int // frames since mount, for the quote entrance
}

func newMoodModel(m state.MoodStage) *moodModel {
	p := PaletteFor(m)
	return &moodModel{
		selector:  motion.NewSpring(motion.Snappy, 0),
		from:      p,
		to:        p,
		fadeFrame: motion.Frames(paletteFade),
	}
}

// toggleSelector shows or hides the selector.
func (m *moodModel) toggleSelector() {
	m.selectorOpen = !m.selectorOpen
	if m.selectorOpen {
		m.selector.Target = 1
	} else {
		m.selector.Target = 0
	}
}

// moodChanged starts the palette crossfade to mood.
func (m *moodModel) moodChanged(mood state.MoodStage) {
	m.from = m.palette()
	m.to = PaletteFor(mood)
	m.fadeFrame = 0
}

func (m *moodModel) palette() Palette {
	n := motion.Frames(paletteFade)
	if m.fadeFrame >= n {
		return m.to
	}
	return m.from.Mix(m.to, float64(m.fadeFrame)/float64(n))
}

func (m *moodModel) quoteProgress() float64 {
	return motion.EaseOut(motion.Progress(time.Duration(m.frame)*motion.Frame, quoteDelay, quoteEntrance))
}

func (m *moodModel) step() {
	m.frame++
	if m.fadeFrame < motion.Frames(paletteFade) {
		m.fadeFrame++
	}
	m.selector.Step()
	if m.selector.Settled(0.01) {
		m.selector.Snap()
	}
}

func (m *moodModel) animating() bool {
	return m.quoteProgress() < 1 ||
		m.fadeFrame < motion.Frames(paletteFade) ||
		m.selector.Pos != m.selector.Target
}

// drawBackground fills the whole canvas with the current gradient.
func (m *moodModel) drawBackground(cv *canvas.Canvas) {
	p := m.palette()
	for y := 0; y < cv.H; y++ {
		cv.FillRect(0, y, cv.W, 1, p.Gradient(y, cv.H))
	}
}

// drawQuote paints the quote, its hint and the selector.
func (m *moodModel) drawQuote(cv *canvas.Canvas, l layout, active state.MoodStage, quote, hint string) {
	p := m.palette()
	qp := m.quoteProgress()
	if qp > 0 {
		lift := l.rows((1 - qp) * quoteRisePx)
		y := l.quoteRow + lift
		from, _ := l.quoteSpan(quote)
		cv.Text(from, y, quote, fade(p.Text, cv.At(from, y).BG, qp), false)
		if hint != "" && !m.selectorOpen {
			y = l.hintRow + lift
			cv.TextCentered(0, y, cv.W, hint, fade(stone500, cv.At(cv.W/2, y).BG, 0.35*qp), false)
		}
	}

	op := motion.Clamp(m.selector.Pos, 0, 1)
	if op <= 0.01 {
		return
	}
	y := l.selectorRow
	left := l.choiceCol(0) - 1
	right := l.choiceCol(len(state.Moods)-1) + choiceWidth + 1
	for x := left; x < right; x++ {
		under := cv.At(x, y).BG
		cv.FillRect(x, y, 1, 1, fade(fade(white, under, 0.3), under, op))
		track := fade(stone900, cv.At(x, y).BG, 0.1*op)
		cv.Set(x, y, '─', track, false)
	}
	for i, s := range state.Moods {
		x := l.choiceCol(i)
		if s == active {
			for xx := x; xx < x+choiceWidth; xx++ {
				cv.FillRect(xx, y, 1, 1, fade(white, cv.At(xx, y).BG, op))
			}
		} else {
			for xx := x; xx < x+choiceWidth; xx++ {
				cv.Set(xx, y, ' ', p.Text, false)
			}
		}
		cv.Set(x+choiceWidth/2, y, moodIcons[s], fade(PaletteFor(s).Icon, cv.At(x, y).BG, op), s == active)
	}
}
