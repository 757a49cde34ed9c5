package ui

import (
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/chris-regnier/tearoff/internal/canvas"
	"github.com/chris-regnier/tearoff/internal/content"
	"github.com/chris-regnier/tearoff/internal/motion"
	"github.com/chris-regnier/tearoff/internal/state"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"
)

// Panel geometry in cells.
const (
	panelPadX   = 2
	panelPadY   = 1
	panelBodyY  = 4 // header row, then a two-row gap
	rowsPerCard = 4 // three-row card and a blank
)

// Message wall entrance stagger.
const (
	messageStagger  = 100 * time.Millisecond
	messageEntrance = 300 * time.Millisecond
	messageRisePx   = 20
)

// panel is one full-screen overlay. A closing panel keeps drawing until it
// has slid off screen; the root then drops it.
type panel struct {
	kind    state.Overlay
	title   string
	lines   []string      // message text or "icon  title" per card
	slide   motion.Spring // 1 off screen, 0 in place
	closing bool
	frame   int
	focus   int
	vp      viewport.Model
}

func newPanel(kind state.Overlay, ct *content.Content, w, h int) *panel {
	p := &panel{
		kind:  kind,
		slide: motion.NewSpring(motion.Snappy, 1),
	}
	p.slide.Target = 0
	switch kind {
	case state.OverlayResonance:
		p.title = ct.Resonance.Title
		p.lines = append(p.lines, ct.Resonance.Messages...)
	case state.OverlayLuggage:
		p.title = ct.Luggage.Title
		for _, it := range ct.Luggage.Items {
			p.lines = append(p.lines, it.Icon+"  "+it.Title)
		}
	}
	p.vp = viewport.New(w, max(h-panelBodyY-2, 1))
	p.vp.SetContent(strings.Repeat("\n", max(len(p.lines)*rowsPerCard-1, 0)))
	return p
}

func (p *panel) resize(w, h int) {
	p.vp.Width = w
	p.vp.Height = max(h-panelBodyY-2, 1)
	p.vp.SetContent(strings.Repeat("\n", max(len(p.lines)*rowsPerCard-1, 0)))
}

func (p *panel) close() {
	p.closing = true
	p.slide.Target = 1
}

func (p *panel) step() {
	p.frame++
	p.slide.Step()
	if p.slide.Settled(0.002) {
		p.slide.Snap()
	}
}

// gone reports whether a closing panel has left the screen.
func (p *panel) gone() bool {
	return p.closing && p.slide.Pos == p.slide.Target
}

func (p *panel) animating() bool {
	if p.slide.Pos != p.slide.Target {
		return true
	}
	if p.kind == state.OverlayResonance {
		last := time.Duration(len(p.lines)-1)*messageStagger + messageEntrance
		return time.Duration(p.frame)*motion.Frame < last
	}
	return false
}

// moveFocus shifts the highlighted card and keeps it in view.
func (p *panel) moveFocus(delta int) {
	if len(p.lines) == 0 {
		return
	}
	p.focus = clampInt(p.focus+delta, 0, len(p.lines)-1)
	top := p.focus * rowsPerCard
	bottom := top + rowsPerCard - 2
	if top < p.vp.YOffset {
		p.vp.SetYOffset(top)
	} else if bottom >= p.vp.YOffset+p.vp.Height {
		p.vp.SetYOffset(bottom - p.vp.Height + 1)
	}
}

// offset is where the panel's top-left corner sits on screen.
func (p *panel) offset(w, h int) (int, int) {
	pos := motion.Clamp(p.slide.Pos, 0, 1.2)
	if p.kind == state.OverlayLuggage {
		return 0, int(math.Round(pos * float64(h)))
	}
	return int(math.Round(pos * float64(w))), 0
}

// onClose reports whether screen cell (x, y) hits the close control.
func (p *panel) onClose(x, y, w, h int) bool {
	ox, oy := p.offset(w, h)
	return y-oy == panelPadY && x-ox >= w-panelPadX-2 && x-ox < w
}

// cardAt returns the card index under screen cell (x, y).
func (p *panel) cardAt(x, y, w, h int) (int, bool) {
	ox, oy := p.offset(w, h)
	row := y - oy - panelBodyY
	if row < 0 || row >= p.vp.Height || x-ox < panelPadX || x-ox >= w-panelPadX {
		return 0, false
	}
	row += p.vp.YOffset
	i := row / rowsPerCard
	if i >= len(p.lines) || row%rowsPerCard == rowsPerCard-1 {
		return 0, false
	}
	return i, true
}

type panelColors struct {
	bg, card, border, text, title colorful.Color
	opacity                       float64 // panel background over the screen
	cardOpacity                   float64
}

func (p *panel) colors() panelColors {
	if p.kind == state.OverlayLuggage {
		return panelColors{bg: beige, card: white, border: stone200, text: stone800, title: stone800, opacity: 1, cardOpacity: 1}
	}
	return panelColors{bg: stone900, card: white, border: white, text: white, title: white, opacity: 0.9, cardOpacity: 0.1}
}

func (p *panel) draw(cv *canvas.Canvas, l layout, footer string) {
	w, h := cv.W, cv.H
	ox, oy := p.offset(w, h)
	pc := p.colors()

	for y := oy; y < oy+h; y++ {
		for x := ox; x < ox+w; x++ {
			cv.FillRect(x, y, 1, 1, fade(pc.bg, cv.At(x, y).BG, pc.opacity))
		}
	}
	panelBG := func(x, y int) colorful.Color { return cv.At(x, y).BG }

	// Header.
	cv.Text(ox+panelPadX, oy+panelPadY, p.title, pc.title, true)
	cv.Set(ox+w-panelPadX-1, oy+panelPadY, '✕', pc.title, true)

	elapsed := time.Duration(p.frame) * motion.Frame
	cardW := w - 2*panelPadX
	for i, line := range p.lines {
		op, lift := 1.0, 0
		if p.kind == state.OverlayResonance {
			t := motion.EaseOut(motion.Progress(elapsed, time.Duration(i)*messageStagger, messageEntrance))
			op = t
			lift = l.rows((1 - t) * messageRisePx)
		}
		if op <= 0 {
			continue
		}
		top := i*rowsPerCard - p.vp.YOffset + lift
		for r := 0; r < rowsPerCard-1; r++ {
			row := top + r
			if row < 0 || row >= p.vp.Height {
				continue
			}
			y := oy + panelBodyY + row
			x0 := ox + panelPadX
			for x := x0; x < x0+cardW; x++ {
				under := panelBG(x, y)
				cv.FillRect(x, y, 1, 1, fade(fade(pc.card, under, pc.cardOpacity), under, op))
			}
			border := fade(fade(pc.border, panelBG(x0, y), 0.3), panelBG(x0, y), op)
			if i == p.focus {
				border = fade(stone400, panelBG(x0, y), op)
			}
			switch r {
			case 0:
				cv.Text(x0, y, "╭"+strings.Repeat("─", max(cardW-2, 0))+"╮", border, false)
			case 1:
				cv.Set(x0, y, '│', border, false)
				cv.Set(x0+cardW-1, y, '│', border, false)
				text := runewidth.Truncate(line, max(cardW-4, 0), "…")
				cv.Text(x0+2, y, text, fade(pc.text, panelBG(x0+2, y), 0.9*op), false)
			case 2:
				cv.Text(x0, y, "╰"+strings.Repeat("─", max(cardW-2, 0))+"╯", border, false)
				if p.kind == state.OverlayResonance && i == p.focus {
					cv.Set(x0+cardW-4, y, '♥', fade(pink400, panelBG(x0+cardW-4, y), op), false)
				}
			}
		}
	}

	if footer != "" {
		cv.Text(ox+panelPadX, oy+h-1, footer, fade(pc.text, panelBG(ox+panelPadX, oy+h-1), 0.5), false)
	}
}
