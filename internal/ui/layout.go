package ui

import (
	"math"

	"github.com/chris-regnier/tearoff/internal/state"
	"github.com/mattn/go-runewidth"
)

// Pixel sizes of the layout, converted to cells through the configured
// cell size.
const (
	stripPx      = 128 // foundation strip height
	cardMarginPx = 24  // card inset from the screen edges
	buttonLiftPx = 16  // luggage button distance from the bottom
	cueInsetPx   = 16  // swipe cue distance from the right edge
)

// Selector geometry in cells.
const (
	choiceWidth = 5
	choiceGap   = 3
)

// layout derives every region of the screen from the terminal size.
type layout struct {
	w, h         int
	cellW, cellH float64

	stripTop, stripH int

	cardTop, cardBottom int // rows [cardTop, cardBottom)
	cardLeft, cardRight int // cols [cardLeft, cardRight)

	quoteRow    int
	hintRow     int
	selectorRow int

	buttonRow, buttonCol int
	cueRow, cueCol       int
}

const luggageButton = "(📦)"

func newLayout(w, h int, cellW, cellH float64, maxWidth int) layout {
	l := layout{w: w, h: h, cellW: cellW, cellH: cellH}

	l.stripH = clampInt(l.rows(stripPx), 3, max(3, h/3))
	l.stripTop = h - l.stripH

	mx := max(l.cols(cardMarginPx), 1)
	my := max(l.rows(cardMarginPx), 1)
	l.cardTop = my
	l.cardBottom = max(h/2, my+1)
	l.cardLeft = mx
	l.cardRight = max(w-mx, mx+1)
	if maxWidth > 0 && l.cardRight-l.cardLeft > maxWidth {
		l.cardLeft = (w - maxWidth) / 2
		l.cardRight = l.cardLeft + maxWidth
	}

	// The mood block sits between the card's torn edge and the strip.
	top := l.cardBottom + 1
	center := (top + l.stripTop) / 2
	l.quoteRow = max(center-1, 0)
	l.hintRow = l.quoteRow + 1
	l.selectorRow = l.quoteRow + 3

	l.buttonRow = h - 1 - l.rows(buttonLiftPx)
	l.buttonCol = (w - runewidth.StringWidth(luggageButton)) / 2
	l.cueRow = l.stripTop + l.stripH/2
	l.cueCol = w - 1 - l.cols(cueInsetPx)

	return l
}

func clampInt(v, lo, hi int) int {
	return max(lo, min(hi, v))
}

// rows converts a vertical pixel length to whole rows.
func (l layout) rows(px float64) int {
	return int(math.Round(px / l.cellH))
}

// cols converts a horizontal pixel length to whole columns.
func (l layout) cols(px float64) int {
	return int(math.Round(px / l.cellW))
}

// pxX converts a column delta to pixels.
func (l layout) pxX(cols int) float64 { return float64(cols) * l.cellW }

// pxY converts a row delta to pixels.
func (l layout) pxY(rows int) float64 { return float64(rows) * l.cellH }

func (l layout) inCard(x, y int) bool {
	return y >= l.cardTop && y < l.cardBottom && x >= l.cardLeft && x < l.cardRight
}

func (l layout) inStrip(x, y int) bool {
	return y >= l.stripTop && y < l.h && x >= 0 && x < l.w
}

func (l layout) onLuggageButton(x, y int) bool {
	return y == l.buttonRow && x >= l.buttonCol && x < l.buttonCol+runewidth.StringWidth(luggageButton)
}

// quoteSpan returns the columns [from, to) the quote occupies.
func (l layout) quoteSpan(quote string) (int, int) {
	w := runewidth.StringWidth(quote)
	from := (l.w - w) / 2
	return from, from + w
}

func (l layout) onQuote(x, y int, quote string) bool {
	if y != l.quoteRow && y != l.hintRow {
		return false
	}
	from, to := l.quoteSpan(quote)
	return x >= from && x < to
}

// choiceCol returns the first column of selector choice i.
func (l layout) choiceCol(i int) int {
	total := len(state.Moods)*choiceWidth + (len(state.Moods)-1)*choiceGap
	return (l.w-total)/2 + i*(choiceWidth+choiceGap)
}

// choiceAt returns the mood under (x, y) on the selector row.
func (l layout) choiceAt(x, y int) (state.MoodStage, bool) {
	if y != l.selectorRow {
		return 0, false
	}
	for i, m := range state.Moods {
		c := l.choiceCol(i)
		if x >= c && x < c+choiceWidth {
			return m, true
		}
	}
	return 0, false
}
