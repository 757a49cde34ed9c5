// Package canvas is a fixed-size grid of colored terminal cells. Layers
// paint onto it back to front and Render turns it into styled lines.
package canvas

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"
)

// Cell is one terminal cell. A wide rune occupies its cell and marks the
// next one as a continuation.
type Cell struct {
	Rune rune
	FG   colorful.Color
	BG   colorful.Color
	Bold bool
	cont bool
}

// Canvas is a W x H grid of cells.
type Canvas struct {
	W, H  int
	cells []Cell
}

// New returns a canvas filled with blank cells on bg.
func New(w, h int, bg colorful.Color) *Canvas {
	w, h = max(w, 0), max(h, 0)
	c := &Canvas{W: w, H: h, cells: make([]Cell, w*h)}
	for i := range c.cells {
		c.cells[i] = Cell{Rune: ' ', BG: bg}
	}
	return c
}

// In reports whether (x, y) is on the canvas.
func (c *Canvas) In(x, y int) bool {
	return x >= 0 && y >= 0 && x < c.W && y < c.H
}

// At returns the cell at (x, y). Off-canvas reads return the zero Cell.
func (c *Canvas) At(x, y int) Cell {
	if !c.In(x, y) {
		return Cell{}
	}
	return c.cells[y*c.W+x]
}

func (c *Canvas) cell(x, y int) *Cell {
	return &c.cells[y*c.W+x]
}

// breakWide clears any wide rune that (x, y) is part of, so a narrow
// write never leaves half a glyph behind.
func (c *Canvas) breakWide(x, y int) {
	cur := c.cell(x, y)
	if cur.cont && x > 0 {
		lead := c.cell(x-1, y)
		lead.Rune = ' '
		cur.cont = false
	}
	if x+1 < c.W {
		next := c.cell(x+1, y)
		if next.cont {
			next.cont = false
			next.Rune = ' '
		}
	}
}

// SetBG paints the background of (x, y), keeping its glyph.
func (c *Canvas) SetBG(x, y int, bg colorful.Color) {
	if !c.In(x, y) {
		return
	}
	c.cell(x, y).BG = bg
}

// FillRect paints the background of a rectangle and clears its glyphs.
func (c *Canvas) FillRect(x, y, w, h int, bg colorful.Color) {
	for yy := y; yy < y+h; yy++ {
		for xx := x; xx < x+w; xx++ {
			if !c.In(xx, yy) {
				continue
			}
			c.breakWide(xx, yy)
			cell := c.cell(xx, yy)
			*cell = Cell{Rune: ' ', BG: bg}
		}
	}
}

// Set writes one rune at (x, y) over the existing background and returns
// the number of columns it used. A wide rune that does not fit is skipped.
func (c *Canvas) Set(x, y int, r rune, fg colorful.Color, bold bool) int {
	w := runewidth.RuneWidth(r)
	if w == 0 {
		return 0
	}
	if !c.In(x, y) || (w == 2 && !c.In(x+1, y)) {
		return w
	}
	c.breakWide(x, y)
	cell := c.cell(x, y)
	cell.Rune, cell.FG, cell.Bold, cell.cont = r, fg, bold, false
	if w == 2 {
		c.breakWide(x+1, y)
		next := c.cell(x+1, y)
		next.Rune, next.cont = 0, true
		next.BG = cell.BG
	}
	return w
}

// Text writes s starting at (x, y) and returns the columns advanced.
// Text running off either edge is clipped.
func (c *Canvas) Text(x, y int, s string, fg colorful.Color, bold bool) int {
	start := x
	for _, r := range s {
		x += c.Set(x, y, r, fg, bold)
	}
	return x - start
}

// TextCentered writes s centered on row y within [x, x+w).
func (c *Canvas) TextCentered(x, y, w int, s string, fg colorful.Color, bold bool) {
	sw := runewidth.StringWidth(s)
	c.Text(x+(w-sw)/2, y, s, fg, bold)
}

// Row returns the plain text of row y, without styling.
func (c *Canvas) Row(y int) string {
	if y < 0 || y >= c.H {
		return ""
	}
	var b strings.Builder
	for x := 0; x < c.W; x++ {
		cell := c.At(x, y)
		if cell.cont {
			continue
		}
		b.WriteRune(cell.Rune)
	}
	return b.String()
}

// String returns the plain text of every row.
func (c *Canvas) String() string {
	rows := make([]string, c.H)
	for y := range rows {
		rows[y] = c.Row(y)
	}
	return strings.Join(rows, "\n")
}

type runKey struct {
	fg, bg string
	bold   bool
}

// Render produces the styled text of the canvas, one line per row.
// Adjacent cells with the same colors are rendered as one lipgloss run.
func (c *Canvas) Render() string {
	lines := make([]string, c.H)
	for y := 0; y < c.H; y++ {
		var (
			b   strings.Builder
			run strings.Builder
			key runKey
		)
		flush := func() {
			if run.Len() == 0 {
				return
			}
			style := lipgloss.NewStyle().
				Foreground(lipgloss.Color(key.fg)).
				Background(lipgloss.Color(key.bg)).
				Bold(key.bold)
			b.WriteString(style.Render(run.String()))
			run.Reset()
		}
		for x := 0; x < c.W; x++ {
			cell := c.At(x, y)
			if cell.cont {
				continue
			}
			k := runKey{fg: cell.FG.Hex(), bg: cell.BG.Hex(), bold: cell.Bold}
			if cell.Rune == ' ' {
				// foreground is irrelevant for blanks
				k.fg, k.bold = key.fg, key.bold
			}
			if k != key {
				flush()
				key = k
			}
			run.WriteRune(cell.Rune)
		}
		flush()
		lines[y] = b.String()
	}
	return strings.Join(lines, "\n")
}
