package canvas

import (
	"regexp"
	"strings"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

var (
	white = colorful.Color{R: 1, G: 1, B: 1}
	black = colorful.Color{}
	red   = colorful.Color{R: 1}
)

func stripANSI(s string) string {
	return regexp.MustCompile(`\x1b\[[0-9;]*m`).ReplaceAllString(s, "")
}

func TestNewBlank(t *testing.T) {
	c := New(4, 2, black)
	if got := c.String(); got != "    \n    " {
		t.Errorf("blank canvas = %q", got)
	}
	if c.At(9, 9) != (Cell{}) {
		t.Error("off-canvas read should be zero")
	}
}

func TestNegativeSize(t *testing.T) {
	c := New(-3, -1, black)
	if c.W != 0 || c.H != 0 || c.String() != "" {
		t.Errorf("negative size canvas: %dx%d %q", c.W, c.H, c.String())
	}
}

func TestTextClipsAtEdges(t *testing.T) {
	c := New(5, 1, black)
	c.Text(-2, 0, "abcdefg", white, false)
	if got := c.Row(0); got != "cdefg" {
		t.Errorf("row = %q, want %q", got, "cdefg")
	}
	c.Text(3, 0, "XYZ", white, false)
	if got := c.Row(0); got != "cdeXY" {
		t.Errorf("row = %q, want %q", got, "cdeXY")
	}
}

func TestWideRunes(t *testing.T) {
	c := New(6, 1, black)
	n := c.Text(0, 0, "午后", white, false)
	if n != 4 {
		t.Errorf("advanced %d columns, want 4", n)
	}
	if got := c.Row(0); got != "午后  " {
		t.Errorf("row = %q", got)
	}

	// Overwriting the second half of a wide rune clears the whole glyph.
	c.Set(1, 0, 'x', red, false)
	if got := c.Row(0); got != " x后  " {
		t.Errorf("after split row = %q", got)
	}
}

func TestWideRuneDoesNotFitAtEdge(t *testing.T) {
	c := New(3, 1, black)
	c.Text(2, 0, "后", white, false)
	if got := c.Row(0); got != "   " {
		t.Errorf("row = %q, want blanks", got)
	}
}

func TestFillRectAndSetBG(t *testing.T) {
	c := New(4, 3, black)
	c.Text(0, 1, "abcd", white, false)
	c.FillRect(1, 1, 2, 5, red)
	if got := c.Row(1); got != "a  d" {
		t.Errorf("row = %q", got)
	}
	if c.At(1, 2).BG != red || c.At(0, 2).BG != black {
		t.Error("FillRect painted wrong cells")
	}
	c.SetBG(3, 1, red)
	if c.At(3, 1).Rune != 'd' || c.At(3, 1).BG != red {
		t.Error("SetBG should keep the glyph")
	}
}

func TestTextCentered(t *testing.T) {
	c := New(9, 1, black)
	c.TextCentered(0, 0, 9, "abc", white, true)
	if got := c.Row(0); got != "   abc   " {
		t.Errorf("row = %q", got)
	}
	if !c.At(3, 0).Bold {
		t.Error("expected bold cell")
	}
}

func TestRenderKeepsText(t *testing.T) {
	c := New(5, 2, black)
	c.Text(0, 0, "hi", white, false)
	c.Text(2, 1, "后", red, true)
	out := stripANSI(c.Render())
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0] != "hi   " || lines[1] != "  后 " {
		t.Errorf("render = %q", lines)
	}
}
