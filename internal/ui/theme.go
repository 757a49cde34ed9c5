package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/chris-regnier/tearoff/internal/state"
	"github.com/lucasb-eyer/go-colorful"
)

// Palette holds the resolved colors for one mood stage.
type Palette struct {
	Top    colorful.Color // gradient start
	Bottom colorful.Color // gradient end
	Text   colorful.Color
	Accent colorful.Color
	Icon   colorful.Color
}

func hex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(fmt.Sprintf("bad color %q: %v", s, err))
	}
	return c
}

// Built-in mood palettes.
var palettes = map[state.MoodStage]Palette{
	state.Morning: {
		Top:    hex("#EFF6FF"),
		Bottom: hex("#E0F2FE"),
		Text:   hex("#0C4A6E"),
		Accent: hex("#BAE6FD"),
		Icon:   hex("#0EA5E9"),
	},
	state.Afternoon: {
		Top:    hex("#FFFBEB"),
		Bottom: hex("#FFEDD5"),
		Text:   hex("#78350F"),
		Accent: hex("#FDE68A"),
		Icon:   hex("#F59E0B"),
	},
	state.Dusk: {
		Top:    hex("#EEF2FF"),
		Bottom: hex("#F3E8FF"),
		Text:   hex("#312E81"),
		Accent: hex("#C7D2FE"),
		Icon:   hex("#6366F1"),
	},
}

// Fixed colors shared by every mood.
var (
	paper    = hex("#FDFBF7")
	stone200 = hex("#E7E5E4")
	stone300 = hex("#D6D3D1")
	stone400 = hex("#A8A29E")
	stone500 = hex("#78716C")
	stone600 = hex("#57534E")
	stone800 = hex("#292524")
	stone900 = hex("#1C1917")
	white    = hex("#FFFFFF")
	pink400  = hex("#F472B6")
	beige    = hex("#F5F5DC")
)

// PaletteFor returns the palette of a mood.
func PaletteFor(m state.MoodStage) Palette {
	if p, ok := palettes[m]; ok {
		return p
	}
	return palettes[state.DefaultMood]
}

// Mix blends p toward q by t in Lab space.
func (p Palette) Mix(q Palette, t float64) Palette {
	return Palette{
		Top:    p.Top.BlendLab(q.Top, t).Clamped(),
		Bottom: p.Bottom.BlendLab(q.Bottom, t).Clamped(),
		Text:   p.Text.BlendLab(q.Text, t).Clamped(),
		Accent: p.Accent.BlendLab(q.Accent, t).Clamped(),
		Icon:   p.Icon.BlendLab(q.Icon, t).Clamped(),
	}
}

// Gradient returns the background color of row y on a screen h rows tall.
func (p Palette) Gradient(y, h int) colorful.Color {
	if h <= 1 {
		return p.Top
	}
	return p.Top.BlendLab(p.Bottom, float64(y)/float64(h-1)).Clamped()
}

// fade blends c toward under; opacity 1 keeps c, 0 yields under.
func fade(c, under colorful.Color, opacity float64) colorful.Color {
	switch {
	case opacity >= 1:
		return c
	case opacity <= 0:
		return under
	}
	return under.BlendLab(c, opacity).Clamped()
}

// bgEscapeCode returns the raw ANSI escape sequence to set a background
// color, for use with terminal control codes like \x1b[K.
func bgEscapeCode(c colorful.Color) string {
	r, g, b := c.RGB255()
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm", r, g, b)
}

// ClearLineEnds appends a terminal-level erase-to-end-of-line (\x1b[K) to
// every line, ensuring the background fills to the right terminal edge.
// Use this for output produced by lipgloss.Place that may not extend to the
// full terminal width.
func ClearLineEnds(content string, bg colorful.Color) string {
	clearEOL := bgEscapeCode(bg) + "\x1b[K"
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = line + clearEOL
	}
	return strings.Join(lines, "\n")
}

// lg converts a colorful color to a lipgloss color.
func lg(c colorful.Color) lipgloss.Color {
	return lipgloss.Color(c.Hex())
}
