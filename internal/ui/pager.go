package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

type pagerModel struct {
	viewport viewport.Model
	content  string
	ready    bool
	maxWidth int // maximum viewport width (0 = no limit)
	width    int // terminal width
	height   int // terminal height
	palette  Palette
}

func (m pagerModel) Init() tea.Cmd {
	return nil
}

func (m pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.viewport = viewport.New(m.contentWidth(), msg.Height-1)
			m.viewport.SetContent(m.content)
			m.ready = true
		} else {
			m.viewport.Width = m.contentWidth()
			m.viewport.Height = msg.Height - 1
			m.viewport.SetContent(m.content)
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// contentWidth returns the effective content width, respecting maxWidth.
func (m *pagerModel) contentWidth() int {
	if m.maxWidth > 0 && m.width > m.maxWidth {
		return m.maxWidth
	}
	return m.width
}

func (m pagerModel) View() string {
	bg := lg(m.palette.Top)
	screen := lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		Background(bg)
	if !m.ready {
		return screen.Render("Loading...")
	}
	footer := lipgloss.NewStyle().
		Foreground(lg(fade(stone500, m.palette.Top, 0.8))).
		Background(bg).
		Render("↑/↓ scroll • q quit")
	body := lipgloss.JoinVertical(lipgloss.Left, m.viewport.View(), footer)
	placed := lipgloss.PlaceHorizontal(m.width, lipgloss.Center, body,
		lipgloss.WithWhitespaceBackground(bg))
	return ClearLineEnds(screen.Render(placed), m.palette.Top)
}

// PageOutput writes content to w, or shows it in a full-screen pager when
// w is a terminal and the content is taller than it.
func PageOutput(w io.Writer, content string, maxWidth int, p Palette) error {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		_, err := fmt.Fprint(w, content)
		return err
	}

	_, height, err := term.GetSize(int(f.Fd()))
	if err != nil || strings.Count(content, "\n")+1 <= height-2 {
		_, err := fmt.Fprint(w, content)
		return err
	}

	prog := tea.NewProgram(pagerModel{content: content, maxWidth: maxWidth, palette: p},
		tea.WithAltScreen(), tea.WithOutput(f))
	_, err = prog.Run()
	return err
}
