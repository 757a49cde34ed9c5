package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// maxSettleFrames bounds how long RenderFrame fast-forwards animations.
const maxSettleFrames = 600

// RunTUI launches the interactive screen.
func RunTUI(cfg TUIConfig) error {
	m := NewModel(cfg)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running tui: %w", err)
	}
	return nil
}

// RenderFrame renders one settled frame at the given size, as the screen
// looks once its entrance animations have finished.
func RenderFrame(cfg TUIConfig, width, height int) string {
	m := NewModel(cfg)
	sized, _ := m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	m = sized.(Model)
	m.settle()
	return m.View()
}

// settle steps every animation until nothing moves.
func (m *Model) settle() {
	for i := 0; i < maxSettleFrames && m.animating(); i++ {
		m.stepFrame()
	}
	m.ticking = false
}
