package ui

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// markdownRenderer caches a glamour renderer for one width and style.
type markdownRenderer struct {
	style    string
	width    int
	renderer *glamour.TermRenderer
}

func newMarkdownRenderer(style string) *markdownRenderer {
	if style == "" {
		style = "dark"
	}
	return &markdownRenderer{style: style}
}

// ensure recreates the renderer if the width changed.
func (r *markdownRenderer) ensure(width int) error {
	if width < 1 {
		width = 80
	}
	if r.renderer != nil && width == r.width {
		return nil
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStylePath(r.style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return err
	}
	r.renderer = renderer
	r.width = width
	return nil
}

// Render renders markdown for terminal display. It returns the original
// content if rendering fails.
func (r *markdownRenderer) Render(content string, width int) string {
	if content == "" {
		return ""
	}
	if err := r.ensure(width); err != nil {
		return content
	}
	rendered, err := r.renderer.Render(content)
	if err != nil {
		return content
	}
	return strings.TrimRight(rendered, "\n")
}

// RenderMarkdown renders content once with the given glamour style.
func RenderMarkdown(content string, width int, style string) string {
	return newMarkdownRenderer(style).Render(content, width)
}
