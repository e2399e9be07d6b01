package header

import (
	"github.com/charmbracelet/lipgloss"
)

// Renderer draws header labels for a terminal.
type Renderer struct {
	// Active styles the glyph of the field being sorted by.
	Active lipgloss.Style
	// Inactive styles every other glyph.
	Inactive lipgloss.Style
}

// DefaultRenderer shows the active glyph in bold dark grey and the others in
// light grey.
func DefaultRenderer() Renderer {
	return Renderer{
		Active:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#555555")),
		Inactive: lipgloss.NewStyle().Foreground(lipgloss.Color("#cccccc")),
	}
}

// View is what a Renderer reads from a header. Header implements it.
type View interface {
	Active() bool
	Glyph() string
}

var _ View = Header[int]{}

// Render returns label followed by the header's glyph. Unsortable headers
// render as the bare label.
func (r Renderer) Render(h View, label string) string {
	glyph := h.Glyph()
	if glyph == "" {
		return label
	}

	style := r.Inactive
	if h.Active() {
		style = r.Active
	}

	return label + " " + style.Render(glyph)
}

// Labels renders a whole header row. labels is indexed like row; missing
// labels render as the empty string.
func Labels[F comparable](r Renderer, row []Header[F], labels ...string) []string {
	out := make([]string, len(row))

	for i, h := range row {
		var label string
		if i < len(labels) {
			label = labels[i]
		}

		out[i] = r.Render(h, label)
	}

	return out
}
