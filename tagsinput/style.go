package tagsinput

import "github.com/charmbracelet/lipgloss"

// Style controls how tags and the pending input render. The zero Style
// renders plain text.
type Style struct {
	Tag          lipgloss.Style
	TagActive    lipgloss.Style
	Delete       lipgloss.Style
	DeleteActive lipgloss.Style

	Text        lipgloss.Style
	Placeholder lipgloss.Style
	Cursor      lipgloss.Style

	// Disabled renders the raw host value of a disabled input.
	Disabled lipgloss.Style
}

func DefaultStyle() Style {
	tag := lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("237"))
	active := lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("62")).Bold(true)
	return Style{
		Tag:          tag.Padding(0, 1),
		TagActive:    active.Padding(0, 1),
		Delete:       tag.Foreground(lipgloss.Color("245")).PaddingRight(1),
		DeleteActive: active.PaddingRight(1),
		Text:         lipgloss.NewStyle(),
		Placeholder:  lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Cursor:       lipgloss.NewStyle().Reverse(true),
		Disabled:     lipgloss.NewStyle().Faint(true),
	}
}
