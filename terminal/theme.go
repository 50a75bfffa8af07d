package terminal

import (
	"charm.land/lipgloss/v2"

	editor "github.com/0x1david/neotext/core"
)

// Theme holds every style the renderer applies, grounded on the teacher's
// adapter-bubbletea/adapter.go Theme struct, generalized from lipgloss v1 to
// v2's Style type.
type Theme struct {
	NormalModeStyle        lipgloss.Style
	InsertModeStyle        lipgloss.Style
	VisualModeStyle        lipgloss.Style
	CommandModeStyle       lipgloss.Style
	StatusLineStyle        lipgloss.Style
	CommandLineStyle       lipgloss.Style
	MessageStyle           lipgloss.Style
	ErrorStyle              lipgloss.Style
	LineNumberStyle        lipgloss.Style
	CurrentLineNumberStyle lipgloss.Style
	SelectionStyle         lipgloss.Style
}

var DefaultTheme = Theme{
	NormalModeStyle:        lipgloss.NewStyle().Background(lipgloss.Color("62")).Foreground(lipgloss.Color("255")),
	InsertModeStyle:        lipgloss.NewStyle().Background(lipgloss.Color("26")).Foreground(lipgloss.Color("255")),
	VisualModeStyle:        lipgloss.NewStyle().Background(lipgloss.Color("127")).Foreground(lipgloss.Color("255")),
	CommandModeStyle:       lipgloss.NewStyle().Background(lipgloss.Color("208")).Foreground(lipgloss.Color("255")),
	StatusLineStyle:        lipgloss.NewStyle().Background(lipgloss.Color("236")).Foreground(lipgloss.Color("255")),
	CommandLineStyle:       lipgloss.NewStyle().Background(lipgloss.Color("235")).Foreground(lipgloss.Color("255")),
	MessageStyle:           lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
	ErrorStyle:              lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	LineNumberStyle:        lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	CurrentLineNumberStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	SelectionStyle:         lipgloss.NewStyle().Background(lipgloss.Color("237")),
}

func (t Theme) modeStyle(kind editor.ModeKind) lipgloss.Style {
	switch kind {
	case editor.ModeInsert:
		return t.InsertModeStyle
	case editor.ModeVisual, editor.ModeVisualLine:
		return t.VisualModeStyle
	case editor.ModeCommand, editor.ModeFind:
		return t.CommandModeStyle
	default:
		return t.NormalModeStyle
	}
}
