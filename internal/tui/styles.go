package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette.
//
//nolint:gochecknoglobals // Shared style palette.
var (
	ColorHeader    = lipgloss.Color("39")
	ColorLabel     = lipgloss.Color("245")
	ColorValue     = lipgloss.Color("255")
	ColorMuted     = lipgloss.Color("240")
	ColorBorder    = lipgloss.Color("63")
	ColorHighlight = lipgloss.Color("212")
	ColorButton    = lipgloss.Color("27")
	ColorButtonFg  = lipgloss.Color("231")
)

// Shared styles.
//
//nolint:gochecknoglobals // Shared style palette.
var (
	HeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorHeader)
	LabelStyle  = lipgloss.NewStyle().Foreground(ColorLabel)
	ValueStyle  = lipgloss.NewStyle().Foreground(ColorValue).Bold(true)
	SubtleStyle = lipgloss.NewStyle().Foreground(ColorMuted)
	InfoStyle   = lipgloss.NewStyle().Foreground(ColorLabel).Italic(true)

	TableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorHeader).
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(ColorBorder).
				BorderBottom(true).
				Padding(0, 1)
	TableCellStyle     = lipgloss.NewStyle().Padding(0, 1)
	TableSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorHighlight)

	ButtonStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorButtonFg).
			Background(ColorButton).
			Padding(0, 2)
	ButtonActiveStyle = ButtonStyle.
				Background(ColorHighlight)
)
