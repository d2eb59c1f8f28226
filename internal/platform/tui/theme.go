package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// Theme contains the visual styles of the terminal front end.
type Theme struct {
	// Palette maps screen colors to terminal styles
	Palette map[core.Color]lipgloss.Style

	// Menu styles
	MenuTitle       lipgloss.Style
	MenuItemNormal  lipgloss.Style
	MenuItemActive  lipgloss.Style
	MenuDescription lipgloss.Style

	// Dialog styles
	DialogBox  lipgloss.Style
	DialogText lipgloss.Style
	DialogHint lipgloss.Style
}

// DefaultTheme returns the default theme. Tile shades warm up as values grow.
func DefaultTheme() Theme {
	return Theme{
		Palette: map[core.Color]lipgloss.Style{
			core.ColorDefault:       lipgloss.NewStyle(),
			core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
			core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
			core.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true),
			core.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("221")).Bold(true),
			core.ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
			core.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
			core.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
			core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("213")).Bold(true),
			core.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("170")).Bold(true),
			core.ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("87")).Bold(true),
			core.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("38")).Bold(true),
			core.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("120")).Bold(true),
			core.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
		},

		MenuTitle:       lipgloss.NewStyle().Foreground(lipgloss.Color("221")).Bold(true),
		MenuItemNormal:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		MenuItemActive:  lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true),
		MenuDescription: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),

		DialogBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("208")).
			Padding(1, 3),
		DialogText: lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
		DialogHint: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

var theme = DefaultTheme()
