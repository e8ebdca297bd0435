package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme contains the visual styles shared by the picker, the game and the
// session scores.
type Theme struct {
	// HUD
	HUDLabel lipgloss.Style
	HUDValue lipgloss.Style
	HUDMuted lipgloss.Style

	// Field border
	Border lipgloss.Style

	// Overlays (pause, game over)
	OverlayTitle lipgloss.Style
	OverlayText  lipgloss.Style

	// Picker
	MenuTitle      lipgloss.Style
	MenuItemActive lipgloss.Style
	Help           lipgloss.Style
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		HUDLabel: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		HUDValue: lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
		HUDMuted: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),

		Border: lipgloss.NewStyle().Foreground(lipgloss.Color("238")),

		OverlayTitle: lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true),
		OverlayText:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),

		MenuTitle:      lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true).MarginBottom(1),
		MenuItemActive: lipgloss.NewStyle().Bold(true).Underline(true),
		Help:           lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// swatch renders a color sample block.
func swatch(hex string, width int) string {
	block := make([]rune, max(width, 1))
	for i := range block {
		block[i] = '█'
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render(string(block))
}
