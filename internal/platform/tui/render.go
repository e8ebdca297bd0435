package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/jollyjumper/internal/core"
)

// styleCache maps hex colors to lipgloss styles. Pieces fade through many
// shades, so styles are built on demand rather than from a fixed table.
type styleCache map[core.Color]lipgloss.Style

func (c styleCache) get(color core.Color) lipgloss.Style {
	if style, ok := c[color]; ok {
		return style
	}
	style := lipgloss.NewStyle()
	if color != core.ColorNone {
		style = style.Foreground(lipgloss.Color(string(color)))
	}
	c[color] = style
	return style
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	styles := make(styleCache)

	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if start == core.ColorNone {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(styles.get(start).Render(run.String()))
		}
	}
	return sb.String()
}
