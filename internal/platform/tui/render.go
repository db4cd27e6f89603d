package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/shoutbird/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorSky:     lipgloss.NewStyle().Foreground(lipgloss.Color("117")),
	core.ColorCloud:   lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
	core.ColorCity:    lipgloss.NewStyle().Foreground(lipgloss.Color("108")),
	core.ColorGround:  lipgloss.NewStyle().Foreground(lipgloss.Color("180")),
	core.ColorGrass:   lipgloss.NewStyle().Foreground(lipgloss.Color("112")),
	core.ColorPipe:    lipgloss.NewStyle().Foreground(lipgloss.Color("70")),
	core.ColorPipeCap: lipgloss.NewStyle().Foreground(lipgloss.Color("148")),
	core.ColorBird:    lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
	core.ColorBeak:    lipgloss.NewStyle().Foreground(lipgloss.Color("202")),
	core.ColorScore:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
	core.ColorSplash:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
	core.ColorMeter:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Faint(true),
	core.ColorDim:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y, h := 0, s.Height(); y < h; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
