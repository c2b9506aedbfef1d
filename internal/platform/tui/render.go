package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-crossing/internal/core"
)

// Styles maps each color pair to a lipgloss style.
type Styles map[core.Pair]lipgloss.Style

// NewStyles builds lipgloss styles from a palette.
func NewStyles(p core.Palette) Styles {
	styles := make(Styles, len(p))
	for _, pair := range core.Pairs() {
		s := p.Style(pair)
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(strconv.Itoa(int(s.Fg))))
		if s.HasBg {
			style = style.Background(lipgloss.Color(strconv.Itoa(int(s.Bg))))
		}
		styles[pair] = style
	}
	return styles
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same pair to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen, styles Styles) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startPair := s.GetCell(x, y).Pair

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Pair != startPair {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := styles[startPair]
			if !ok {
				style = styles[core.PairDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
