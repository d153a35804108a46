package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/zombie-arcade/internal/core"
)

// styleFor returns the lipgloss style for a cell colour. The default colour
// has no style and is written without escape codes.
func styleFor(c core.Color) (lipgloss.Style, bool) {
	code := c.ANSI()
	if code == "" {
		return lipgloss.Style{}, false
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(code)), true
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells of one colour share a single styled run.
func RenderScreen(s *core.Screen) string {
	styles := make(map[core.Color]lipgloss.Style)

	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}

		for x := 0; x < s.Width(); {
			col := s.GetCell(x, y).Color
			run.Reset()
			for ; x < s.Width() && s.GetCell(x, y).Color == col; x++ {
				run.WriteRune(s.GetCell(x, y).Rune)
			}

			style, ok := styles[col]
			if !ok {
				var styled bool
				if style, styled = styleFor(col); !styled {
					sb.WriteString(run.String())
					continue
				}
				styles[col] = style
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
