package tui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-memorize/internal/core"
)

// styleCache holds one lipgloss style per cell color. Styles are shared by
// every session of an SSH server, so access is locked.
var styleCache = struct {
	sync.RWMutex
	styles map[core.Color]lipgloss.Style
}{styles: map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
}}

// styleFor returns the foreground style for a cell color.
func styleFor(c core.Color) lipgloss.Style {
	styleCache.RLock()
	s, ok := styleCache.styles[c]
	styleCache.RUnlock()
	if ok {
		return s
	}

	s = lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex()))
	styleCache.Lock()
	styleCache.styles[c] = s
	styleCache.Unlock()
	return s
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
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

			sb.WriteString(styleFor(startColor).Render(run.String()))
		}
	}
	return sb.String()
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
