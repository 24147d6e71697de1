package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-matchday/internal/core"
)

// palette maps core colours to terminal styles. Player and ball colours
// are drawn bold so they stand out against the pitch.
var palette = map[core.Color]lipgloss.Style{
	core.ColorDefault:   lipgloss.NewStyle(),
	core.ColorPitch:     lipgloss.NewStyle().Background(lipgloss.Color("22")),
	core.ColorLine:      lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	core.ColorHome:      lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
	core.ColorAway:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	core.ColorKeeper:    lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorHolder:    lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
	core.ColorBall:      lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorGoal:      lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorHighlight: lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true),
	core.ColorMuted:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorAlert:     lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
}

func styleFor(c core.Color) lipgloss.Style {
	if st, ok := palette[c]; ok {
		return st
	}
	return palette[core.ColorDefault]
}

// RenderScreen turns a screen buffer into styled terminal text, one style
// call per run of equally coloured cells.
func RenderScreen(s *core.Screen) string {
	rows := make([]string, s.Height())
	var span []rune
	for y := range rows {
		var line strings.Builder
		span = span[:0]
		cur := s.GetCell(0, y).Color
		for x := 0; x < s.Width(); x++ {
			cell := s.GetCell(x, y)
			if cell.Color != cur {
				line.WriteString(styleFor(cur).Render(string(span)))
				span, cur = span[:0], cell.Color
			}
			span = append(span, cell.Rune)
		}
		if len(span) > 0 {
			line.WriteString(styleFor(cur).Render(string(span)))
		}
		rows[y] = line.String()
	}
	return strings.Join(rows, "\n")
}

// centerText pads text on the left so it sits in the middle of width.
func centerText(text string, width int) string {
	if gap := width - lipgloss.Width(text); gap > 0 {
		return strings.Repeat(" ", gap/2) + text
	}
	return text
}
