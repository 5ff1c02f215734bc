package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/wasteland-flyer/internal/core"
)

// phosphor is the terminal palette for each core.Color.
var phosphor = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorGreen:       lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorBrightGreen: lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
	core.ColorDimGreen:    lipgloss.NewStyle().Foreground(lipgloss.Color("22")),
	core.ColorYellow:      lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
	core.ColorRed:         lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorGray:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

func styleFor(c core.Color) lipgloss.Style {
	if st, ok := phosphor[c]; ok {
		return st
	}
	return phosphor[core.ColorDefault]
}

// RenderScreen turns the cell buffer into styled terminal text.
func RenderScreen(s *core.Screen) string {
	rows := make([]string, s.Height())
	for y := range rows {
		rows[y] = renderRow(s, y)
	}
	return strings.Join(rows, "\n")
}

// renderRow emits one escape sequence per run of equally colored cells.
func renderRow(s *core.Screen, y int) string {
	var sb strings.Builder
	var run []rune
	pen := core.ColorDefault

	flush := func() {
		if len(run) > 0 {
			sb.WriteString(styleFor(pen).Render(string(run)))
			run = run[:0]
		}
	}

	for x := range s.Width() {
		cell := s.GetCell(x, y)
		if cell.Color != pen {
			flush()
			pen = cell.Color
		}
		run = append(run, cell.Rune)
	}
	flush()

	return sb.String()
}
