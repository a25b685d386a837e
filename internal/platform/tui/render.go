package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/flapper/internal/core"
)

// 256-color palette: sky and ground backgrounds, then one foreground per
// element.
var (
	sky    = lipgloss.NewStyle().Background(lipgloss.Color("24"))
	ground = lipgloss.NewStyle().Background(lipgloss.Color("58"))
)

// palette is indexed by core.Color.
var palette = [...]lipgloss.Style{
	core.ColorDefault:    lipgloss.NewStyle(),
	core.ColorSky:        sky,
	core.ColorCloud:      sky.Foreground(lipgloss.Color("255")),
	core.ColorPipe:       sky.Foreground(lipgloss.Color("34")),
	core.ColorPipeEdge:   sky.Foreground(lipgloss.Color("22")),
	core.ColorGround:     ground.Foreground(lipgloss.Color("137")),
	core.ColorGroundLine: ground.Foreground(lipgloss.Color("94")),
	core.ColorPlayer:     sky.Foreground(lipgloss.Color("220")),
	core.ColorEnemy:      sky.Foreground(lipgloss.Color("196")),
	core.ColorText:       sky.Foreground(lipgloss.Color("231")).Bold(true),
	core.ColorTitle:      sky.Foreground(lipgloss.Color("226")).Bold(true),
	core.ColorMissing:    lipgloss.NewStyle().Foreground(lipgloss.Color("201")),
}

func styleOf(c core.Color) lipgloss.Style {
	if int(c) < len(palette) {
		return palette[c]
	}
	return palette[core.ColorMissing]
}

// RenderScreen turns the cell buffer into terminal output. Each run of
// same-colored cells is styled once.
func RenderScreen(s *core.Screen) string {
	lines := make([]string, s.Height())
	var run []rune
	for y := range lines {
		var line strings.Builder
		for x := 0; x < s.Width(); {
			color := s.At(x, y).Color
			run = run[:0]
			for ; x < s.Width() && s.At(x, y).Color == color; x++ {
				run = append(run, s.At(x, y).Rune)
			}
			line.WriteString(styleOf(color).Render(string(run)))
		}
		lines[y] = line.String()
	}
	return strings.Join(lines, "\n")
}
