package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pdrpinto/gridkit"
)

var (
	colorTeal  = lipgloss.Color("#2CD7C7")
	colorSlate = lipgloss.Color("#2C4A54")
	colorError = lipgloss.Color("#E74C3C")

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorTeal)
	pathStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorTeal)
	emptyStyle = lipgloss.NewStyle().Foreground(colorSlate)
	errorStyle = lipgloss.NewStyle().Foreground(colorError)
	gridStyle  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSlate).
			Padding(0, 1)
)

// renderGrid draws the grid with the cells on path highlighted.
func renderGrid(grid *gridkit.Grid[int], path []gridkit.Coord) string {
	onPath := make(map[gridkit.Coord]bool, len(path))
	for _, c := range path {
		onPath[c] = true
	}

	var b strings.Builder
	for c, entry := range grid.All() {
		switch {
		case !entry.Present:
			b.WriteString(emptyStyle.Render("."))
		case onPath[c]:
			b.WriteString(pathStyle.Render(fmt.Sprint(entry.Value)))
		default:
			b.WriteString(fmt.Sprint(entry.Value))
		}
		if c.X == grid.Width()-1 && c.Y < grid.Height()-1 {
			b.WriteString("\n")
		}
	}
	return gridStyle.Render(b.String())
}

func formatPath(path []gridkit.Coord) string {
	parts := make([]string, len(path))
	for i, c := range path {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
