package gridworld

import (
	"strings"

	"github.com/muesli/termenv"
)

// Render draws the board as a colored multi-line string. Cells visited by
// path are marked; start, goal and walls keep their own glyphs.
func (g *Grid) Render(path []State) string {
	profile := termenv.ColorProfile()
	wall := termenv.String("#").Foreground(profile.Color("8"))
	start := termenv.String("S").Foreground(profile.Color("2")).Bold()
	goal := termenv.String("G").Foreground(profile.Color("3")).Bold()
	step := termenv.String("*").Foreground(profile.Color("6"))

	visited := make(map[State]bool, len(path))
	for _, s := range path {
		visited[s] = true
	}

	var b strings.Builder
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			if col > 0 {
				b.WriteByte(' ')
			}
			cell := State{Row: row, Col: col}
			switch {
			case cell == g.Goal:
				b.WriteString(goal.String())
			case cell == g.Start:
				b.WriteString(start.String())
			case g.Walls[cell]:
				b.WriteString(wall.String())
			case visited[cell]:
				b.WriteString(step.String())
			default:
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
