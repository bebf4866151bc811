package arena

import (
	"strings"

	"github.com/fatih/color"

	"github.com/freeeve/lightcycle/pkg/tron"
)

var playerColors = []*color.Color{
	color.New(color.FgCyan),
	color.New(color.FgYellow),
	color.New(color.FgMagenta),
	color.New(color.FgGreen),
}

// Render draws a frame as colored text, one character per cell: dots for
// free cells, a block per trail cell in the owner's color, and the head of
// each living cycle highlighted.
func Render(f Frame) string {
	heads := make(map[tron.Coordinates]int, len(f.Positions))
	for i, pos := range f.Positions {
		if f.Alive[i] {
			heads[pos] = i
		}
	}

	var sb strings.Builder
	sb.Grow((f.Width + 1) * f.Height)
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			if p, ok := heads[tron.Coordinates{X: x, Y: y}]; ok {
				sb.WriteString(playerColors[p%len(playerColors)].Sprint("@"))
				continue
			}
			cell := f.Cells[y*f.Width+x]
			if cell == tron.Free {
				sb.WriteString("·")
				continue
			}
			p := int(cell) - 1
			sb.WriteString(playerColors[p%len(playerColors)].Sprint("#"))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
