package board

import (
	"strconv"
	"strings"
)

// ToDisplayText renders the grid with every cell centered to the widest
// cell's width and followed by a space, one row per line.
func (b *Board) ToDisplayText() string {
	width := 0
	strs := make([]string, len(b.cells))
	for i, c := range b.cells {
		strs[i] = c.String()
		width = max(width, len(strs[i]))
	}
	var sb strings.Builder
	for y := 0; y < b.rules.Rows; y++ {
		for x := 0; x < b.rules.Cols; x++ {
			sb.WriteString(center(strs[b.idx(x, y)], width))
			sb.WriteString(" ")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func (b *Board) String() string {
	return b.ToDisplayText() + "score: " + strconv.Itoa(b.Score())
}

func center(s string, width int) string {
	pad := width - len(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}
