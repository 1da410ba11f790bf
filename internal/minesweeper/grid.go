package minesweeper

import (
	"fmt"
	"strconv"
	"strings"
)

func (c Cell) String() string {
	switch {
	case !c.Revealed && c.Flagged:
		return "F"
	case !c.Revealed:
		return "."
	case c.Mine:
		return "*"
	case c.AdjacentCount == 0:
		return " "
	default:
		return strconv.Itoa(c.AdjacentCount)
	}
}

// Board implements [fmt.Stringer]
func (b Board) String() string {
	var sb strings.Builder
	for row := range b.size {
		for col := range b.size {
			fmt.Fprint(&sb, b.cells[b.CoordsToIndex(row, col)].String()+" ")
		}
		fmt.Fprint(&sb, "\n")
	}
	return sb.String()
}
