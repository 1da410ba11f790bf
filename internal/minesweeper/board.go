package minesweeper

const (
	Size      = 10
	MineCount = 20
)

type Cell struct {
	Mine          bool
	Revealed      bool
	Flagged       bool
	AdjacentCount int
}

// Board is a square grid of cells addressed by linear index
// (row, col) = (index / size, index % size).
type Board struct {
	size  int
	cells []Cell
	mines MineSet
}

func NewBoard(size int, mines MineSet) *Board {
	cells := make([]Cell, size*size)
	for i := range mines {
		if 0 <= i && i < len(cells) {
			cells[i].Mine = true
		}
	}
	return &Board{size: size, cells: cells, mines: mines}
}

func (b Board) Size() int {
	return b.size
}

func (b Board) Len() int {
	return len(b.cells)
}

func (b Board) Mines() MineSet {
	return b.mines
}

func (b Board) Valid(index int) bool {
	return 0 <= index && index < len(b.cells)
}

// Cell returns a copy of the cell at index. Index must be valid.
func (b Board) Cell(index int) Cell {
	return b.cells[index]
}

func (b Board) IndexToCoords(index int) (row, col int) {
	return index / b.size, index % b.size
}

func (b Board) CoordsToIndex(row, col int) int {
	return row*b.size + col
}

// Neighbors returns the Moore neighborhood of index clipped at the board edges.
func (b Board) Neighbors(index int) []int {
	var (
		row, col       = b.IndexToCoords(index)
		fromRow, toRow = max(0, row-1), min(row+1, b.size-1)
		fromCol, toCol = max(0, col-1), min(col+1, b.size-1)
		indices        = make([]int, 0, 8)
	)
	for r := fromRow; r <= toRow; r++ {
		for c := fromCol; c <= toCol; c++ {
			if i := b.CoordsToIndex(r, c); i != index {
				indices = append(indices, i)
			}
		}
	}
	return indices
}

func (b Board) countAdjacentMines(index int) (count int) {
	for _, i := range b.Neighbors(index) {
		if b.cells[i].Mine {
			count++
		}
	}
	return
}

// Unrevealed returns the number of safe cells that are still covered.
func (b Board) Unrevealed() (count int) {
	for _, c := range b.cells {
		if !c.Mine && !c.Revealed {
			count++
		}
	}
	return
}
