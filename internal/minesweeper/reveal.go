package minesweeper

import "github.com/gammazero/deque"

// CellUpdate describes the visible state of a cell after a change. Mine is
// only reported for revealed cells.
type CellUpdate struct {
	Index         int  `json:"index"`
	Revealed      bool `json:"revealed"`
	Mine          bool `json:"mine"`
	Flagged       bool `json:"flagged"`
	AdjacentCount int  `json:"adjacent"`
}

type BoardUpdate []CellUpdate

func (b Board) update(index int) CellUpdate {
	c := b.cells[index]
	return CellUpdate{
		Index:         index,
		Revealed:      c.Revealed,
		Mine:          c.Revealed && c.Mine,
		Flagged:       c.Flagged,
		AdjacentCount: c.AdjacentCount,
	}
}

// Reveal opens the cell at index. Out of range and already revealed cells are
// ignored. A safe cell without adjacent mines opens its whole zero-connected
// region. mined reports whether the opened cell holds a mine.
func (b *Board) Reveal(index int) (update BoardUpdate, mined bool) {
	if !b.Valid(index) || b.cells[index].Revealed {
		return nil, false
	}

	var todo deque.Deque[int]
	todo.PushBack(index)
	for todo.Len() > 0 {
		i := todo.PopBack()
		c := &b.cells[i]
		if c.Revealed {
			continue
		}
		c.Revealed = true
		c.Flagged = false

		if c.Mine {
			update = append(update, b.update(i))
			mined = true
			continue
		}

		c.AdjacentCount = b.countAdjacentMines(i)
		update = append(update, b.update(i))
		if c.AdjacentCount > 0 {
			continue
		}
		for _, j := range b.Neighbors(i) {
			if !b.cells[j].Revealed {
				todo.PushBack(j)
			}
		}
	}
	return update, mined
}

// ToggleFlag flips the flag on a covered cell. Revealed and out of range
// cells are ignored.
func (b *Board) ToggleFlag(index int) BoardUpdate {
	if !b.Valid(index) || b.cells[index].Revealed {
		return nil
	}
	b.cells[index].Flagged = !b.cells[index].Flagged
	return BoardUpdate{b.update(index)}
}

// RevealMines uncovers every mine that is still covered.
func (b *Board) RevealMines() (update BoardUpdate) {
	for _, i := range b.mines.Sorted() {
		if !b.Valid(i) || b.cells[i].Revealed {
			continue
		}
		b.cells[i].Revealed = true
		b.cells[i].Flagged = false
		update = append(update, b.update(i))
	}
	return
}

// Snapshot reports the visible state of every cell.
func (b Board) Snapshot() BoardUpdate {
	update := make(BoardUpdate, len(b.cells))
	for i := range b.cells {
		update[i] = b.update(i)
	}
	return update
}
