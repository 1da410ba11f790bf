package minesweeper

import (
	"math/rand/v2"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	Log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	m.Run()
}

func rangeMines(from, to int) []int {
	indices := make([]int, 0, to-from)
	for i := from; i < to; i++ {
		indices = append(indices, i)
	}
	return indices
}

func TestGenerateMines(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewPCG(1, 2))
	for range 200 {
		mines := GenerateMines(Size, MineCount, r)
		require.Len(t, mines, MineCount)
		for i := range mines {
			assert.GreaterOrEqual(t, i, 0)
			assert.Less(t, i, Size*Size)
		}
	}
}

func TestGenerateMinesClampsCount(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	assert.Len(t, GenerateMines(3, 100, r), 9)
	assert.Len(t, GenerateMines(3, -1, r), 0)
}

func TestNeighbors(t *testing.T) {
	b := NewBoard(Size, NewMineSet())

	tests := []struct {
		name  string
		index int
		want  []int
	}{
		{"top left corner", 0, []int{1, 10, 11}},
		{"bottom right corner", 99, []int{88, 89, 98}},
		{"top edge", 5, []int{4, 6, 14, 15, 16}},
		{"left edge", 50, []int{40, 41, 51, 60, 61}},
		{"interior", 55, []int{44, 45, 46, 54, 56, 64, 65, 66}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.ElementsMatch(t, test.want, b.Neighbors(test.index))
		})
	}
}

func TestRevealOutOfRange(t *testing.T) {
	b := NewBoard(Size, NewMineSet(0))
	for _, i := range []int{-1, Size * Size, 1000} {
		update, mined := b.Reveal(i)
		assert.Nil(t, update)
		assert.False(t, mined)
	}
}

func TestRevealIdempotent(t *testing.T) {
	b := NewBoard(Size, NewMineSet(rangeMines(0, 20)...))

	update, mined := b.Reveal(21)
	require.False(t, mined)
	require.Len(t, update, 1)
	assert.Equal(t, 3, update[0].AdjacentCount)

	before := b.Snapshot()
	update, mined = b.Reveal(21)
	assert.Nil(t, update)
	assert.False(t, mined)
	assert.Equal(t, before, b.Snapshot())
}

func TestRevealFloodFill(t *testing.T) {
	b := NewBoard(Size, NewMineSet(rangeMines(0, 20)...))

	update, mined := b.Reveal(55)
	require.False(t, mined)

	// rows 2..9 are safe; row 2 borders the mines and row 3.. has no
	// adjacent mines, so the whole lower part opens.
	assert.Len(t, update, 80)
	for i := range 100 {
		c := b.Cell(i)
		if i < 20 {
			assert.False(t, c.Revealed, "mine %d revealed", i)
			continue
		}
		assert.True(t, c.Revealed, "cell %d not revealed", i)
		if i < 30 {
			assert.Positive(t, c.AdjacentCount)
		} else {
			assert.Zero(t, c.AdjacentCount)
		}
	}
	assert.Zero(t, b.Unrevealed())
}

func TestRevealStopsAtNumbers(t *testing.T) {
	// a wall of mines in column 5 splits the board
	var wall []int
	for row := range Size {
		wall = append(wall, row*Size+5)
	}
	b := NewBoard(Size, NewMineSet(wall...))

	_, mined := b.Reveal(0)
	require.False(t, mined)

	for i := range 100 {
		_, col := b.IndexToCoords(i)
		switch {
		case col < 5:
			assert.True(t, b.Cell(i).Revealed, "cell %d", i)
		default:
			assert.False(t, b.Cell(i).Revealed, "cell %d", i)
		}
	}
}

func TestRevealFloodFillZeroRegionInvariant(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewPCG(3, 4))
	for range 100 {
		b := NewBoard(Size, GenerateMines(Size, MineCount, r))
		start := r.IntN(Size * Size)
		if b.Cell(start).Mine {
			continue
		}
		b.Reveal(start)
		for i := range b.Len() {
			c := b.Cell(i)
			if !c.Revealed || c.Mine || c.AdjacentCount > 0 {
				continue
			}
			for _, j := range b.Neighbors(i) {
				require.True(t, b.Cell(j).Revealed,
					"neighbor %d of zero cell %d is covered", j, i)
			}
		}
	}
}

func TestRevealClearsFlag(t *testing.T) {
	b := NewBoard(Size, NewMineSet(0))
	b.ToggleFlag(99)
	require.True(t, b.Cell(99).Flagged)

	b.Reveal(99)
	c := b.Cell(99)
	assert.True(t, c.Revealed)
	assert.False(t, c.Flagged)
}

func TestToggleFlag(t *testing.T) {
	b := NewBoard(Size, NewMineSet(0))

	update := b.ToggleFlag(0)
	require.Len(t, update, 1)
	assert.True(t, update[0].Flagged)
	assert.False(t, update[0].Mine, "covered mine must not be reported")

	b.ToggleFlag(0)
	assert.False(t, b.Cell(0).Flagged)

	b.Reveal(1)
	assert.Nil(t, b.ToggleFlag(1))
	assert.False(t, b.Cell(1).Flagged)

	assert.Nil(t, b.ToggleFlag(-5))
}

func TestRevealMines(t *testing.T) {
	b := NewBoard(Size, NewMineSet(3, 7, 42))
	b.ToggleFlag(7)

	update := b.RevealMines()
	require.Len(t, update, 3)
	for _, u := range update {
		assert.True(t, u.Revealed)
		assert.True(t, u.Mine)
		assert.False(t, u.Flagged)
	}
	assert.Nil(t, b.RevealMines())
}

func TestBoardString(t *testing.T) {
	b := NewBoard(3, NewMineSet(0))
	b.ToggleFlag(0)
	b.Reveal(8)
	assert.Equal(t, "F 1   \n1 1   \n      \n", b.String())
}
