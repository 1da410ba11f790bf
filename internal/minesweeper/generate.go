package minesweeper

import (
	"math/rand/v2"
	"slices"
)

type void struct{}

type MineSet map[int]void

func NewMineSet(indices ...int) MineSet {
	s := make(MineSet, len(indices))
	for _, i := range indices {
		s[i] = void{}
	}
	return s
}

func (s MineSet) Contains(index int) bool {
	_, ok := s[index]
	return ok
}

// Sorted returns mine indices in ascending order.
func (s MineSet) Sorted() []int {
	indices := make([]int, 0, len(s))
	for i := range s {
		indices = append(indices, i)
	}
	slices.Sort(indices)
	return indices
}

// GenerateMines samples uniformly from [0, n*n) until count distinct indices
// are collected. count is clamped to the number of cells.
func GenerateMines(n, count int, r *rand.Rand) MineSet {
	cells := n * n
	count = max(0, min(count, cells))
	mines := make(MineSet, count)
	for len(mines) < count {
		mines[r.IntN(cells)] = void{}
	}
	return mines
}

// MineGenerator produces the mine set of a fresh board of size n.
type MineGenerator func(n, count int) MineSet

func RandomMines(r *rand.Rand) MineGenerator {
	return func(n, count int) MineSet {
		return GenerateMines(n, count, r)
	}
}

// FixedMines always places mines at the given indices, ignoring count.
func FixedMines(indices ...int) MineGenerator {
	return func(n, count int) MineSet {
		return NewMineSet(indices...)
	}
}
