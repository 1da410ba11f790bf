package handlers

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minigames/internal/minesweeper"
	"github.com/vancomm/minigames/internal/snake"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func firstRows() minesweeper.MineGenerator {
	indices := make([]int, 20)
	for i := range indices {
		indices[i] = i
	}
	return minesweeper.FixedMines(indices...)
}

func TestMinesweeperSessionState(t *testing.T) {
	s := NewMinesweeperSession(minesweeper.NewGame(firstRows()), quietLogger())

	state := s.State()
	assert.Equal(t, EventState, state.Type)
	assert.Equal(t, minesweeper.Size, state.Size)
	assert.Len(t, state.Cells, 100)
	assert.Equal(t, "playing", state.Status)
	assert.Empty(t, state.Message)
	assert.False(t, state.Restart)
	for _, c := range state.Cells {
		assert.False(t, c.Mine)
	}
}

func TestMinesweeperSessionWin(t *testing.T) {
	s := NewMinesweeperSession(minesweeper.NewGame(firstRows()), quietLogger())

	events := s.Handle("f 0\no 55")
	require.Len(t, events, 1)
	ev := events[0].(BoardEvent)
	assert.Equal(t, EventUpdate, ev.Type)
	assert.Equal(t, "won", ev.Status)
	assert.Equal(t, "You Win!", ev.Message)
	assert.True(t, ev.Restart)
	// flag, 80 safe cells, 20 mines
	assert.Len(t, ev.Cells, 101)
}

func TestMinesweeperSessionLossAndRestart(t *testing.T) {
	s := NewMinesweeperSession(minesweeper.NewGame(firstRows()), quietLogger())

	events := s.Handle("o 3\no 55\nf 70")
	require.Len(t, events, 1)
	ev := events[0].(BoardEvent)
	assert.Equal(t, "lost", ev.Status)
	assert.Equal(t, "Game Over", ev.Message)
	assert.True(t, ev.Restart)
	assert.Len(t, ev.Cells, 20)
	for _, c := range ev.Cells {
		assert.True(t, c.Mine)
	}

	events = s.Handle("r")
	require.Len(t, events, 1)
	ev = events[0].(BoardEvent)
	assert.Equal(t, EventState, ev.Type)
	assert.Equal(t, "playing", ev.Status)
	assert.False(t, ev.Restart)
	for _, c := range ev.Cells {
		assert.False(t, c.Revealed)
	}
}

func TestMinesweeperSessionErrors(t *testing.T) {
	s := NewMinesweeperSession(minesweeper.NewGame(firstRows()), quietLogger())

	events := s.Handle("x\no\nr\no 1000\nf 99")
	require.Len(t, events, 4)
	for i, line := range []int{0, 1, 2} {
		ev := events[i].(ErrorEvent)
		assert.Equal(t, EventError, ev.Type)
		assert.Equal(t, line, ev.Line)
	}
	ev := events[3].(BoardEvent)
	require.Len(t, ev.Cells, 1)
	assert.Equal(t, 99, ev.Cells[0].Index)
	assert.True(t, ev.Cells[0].Flagged)
	assert.Equal(t, "playing", ev.Status)
}

func TestMinesweeperSessionGetState(t *testing.T) {
	s := NewMinesweeperSession(minesweeper.NewGame(firstRows()), quietLogger())
	events := s.Handle("o 21\ng")
	require.Len(t, events, 1)
	ev := events[0].(BoardEvent)
	assert.Equal(t, EventState, ev.Type)
	assert.Len(t, ev.Cells, 100)
	assert.True(t, ev.Cells[21].Revealed)
	assert.Equal(t, 3, ev.Cells[21].AdjacentCount)
}

func food(points ...snake.Point) snake.FoodSpawner {
	i := 0
	return func(grid int) snake.Point {
		p := points[min(i, len(points)-1)]
		i++
		return p
	}
}

func TestSnakeSession(t *testing.T) {
	s := NewSnakeSession(snake.NewGame(food(snake.Point{X: 11, Y: 10}, snake.Point{X: 0, Y: 0})), quietLogger())

	frame := s.Frame().(FrameEvent)
	assert.Equal(t, EventFrame, frame.Type)
	assert.Equal(t, []snake.Point{{X: 10, Y: 10}}, frame.Snake)
	assert.Equal(t, snake.GridSize, frame.Grid)
	assert.Equal(t, snake.CellPixels, frame.Cell)

	assert.Empty(t, s.Input("right\nleft"))
	assert.Equal(t, snake.Right, s.Game().Direction())

	frame = s.Tick().(FrameEvent)
	assert.Equal(t, 1, frame.Score)
	assert.Len(t, frame.Snake, 2)
}

func TestSnakeSessionGameOver(t *testing.T) {
	s := NewSnakeSession(snake.NewGame(food(snake.Point{X: 0, Y: 0})), quietLogger())
	s.Input("up")
	for range 10 {
		_, ok := s.Tick().(FrameEvent)
		require.True(t, ok)
	}
	over := s.Tick().(GameOverEvent)
	assert.Equal(t, EventGameOver, over.Type)
	assert.Equal(t, 0, over.Score)
	assert.Equal(t, "Game Over! Your score: 0", over.Message)
	assert.Equal(t, 1, s.Game().Len())
	assert.Equal(t, snake.Origin, s.Game().Head())
}

func TestSnakeSessionErrors(t *testing.T) {
	s := NewSnakeSession(snake.NewGame(food(snake.Point{X: 0, Y: 0})), quietLogger())
	events := s.Input("up 1\nleft\njump")
	require.Len(t, events, 2)
	assert.Equal(t, 0, events[0].(ErrorEvent).Line)
	assert.Equal(t, 2, events[1].(ErrorEvent).Line)
	assert.Equal(t, snake.Left, s.Game().Direction())
}
