package handlers

import (
	"github.com/vancomm/minigames/internal/minesweeper"
	"github.com/vancomm/minigames/internal/snake"
)

const (
	EventState    = "state"
	EventUpdate   = "update"
	EventFrame    = "frame"
	EventGameOver = "game_over"
	EventError    = "error"
)

// BoardEvent reports changed cells of a minesweeper board. State events
// carry every cell; update events only the ones that changed.
type BoardEvent struct {
	Type    string                  `json:"type"`
	Size    int                     `json:"size"`
	Cells   minesweeper.BoardUpdate `json:"cells"`
	Status  string                  `json:"status"`
	Message string                  `json:"message,omitempty"`
	Restart bool                    `json:"restart"`
}

type FrameEvent struct {
	Type  string        `json:"type"`
	Snake []snake.Point `json:"snake"`
	Food  snake.Point   `json:"food"`
	Score int           `json:"score"`
	Grid  int           `json:"grid"`
	Cell  int           `json:"cell"`
}

type GameOverEvent struct {
	Type    string `json:"type"`
	Score   int    `json:"score"`
	Message string `json:"message"`
}

// ErrorEvent points at the offending line of a message.
type ErrorEvent struct {
	Type    string `json:"type"`
	Line    int    `json:"line"`
	Message string `json:"message"`
}

func newErrorEvent(line int, err error) ErrorEvent {
	return ErrorEvent{Type: EventError, Line: line, Message: err.Error()}
}

func newSnakeEvent(ev snake.Event) any {
	if ev.Type == snake.GameOver {
		return GameOverEvent{
			Type:    EventGameOver,
			Score:   ev.Score,
			Message: ev.Message,
		}
	}
	return FrameEvent{
		Type:  EventFrame,
		Snake: ev.Snake,
		Food:  ev.Food,
		Score: ev.Score,
		Grid:  snake.GridSize,
		Cell:  snake.CellPixels,
	}
}
