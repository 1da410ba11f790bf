package handlers

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/minigames/internal/command"
	"github.com/vancomm/minigames/internal/metrics"
	"github.com/vancomm/minigames/internal/minesweeper"
)

const gameMinesweeper = "minesweeper"

var MinesweeperCommands = command.Set{
	"g": 0, // resend state
	"o": 1, // primary click
	"f": 1, // secondary click
	"r": 0, // restart
}

// MinesweeperSession feeds commands to a single game and collects what the
// renderer has to redraw.
type MinesweeperSession struct {
	game *minesweeper.Game
	log  logrus.FieldLogger
}

func NewMinesweeperSession(game *minesweeper.Game, log logrus.FieldLogger) *MinesweeperSession {
	metrics.GamesStarted.WithLabelValues(gameMinesweeper).Inc()
	return &MinesweeperSession{game: game, log: log}
}

func (s *MinesweeperSession) Game() *minesweeper.Game {
	return s.game
}

// State describes the whole board.
func (s *MinesweeperSession) State() BoardEvent {
	return s.event(EventState, s.game.Board().Snapshot())
}

func (s *MinesweeperSession) event(typ string, cells minesweeper.BoardUpdate) BoardEvent {
	status := s.game.Status()
	if cells == nil {
		cells = minesweeper.BoardUpdate{}
	}
	return BoardEvent{
		Type:    typ,
		Size:    s.game.Board().Size(),
		Cells:   cells,
		Status:  status.String(),
		Message: status.Message(),
		Restart: s.game.Over(),
	}
}

// Handle executes every command of a message and returns the events to send
// back: one error event per malformed line followed by a single board event.
func (s *MinesweeperSession) Handle(text string) []any {
	var (
		events []any
		cells  minesweeper.BoardUpdate
		full   bool
	)
	for i, line := range command.Lines(text) {
		cmd, err := MinesweeperCommands.Parse(line)
		if err != nil {
			events = append(events, newErrorEvent(i, err))
			continue
		}
		switch cmd.Name {
		case "g":
			full = true
		case "o":
			wasOver := s.game.Over()
			update, status := s.game.Reveal(cmd.Args[0])
			cells = append(cells, update...)
			if !wasOver && s.game.Over() {
				metrics.GamesFinished.WithLabelValues(gameMinesweeper, status.String()).Inc()
				s.log.WithField("status", status).Info("game ended")
			}
		case "f":
			cells = append(cells, s.game.ToggleFlag(cmd.Args[0])...)
		case "r":
			if !s.game.Over() {
				events = append(events, newErrorEvent(i, fmt.Errorf("game is still in progress")))
				continue
			}
			s.game.Reset()
			metrics.GamesStarted.WithLabelValues(gameMinesweeper).Inc()
			s.log.Debug("game restarted")
			cells, full = nil, true
		}
	}
	if full {
		return append(events, s.State())
	}
	return append(events, s.event(EventUpdate, cells))
}
