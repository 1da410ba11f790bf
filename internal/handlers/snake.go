package handlers

import (
	"github.com/sirupsen/logrus"

	"github.com/vancomm/minigames/internal/command"
	"github.com/vancomm/minigames/internal/metrics"
	"github.com/vancomm/minigames/internal/snake"
)

const gameSnake = "snake"

var SnakeCommands = command.Set{
	"up":    0,
	"down":  0,
	"left":  0,
	"right": 0,
}

// SnakeSession applies arrow key input between ticks of a single game.
type SnakeSession struct {
	game *snake.Game
	log  logrus.FieldLogger
}

func NewSnakeSession(game *snake.Game, log logrus.FieldLogger) *SnakeSession {
	metrics.GamesStarted.WithLabelValues(gameSnake).Inc()
	return &SnakeSession{game: game, log: log}
}

func (s *SnakeSession) Game() *snake.Game {
	return s.game
}

func (s *SnakeSession) Frame() any {
	return newSnakeEvent(s.game.Frame())
}

// Input applies every arrow key of a message. Redundant or reversing keys
// are dropped by the game; only malformed lines produce events.
func (s *SnakeSession) Input(text string) []any {
	var events []any
	for i, line := range command.Lines(text) {
		cmd, err := SnakeCommands.Parse(line)
		if err != nil {
			events = append(events, newErrorEvent(i, err))
			continue
		}
		d, _ := snake.ParseDirection(cmd.Name)
		if !s.game.SetDirection(d) {
			s.log.WithField("direction", d).Debug("direction rejected")
		}
	}
	return events
}

func (s *SnakeSession) Tick() any {
	ev := s.game.Tick()
	metrics.SnakeTicks.Inc()
	if ev.Type == snake.GameOver {
		metrics.GamesFinished.WithLabelValues(gameSnake, "game_over").Inc()
		metrics.SnakeScore.Observe(float64(ev.Score))
		metrics.GamesStarted.WithLabelValues(gameSnake).Inc()
		s.log.WithField("score", ev.Score).Info("game over")
	}
	return newSnakeEvent(ev)
}
