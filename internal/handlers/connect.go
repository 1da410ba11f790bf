package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/minigames/internal/config"
	"github.com/vancomm/minigames/internal/metrics"
	"github.com/vancomm/minigames/internal/minesweeper"
	"github.com/vancomm/minigames/internal/snake"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 30 * time.Second
	pingPeriod = 25 * time.Second // must be less than pongWait
	readLimit  = 4096
)

type GameHandler struct {
	log        *logrus.Logger
	ws         *config.WebSocket
	snakeTick  time.Duration
	pongWait   time.Duration
	pingPeriod time.Duration
}

func NewGameHandler(
	log *logrus.Logger,
	ws *config.WebSocket,
	snakeTick time.Duration,
) *GameHandler {
	return &GameHandler{
		log:        log,
		ws:         ws,
		snakeTick:  snakeTick,
		pongWait:   pongWait,
		pingPeriod: pingPeriod,
	}
}

func (h GameHandler) upgrade(
	w http.ResponseWriter, r *http.Request, game string,
) (*websocket.Conn, SessionParams, *logrus.Entry, bool) {
	params, err := ParseSessionParams(r.URL.Query())
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		SendErrorOrLog(w, h.log, err)
		return nil, params, nil, false
	}
	log := h.log.WithFields(logrus.Fields{
		"game":    game,
		"session": uuid.NewString(),
	})
	c, err := h.ws.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.WithError(err).Error("upgrade")
		return nil, params, nil, false
	}
	c.SetReadLimit(readLimit)
	c.SetReadDeadline(time.Now().Add(h.pongWait))
	c.SetPongHandler(func(string) error {
		return c.SetReadDeadline(time.Now().Add(h.pongWait))
	})
	log.Debug("connected")
	return c, params, log, true
}

func writeEvents(c *websocket.Conn, events ...any) error {
	for _, ev := range events {
		c.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.WriteJSON(ev); err != nil {
			return err
		}
	}
	return nil
}

// ping is a control frame, so it may be sent alongside the connection's single
// data writer.
func ping(c *websocket.Conn) error {
	return c.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait))
}

// keepAlive pings c every pingPeriod until done is closed or a ping fails.
func (h GameHandler) keepAlive(c *websocket.Conn, done <-chan struct{}) {
	ticker := time.NewTicker(h.pingPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			if err := ping(c); err != nil {
				return
			}
		}
	}
}

func logDisconnect(log logrus.FieldLogger, err error) {
	if err == nil || errors.Is(err, context.Canceled) ||
		websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
		log.Debug("disconnected")
		return
	}
	log.WithError(err).Warn("disconnected")
}

var errBinaryMessage = errors.New("binary messages are not supported")

func readText(c *websocket.Conn) (string, error) {
	mt, message, err := c.ReadMessage()
	if err != nil {
		return "", err
	}
	if mt != websocket.TextMessage {
		return "", errBinaryMessage
	}
	return string(message), nil
}

// ConnectMinesweeper serves one minesweeper game per connection. Every text
// message is a batch of commands answered with the resulting events.
func (h GameHandler) ConnectMinesweeper(w http.ResponseWriter, r *http.Request) {
	c, params, log, ok := h.upgrade(w, r, gameMinesweeper)
	if !ok {
		return
	}
	defer c.Close()

	metrics.Sessions.WithLabelValues(gameMinesweeper).Inc()
	defer metrics.Sessions.WithLabelValues(gameMinesweeper).Dec()

	done := make(chan struct{})
	defer close(done)
	go h.keepAlive(c, done)

	session := NewMinesweeperSession(
		minesweeper.NewGame(minesweeper.RandomMines(params.Rand())), log,
	)
	if err := writeEvents(c, session.State()); err != nil {
		logDisconnect(log, err)
		return
	}
	for {
		text, err := readText(c)
		if err != nil {
			logDisconnect(log, err)
			return
		}
		log.WithField("message", text).Debug(">")
		if err := writeEvents(c, session.Handle(text)...); err != nil {
			logDisconnect(log, err)
			return
		}
	}
}

// ConnectSnake serves one snake game per connection. A single goroutine owns
// the game: it applies input forwarded by the reader and advances the game on
// every tick, so input and ticks never overlap.
func (h GameHandler) ConnectSnake(w http.ResponseWriter, r *http.Request) {
	c, params, log, ok := h.upgrade(w, r, gameSnake)
	if !ok {
		return
	}
	defer c.Close()

	metrics.Sessions.WithLabelValues(gameSnake).Inc()
	defer metrics.Sessions.WithLabelValues(gameSnake).Dec()

	session := NewSnakeSession(snake.NewGame(snake.RandomFood(params.Rand())), log)
	inputs := make(chan string)

	g, ctx := errgroup.WithContext(context.Background())
	g.Go(func() error {
		defer close(inputs)
		for {
			text, err := readText(c)
			if err != nil {
				return err
			}
			select {
			case inputs <- text:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	})
	g.Go(func() error {
		// unblocks the reader once the game loop gives up
		defer c.Close()

		ticker := time.NewTicker(h.snakeTick)
		defer ticker.Stop()
		pinger := time.NewTicker(h.pingPeriod)
		defer pinger.Stop()

		if err := writeEvents(c, session.Frame()); err != nil {
			return err
		}
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case text, ok := <-inputs:
				if !ok {
					return nil
				}
				if err := writeEvents(c, session.Input(text)...); err != nil {
					return err
				}
			case <-ticker.C:
				if err := writeEvents(c, session.Tick()); err != nil {
					return err
				}
			case <-pinger.C:
				if err := ping(c); err != nil {
					return err
				}
			}
		}
	})
	logDisconnect(log, g.Wait())
}
