package app

import (
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vancomm/minigames/internal/handlers"
)

func (a *App) loadRoutes() {
	game := handlers.NewGameHandler(a.log, a.ws, a.config.SnakeTick)

	a.router.HandleFunc("GET /status", handlers.Status)
	a.router.Handle("GET /metrics", promhttp.Handler())

	a.router.HandleFunc("GET /minesweeper/connect", game.ConnectMinesweeper)
	a.router.HandleFunc("GET /snake/connect", game.ConnectSnake)
}
