package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	Sessions = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "minigames_sessions_active",
			Help: "Websocket sessions currently connected",
		},
		[]string{"game"},
	)
	GamesStarted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "minigames_games_started_total",
			Help: "Games started, including restarts",
		},
		[]string{"game"},
	)
	GamesFinished = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "minigames_games_finished_total",
			Help: "Games that reached a terminal state",
		},
		[]string{"game", "outcome"},
	)
	SnakeTicks = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "minigames_snake_ticks_total",
			Help: "Snake simulation steps",
		},
	)
	SnakeScore = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "minigames_snake_final_score",
			Help:    "Score at snake game over",
			Buckets: prometheus.LinearBuckets(0, 5, 10),
		},
	)
	Requests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "minigames_http_requests_total",
			Help: "HTTP requests by method and status code",
		},
		[]string{"method", "code"},
	)
)

func init() {
	prometheus.MustRegister(Sessions)
	prometheus.MustRegister(GamesStarted)
	prometheus.MustRegister(GamesFinished)
	prometheus.MustRegister(SnakeTicks)
	prometheus.MustRegister(SnakeScore)
	prometheus.MustRegister(Requests)
}
