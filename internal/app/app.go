package app

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/minigames/internal/config"
	"github.com/vancomm/minigames/internal/middleware"
)

const shutdownTimeout = 15 * time.Second

type App struct {
	log    *logrus.Logger
	config *config.Config
	router *http.ServeMux
	ws     *config.WebSocket
}

func New(log *logrus.Logger, cfg *config.Config) *App {
	a := &App{
		log:    log,
		config: cfg,
		router: http.NewServeMux(),
		ws:     config.NewWebSocket(cfg.AllowedOrigins),
	}
	a.loadRoutes()
	return a
}

func (a *App) Handler() http.Handler {
	return middleware.Wrap(
		a.router,
		middleware.Logging(a.log),
		middleware.Cors(a.config.AllowedOrigins),
	)
}

// Start serves until ctx is done, then shuts the server down gracefully.
func (a *App) Start(ctx context.Context) error {
	server := &http.Server{
		Addr:    a.config.Addr,
		Handler: a.Handler(),
		BaseContext: func(l net.Listener) context.Context {
			return ctx
		},
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.log.WithField("addr", a.config.Addr).Info("ready to serve")
		err := server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	})
	g.Go(func() error {
		<-gCtx.Done()
		sCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(sCtx)
	})

	return g.Wait()
}
