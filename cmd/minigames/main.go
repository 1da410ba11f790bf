package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/vancomm/minigames/internal/app"
	"github.com/vancomm/minigames/internal/config"
	"github.com/vancomm/minigames/internal/minesweeper"
	"github.com/vancomm/minigames/internal/snake"
)

func main() {
	mainCtx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	log := logrus.New()

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Warn("unable to load .env: ", err)
	}

	flags := config.Flags(os.Args[0])
	if err := flags.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		log.Fatal(err)
	}

	cfg, err := config.Load(flags)
	if err != nil {
		log.Fatal(err)
	}

	logger, err := config.NewLogger(cfg)
	if err != nil {
		log.Fatal("unable to set up logging: ", err)
	}
	log = logger
	minesweeper.Log = log
	snake.Log = log

	log.Info("starting up, mode = ", cfg.Mode)
	log.WithFields(cfg.Fields()).Debug("config")

	if err := app.New(log, cfg).Start(mainCtx); err != nil {
		log.Error("exit reason: ", err)
		os.Exit(1)
	}
	log.Info("shut down")
}
