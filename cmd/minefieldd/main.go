package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/minefield/internal/app"
	"github.com/vancomm/minefield/internal/config"
)

func main() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	cfg, err := config.NewLogging()
	if err != nil {
		logrus.Fatal("unable to read logging config: ", err)
	}

	log, err := cfg.NewLogger(os.Stderr)
	if err != nil {
		logrus.Fatal("unable to set up logging: ", err)
	}

	log.WithFields(cfg.Fields()).Debug("logging config")

	if err := app.New(log).Start(ctx); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
	log.Info("server stopped")
}
