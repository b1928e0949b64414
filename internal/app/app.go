package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/minefield/internal/config"
	"github.com/vancomm/minefield/internal/middleware"
)

const shutdownTimeout = 30 * time.Second

type App struct {
	log      *logrus.Logger
	router   *http.ServeMux
	ws       *config.WebSocket
	addr     string
	basePath string
}

func New(log *logrus.Logger) *App {
	app := &App{
		log:      log,
		router:   http.NewServeMux(),
		addr:     config.Addr(),
		basePath: config.BasePath(),
	}

	return app
}

func (a *App) Handler() http.Handler {
	return middleware.Wrap(
		a.router,
		middleware.Logging(a.log),
		middleware.Cors(),
	)
}

func (a *App) Setup() error {
	ws, err := config.NewWebSocket()
	if err != nil {
		return fmt.Errorf("unable to read ws config: %w", err)
	}

	a.ws = ws

	a.loadRoutes()

	return nil
}

// Start serves until ctx is cancelled, then shuts the server down.
func (a *App) Start(ctx context.Context) error {
	if err := a.Setup(); err != nil {
		return err
	}

	server := &http.Server{
		Addr:    a.addr,
		Handler: a.Handler(),
		BaseContext: func(l net.Listener) context.Context {
			return ctx
		},
	}

	a.log.WithFields(logrus.Fields{
		"addr":     a.addr,
		"basePath": a.basePath,
	}).Info("server listening")

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("unable to listen and serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(ctx)
	})

	return g.Wait()
}
