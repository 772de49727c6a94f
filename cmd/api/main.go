package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/pratik-mahalle/userboard/internal/api/handlers"
	"github.com/pratik-mahalle/userboard/internal/api/router"
	"github.com/pratik-mahalle/userboard/internal/config"
	"github.com/pratik-mahalle/userboard/internal/pkg/logger"
	"github.com/pratik-mahalle/userboard/internal/pkg/validator"
	"github.com/pratik-mahalle/userboard/internal/providers"
	"github.com/pratik-mahalle/userboard/internal/services"
	"github.com/pratik-mahalle/userboard/internal/worker"
)

// @title Userboard API
// @version 1.0
// @description Search, sort, page and edit a user list fed by remote user sources.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})
	logger.Init(log)

	if err := run(cfg, log); err != nil {
		log.FatalWithErr(err, "Server exited with error")
	}
	log.Info("Server exited")
}

func run(cfg *config.Config, log *logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Sources
	fetcher := providers.NewFetcher(cfg.Source.Timeout, cfg.Source.RequestsPerSecond)
	placeholder := providers.NewPlaceholderSource(fetcher, cfg.Source.UsersURL)
	randomUsers := providers.NewRandomUserSource(fetcher, cfg.Source.RandomUserURL)

	// Engine and feed
	val := validator.New()
	users := services.NewUserService(placeholder, log, val)
	feed := worker.NewRandomUserFeed(randomUsers, users, cfg.Feed.Interval, log)
	defer feed.Stop()

	done := make(chan struct{})
	defer close(done)

	srv := &http.Server{
		Addr: cfg.Address(),
		Handler: router.New(cfg, log, &router.Handlers{
			Health: handlers.NewHealthHandler(users, log),
			User:   handlers.NewUserHandler(users, log, val),
			Feed:   handlers.NewFeedHandler(feed, log),
		}, done),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.WithFields(map[string]interface{}{
			"address":     srv.Addr,
			"environment": cfg.Server.Environment,
		}).Info("Starting HTTP server")

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	// The initial load runs once; a failure is reported through /readyz and
	// the API rather than stopping the server.
	g.Go(func() error {
		if err := users.Load(gctx); err != nil {
			return nil
		}
		if cfg.Feed.AutoStart {
			feed.Start()
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("Shutting down server...")

		feed.Stop()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server forced to shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}
