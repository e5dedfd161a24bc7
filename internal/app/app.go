// Package app wires the service together: storage, stores, the REST and
// CalDAV surfaces and the HTTP server lifecycle.
package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/Raimguhinov/morrow-go/internal/config"
	"github.com/Raimguhinov/morrow-go/internal/storage"
	"github.com/Raimguhinov/morrow-go/internal/store"
	"github.com/Raimguhinov/morrow-go/pkg/httpserver"
	"github.com/Raimguhinov/morrow-go/pkg/logger"
)

func Run(cfg *config.Config) {
	l := logger.New(cfg.Log.Level, cfg.App.Env)

	ctx := context.Background()

	// Repository
	repo, closeRepo, err := storage.NewFromURL(ctx, l, cfg.Storage.URL, cfg.Storage.PoolMax)
	if err != nil {
		l.Fatal("app - Run - storage.NewFromURL", logger.Err(err))
	}
	defer closeRepo()

	alarms := store.NewAlarmStore(repo, l)
	if err := alarms.Hydrate(ctx); err != nil {
		l.Fatal("app - Run - alarms.Hydrate", logger.Err(err))
	}
	drafts := store.NewDraftStore()

	// HTTP Server
	router := SetupRouter(l, cfg, alarms, drafts)

	httpServer := httpserver.New(
		router,
		httpserver.Addr(cfg.HTTP.IP, cfg.HTTP.Port),
		httpserver.ReadTimeout(cfg.HTTP.Timeout),
		httpserver.WriteTimeout(cfg.HTTP.Timeout),
	)

	l.Info("server started", "addr", net.JoinHostPort(cfg.HTTP.IP, cfg.HTTP.Port))

	// Waiting signal
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-interrupt:
		l.Info("app - Run - signal: " + s.String())
	case err = <-httpServer.Notify():
		l.Error("app - Run - httpServer.Notify", logger.Err(err))
	}

	// Shutdown
	if err := httpServer.Shutdown(); err != nil {
		l.Error("app - Run - httpServer.Shutdown", logger.Err(err))
	}
}
