// Command paintd serves a shared drawing surface over HTTP and websockets.
//
// Configuration comes from PAINT_* environment variables; see
// internal/config.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gogpu/paint"
	"github.com/gogpu/paint/internal/config"
	"github.com/gogpu/paint/internal/server"
	"github.com/gogpu/paint/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}

	level, _ := cfg.Level()
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	paint.SetLogger(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var sceneOpts []paint.SceneOption
	if cfg.PixelCache {
		sceneOpts = append(sceneOpts, paint.WithPixelCache())
	}
	sess := session.New(cfg.Width, cfg.Height,
		session.WithQueueSize(cfg.QueueSize),
		session.WithSceneOptions(sceneOpts...),
	)

	sessCtx, cancelSess := context.WithCancel(context.Background())
	sessDone := make(chan struct{})
	go func() {
		defer close(sessDone)
		sess.Run(sessCtx)
	}()

	srv := &http.Server{
		Addr: cfg.Addr(),
		Handler: server.New(sess,
			server.WithOrigins(cfg.Origins()),
			server.WithDefaultBackend(cfg.Backend),
			server.WithSnapshotCache(cfg.SnapshotCache),
		),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		slog.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Warn("shutdown", "error", err)
		}
	}()

	slog.Info("server starting", "addr", srv.Addr,
		"width", cfg.Width, "height", cfg.Height, "backend", cfg.Backend)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("server error", "error", err)
		cancelSess()
		os.Exit(1)
	}

	cancelSess()
	<-sessDone
	slog.Info("server stopped")
}
