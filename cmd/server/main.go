// Package main provides the entry point for the leaderboard HTTP server.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/nuitinfo/podium-live/internal/config"
	"github.com/nuitinfo/podium-live/internal/database/database"
	"github.com/nuitinfo/podium-live/internal/database/migrate"
	"github.com/nuitinfo/podium-live/internal/health"
	"github.com/nuitinfo/podium-live/internal/middleware"
	statisticsRouter "github.com/nuitinfo/podium-live/internal/statistics/router"
	teamRouter "github.com/nuitinfo/podium-live/internal/team/router"
	"github.com/nuitinfo/podium-live/pkg/logger"
)

func main() {
	// Optional .env for local development; absence is not an error.
	_ = godotenv.Load()

	cfg := config.LoadFromEnv()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	zlog, err := logger.NewWithConfig(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	gin.SetMode(cfg.GinMode)

	db, err := database.New()
	if err != nil {
		zlog.Fatalw("failed to connect to database", "error", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			zlog.Errorw("failed to close database", "error", err)
		}
	}()

	if err := migrate.Migrate(db); err != nil {
		zlog.Fatalw("failed to apply migrations", "error", err)
	}

	r := gin.New()
	r.Use(middleware.Recovery(zlog))
	r.Use(middleware.Logger(zlog))

	adminGate := middleware.AdminAuth(cfg.Admin)

	healthHandler := health.New(db, zlog)
	r.GET("/health", healthHandler.Check)

	teamRouter.RegisterRoutes(r, db, zlog, adminGate)
	statisticsRouter.RegisterRoutes(r, db, zlog, adminGate)

	srv := &http.Server{
		Addr:         cfg.Server.GetAddress(),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		zlog.Infow("server starting", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatalw("server failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zlog.Infow("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zlog.Errorw("graceful shutdown failed", "error", err)
	}
}
