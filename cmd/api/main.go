package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/supportclint/call-logs-backend/internal/config"
	"github.com/supportclint/call-logs-backend/internal/database"
	"github.com/supportclint/call-logs-backend/internal/handlers"
	"github.com/supportclint/call-logs-backend/internal/log"
	"github.com/supportclint/call-logs-backend/internal/repository"
	"github.com/supportclint/call-logs-backend/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := log.New("api", cfg.Environment)

	dbPool, err := database.NewPostgresPool(context.Background(), cfg.Postgres)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect postgres")
	}

	userRepo := repository.NewUserRepository(dbPool)
	logRepo := repository.NewLogRepository(dbPool)

	handlerSet := handlers.NewHandlerSet(logger, cfg, userRepo, logRepo, dbPool)
	httpServer := server.NewHTTPServer(cfg, logger, handlerSet)

	go func() {
		if err := httpServer.Start(); err != nil {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	waitForShutdown(logger, httpServer, dbPool)
}

func waitForShutdown(logger zerolog.Logger, srv *server.HTTPServer, db *pgxpool.Pool) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()
	logger.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
	}

	db.Close()
	logger.Info().Msg("server exited cleanly")
}
