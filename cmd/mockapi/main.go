// The mock backend serves the same API contract as cmd/api from generated
// in-memory data, so the console frontend can be developed without a live
// database. Data is regenerated on every restart.
package main

import (
	"context"
	"math/rand"
	"os/signal"
	"syscall"
	"time"

	"github.com/supportclint/call-logs-backend/internal/config"
	"github.com/supportclint/call-logs-backend/internal/handlers"
	"github.com/supportclint/call-logs-backend/internal/log"
	"github.com/supportclint/call-logs-backend/internal/mockdata"
	"github.com/supportclint/call-logs-backend/internal/mockstore"
	"github.com/supportclint/call-logs-backend/internal/security"
	"github.com/supportclint/call-logs-backend/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := log.New("mockapi", cfg.Environment)

	passwordHash, err := security.HashPassword(mockdata.DevPassword)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to hash dev password")
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	store := mockstore.New(mockdata.Generate(rng, passwordHash))

	handlerSet := handlers.NewHandlerSet(logger, cfg, store, store, store)
	httpServer := server.NewHTTPServer(cfg, logger, handlerSet)

	go func() {
		if err := httpServer.Start(); err != nil {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
	}
}
