package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/berkayoztunc/suiport/internal/config"
	"github.com/berkayoztunc/suiport/internal/logger"
	"github.com/berkayoztunc/suiport/internal/server"
)

// @title           Suiport API
// @version         1.0
// @description     Sui wallet portfolio tracker: token prices, wallet valuations and history.
// @BasePath        /api/v1
func main() {
	// Load .env for local development; in deployed environments the
	// variables are already set.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		// Logger is not up yet
		panic(err)
	}

	logger.InitLogger(cfg.Stage)
	defer logger.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	srv, err := server.New(ctx, cfg)
	cancel()
	if err != nil {
		logger.Fatal("failed to initialize server", zap.Error(err))
	}

	go func() {
		if err := srv.Run(); err != nil {
			logger.Fatal("server stopped unexpectedly", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown did not complete cleanly", zap.Error(err))
	}
}
