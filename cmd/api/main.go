package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spacesedan/sentiment-api/config"
	"github.com/spacesedan/sentiment-api/internal/logging"
	"github.com/spacesedan/sentiment-api/internal/sentiment"
	"github.com/spacesedan/sentiment-api/internal/server"
)

const shutdownTimeout = 10 * time.Second

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)

	cfg, err := config.Load()
	if err != nil {
		// slog is not configured yet
		log.Fatalf("Failed to load config: %v", err)
	}

	logging.InitLogger(cfg.LogFile)

	pipeline := sentiment.NewPipeline(sentiment.GetScorer())

	srv := server.NewServer(cfg, pipeline)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("[Main] Server stopped",
				slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()
	slog.Info("[Main] Sentiment Analysis API listening",
		slog.String("port", cfg.Port),
		slog.String("env", cfg.AppEnv))

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	slog.Info("[Main] Shutdown signal received, cleaning up...")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("[Main] Server shutdown error",
			slog.String("error", err.Error()))
	}
}
