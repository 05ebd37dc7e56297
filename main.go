package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/fitclub/wellness-api/config"
	"github.com/fitclub/wellness-api/logging"
	"github.com/fitclub/wellness-api/scheduler"
	"github.com/fitclub/wellness-api/server"
	"github.com/fitclub/wellness-api/session"
	"github.com/fitclub/wellness-api/validation"
)

func main() {
	// .env is optional; real deployments set the environment directly
	if err := godotenv.Load(); err != nil {
		logging.Info("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		logging.Error("Configuration error", "error", err)
		os.Exit(1)
	}

	logging.Init(cfg.LogDir, cfg.LogLevel)

	store := session.NewStore(
		time.Duration(cfg.SessionTTLMin)*time.Minute,
		5*time.Minute,
	)
	validator := validation.NewValidator()

	jobs := scheduler.NewScheduler(store)
	if err := jobs.Start(); err != nil {
		logging.Error("Failed to start background jobs", "error", err)
		os.Exit(1)
	}
	defer jobs.Stop()

	srv := server.NewServer(cfg, store, validator)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logging.Error("Shutdown error", "error", err)
		os.Exit(1)
	}
}
