package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/salesdesk/salesdesk/config"
	"github.com/salesdesk/salesdesk/internal/app"
	"github.com/salesdesk/salesdesk/pkg/logger"
)

// osExit is a variable to allow mocking os.Exit in tests
var osExit = os.Exit

// For testing purposes - allows us to mock the signal channel
var signalNotify = signal.Notify

// NewAppFunc defines the function signature for creating a new app
type NewAppFunc func(cfg *config.Config, opts ...app.AppOption) app.AppInterface

const (
	drainTimeout    = 25 * time.Second
	shutdownTimeout = 30 * time.Second
)

// runServer initializes the app, serves until a signal arrives, then shuts down gracefully
func runServer(cfg *config.Config, appLogger logger.Logger, newApp NewAppFunc) error {
	appInstance := newApp(cfg, app.WithLogger(appLogger))

	if err := appInstance.Initialize(); err != nil {
		appLogger.WithField("error", err.Error()).Error("Failed to initialize application")
		return err
	}

	signals := make(chan os.Signal, 1)
	signalNotify(signals, os.Interrupt, syscall.SIGTERM)

	served := make(chan error, 1)
	go func() {
		appLogger.Info("Server started successfully")
		served <- appInstance.Start()
	}()

	select {
	case err := <-served:
		if err == nil || errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		appLogger.WithField("error", err.Error()).Error("Server error")
		return err
	case sig := <-signals:
		appLogger.WithField("signal", sig.String()).Info("Shutdown signal received")
		return drain(appInstance, appLogger)
	}
}

// drain waits for in-flight requests; a second signal abandons them
func drain(appInstance app.AppInterface, appLogger logger.Logger) error {
	appInstance.SetShutdownTimeout(drainTimeout)
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	appLogger.WithField("active_requests", appInstance.GetActiveRequestCount()).Info("Draining requests")

	again := make(chan os.Signal, 1)
	signalNotify(again, os.Interrupt, syscall.SIGTERM)

	done := make(chan error, 1)
	go func() { done <- appInstance.Shutdown(ctx) }()

	select {
	case err := <-done:
		if err != nil {
			appLogger.WithField("error", err.Error()).Error("Error during graceful shutdown")
			return err
		}
		appLogger.Info("Server shut down gracefully")
		return nil
	case sig := <-again:
		appLogger.WithField("signal", sig.String()).Warn("Second signal received, abandoning in-flight requests")
		cancel()
		select {
		case <-done:
		case <-time.After(2 * time.Second):
		}
		return errors.New("forced shutdown")
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger := logger.NewLoggerWithLevel(cfg.LogLevel)
	appLogger.WithField("addr", fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)).
		WithField("environment", cfg.Environment).
		Info("Starting salesdesk API")

	if err := runServer(cfg, appLogger, app.NewApp); err != nil {
		osExit(1)
	}
}
