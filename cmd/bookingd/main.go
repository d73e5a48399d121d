package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/camelranchentertainment/Booking-Platform-sub000/internal/app"
	"github.com/camelranchentertainment/Booking-Platform-sub000/internal/config"
	"github.com/camelranchentertainment/Booking-Platform-sub000/internal/httpapi"
	"github.com/camelranchentertainment/Booking-Platform-sub000/internal/logging"
)

const (
	readHeaderTimeout = 10 * time.Second
	// Discovery requests stay open for the whole rate limited run.
	writeTimeout    = 15 * time.Minute
	shutdownTimeout = 30 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logger := logging.New(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})
	logging.SetGlobalLogger(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	application, err := app.New(ctx, cfg, logger.Component("app"))
	if err != nil {
		logger.Fatal(err, "Failed to initialise application")
	}
	defer application.Close()

	server := newServer(cfg, application, logger.Component("http"))

	go func() {
		zl := logger.Zerolog()
		zl.Info().
			Str("addr", server.Addr).
			Str("store", cfg.Database.Driver).
			Msg("Booking API starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal(err, "Server failed to start")
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error(err, "Server forced to shutdown")
		os.Exit(1)
	}

	logger.Info("Server exited")
}

func newServer(cfg *config.Config, application *app.App, logger zerolog.Logger) *http.Server {
	opts := []httpapi.Option{httpapi.WithCORSOrigins(cfg.CORS.AllowedOrigins)}
	if application.DB != nil {
		opts = append(opts, httpapi.WithPinger(application.DB))
	}

	return &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           httpapi.New(application.Discovery, application.Venues, logger, opts...).Routes(),
		ReadHeaderTimeout: readHeaderTimeout,
		WriteTimeout:      writeTimeout,
	}
}
