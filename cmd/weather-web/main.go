package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"weather-dashboard/internal/config"
	"weather-dashboard/internal/logging"
	"weather-dashboard/internal/settings"
	"weather-dashboard/internal/store"
	"weather-dashboard/internal/weatherapi"
	"weather-dashboard/internal/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	// Shared HTTP client for outbound WeatherAPI.com calls.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}
	client := weatherapi.NewClient(httpClient, cfg.WeatherAPIKey, cfg.WeatherAPIBaseURL, cfg.RequestsPerSecond, logger)

	// Saved locations live in Postgres when configured, otherwise in
	// process memory.
	var repo store.LocationRepository
	if cfg.DatabaseURL != "" {
		pg, err := store.NewPostgresRepository(context.Background(), cfg.DatabaseURL)
		if err != nil {
			logger.Fatalw("failed to connect to database", "err", err)
		}
		repo = pg
		logger.Infow("using postgres location store")
	} else {
		repo = store.NewMemoryRepository()
		logger.Infow("no DATABASE_URL set, using in-memory location store")
	}
	defer repo.Close()

	prefs := settings.NewStore(cfg.SettingsPath)

	app := web.NewServer(client, repo, prefs, cfg.SecretKey, logger).App()

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			logger.Errorw("fiber server stopped", "err", err)
		}
	}()
	logger.Infow("weather dashboard listening", "port", cfg.Port)

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		logger.Errorw("error during shutdown", "err", err)
	}
}
