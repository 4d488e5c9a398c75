package main

import (
	"context"
	"net/http"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"weather-dashboard/internal/config"
	"weather-dashboard/internal/display"
	"weather-dashboard/internal/logging"
	"weather-dashboard/internal/settings"
	"weather-dashboard/internal/store"
	"weather-dashboard/internal/weatherapi"
)

// app bundles everything a command needs. Built once in the root
// PersistentPreRunE so subcommands stay small.
type app struct {
	cfg    *config.AppConfig
	log    *zap.SugaredLogger
	client *weatherapi.Client
	repo   store.LocationRepository
	prefs  *settings.Store
	render *display.Renderer
}

var cli app

var rootCmd = &cobra.Command{
	Use:           "weather-cli",
	Short:         "Look up current weather and forecasts from the terminal",
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return cli.init(cmd.Context())
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		cli.close()
	},
}

func (a *app) init(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	a.cfg = cfg

	// Command output goes to stdout; diagnostics logging stays quiet
	// unless LOG_LEVEL is raised.
	level := cfg.LogLevel
	if os.Getenv("LOG_LEVEL") == "" {
		level = "error"
	}
	logger, err := logging.New(level)
	if err != nil {
		return err
	}
	a.log = logger

	httpClient := &http.Client{Timeout: cfg.HTTPTimeout}
	a.client = weatherapi.NewClient(httpClient, cfg.WeatherAPIKey, cfg.WeatherAPIBaseURL, cfg.RequestsPerSecond, logger)

	if cfg.DatabaseURL != "" {
		pg, err := store.NewPostgresRepository(ctx, cfg.DatabaseURL)
		if err != nil {
			return err
		}
		a.repo = pg
	} else {
		a.repo = store.NewMemoryRepository()
	}

	a.prefs = settings.NewStore(cfg.SettingsPath)
	a.render = display.NewRenderer(os.Stdout)
	return nil
}

func (a *app) close() {
	if a.repo != nil {
		a.repo.Close()
	}
	if a.log != nil {
		a.log.Sync()
	}
}

// loadSettings returns saved preferences, falling back to defaults on
// a read failure so lookups still work.
func (a *app) loadSettings() settings.Settings {
	prefs, err := a.prefs.Load()
	if err != nil {
		a.log.Warnw("failed to load settings", "err", err)
		return settings.Defaults()
	}
	return prefs
}
