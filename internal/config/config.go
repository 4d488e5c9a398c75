package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	// WeatherAPIKey authenticates requests against WeatherAPI.com.
	// The application starts without it, but every lookup will fail.
	WeatherAPIKey string

	// WeatherAPIBaseURL is overridable for tests and proxies.
	WeatherAPIBaseURL string

	// HTTPTimeout bounds each outbound API call.
	HTTPTimeout time.Duration

	// RequestsPerSecond caps outbound API traffic (free-tier quota).
	RequestsPerSecond float64

	// DatabaseURL is a Postgres connection string for saved locations.
	// Empty means the in-memory repository is used instead.
	DatabaseURL string

	// SettingsPath is where user preferences are persisted.
	SettingsPath string

	// SecretKey encrypts web preference cookies.
	SecretKey string

	Port     string
	LogLevel string
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	cfg := &AppConfig{}

	cfg.WeatherAPIKey = os.Getenv("WEATHER_API_KEY")
	cfg.WeatherAPIBaseURL = getenvDefault("WEATHER_API_BASE_URL", "https://api.weatherapi.com/v1")
	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	cfg.SecretKey = getenvDefault("SECRET_KEY", "dev-key-change-in-production")
	cfg.Port = getenvDefault("PORT", "8080")
	cfg.LogLevel = getenvDefault("LOG_LEVEL", "info")

	timeoutStr := getenvDefault("HTTP_TIMEOUT", "10s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}
	cfg.HTTPTimeout = timeout

	cfg.RequestsPerSecond = getenvFloat("WEATHER_API_RPS", 5)

	settingsPath, err := defaultSettingsPath()
	if err != nil {
		return nil, err
	}
	cfg.SettingsPath = getenvDefault("SETTINGS_PATH", settingsPath)

	return cfg, nil
}

// defaultSettingsPath places settings.json under the user config dir,
// mirroring where the app keeps its local data on each platform.
func defaultSettingsPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("cannot resolve user config dir: %w", err)
	}
	return filepath.Join(base, "weather-dashboard", "settings.json"), nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err == nil {
			return f
		}
	}
	return def
}
