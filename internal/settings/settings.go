// Package settings persists user preferences as a flat record with
// explicit load/save operations.
package settings

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/mitchellh/mapstructure"
)

const (
	UnitCelsius    = "C"
	UnitFahrenheit = "F"

	DefaultForecastDays = 7
)

// Settings is the single user-level preference record.
type Settings struct {
	TemperatureUnit string `json:"temperature_unit" mapstructure:"temperature_unit"`
	ForecastDays    int    `json:"forecast_days" mapstructure:"forecast_days"`
	WindSpeedUnit   string `json:"wind_speed_unit" mapstructure:"wind_speed_unit"`

	// DefaultLocationID refers to a saved location, 0 when unset.
	DefaultLocationID int64 `json:"default_location_id" mapstructure:"default_location_id"`
}

// Defaults returns the settings used before the user saves anything.
func Defaults() Settings {
	return Settings{
		TemperatureUnit: UnitCelsius,
		ForecastDays:    DefaultForecastDays,
		WindSpeedUnit:   "kph",
	}
}

// NormalizeUnit maps arbitrary user input to a valid temperature unit,
// falling back to Celsius.
func NormalizeUnit(unit string) string {
	switch unit {
	case UnitFahrenheit, "f", "fahrenheit", "Fahrenheit":
		return UnitFahrenheit
	default:
		return UnitCelsius
	}
}

// ClampForecastDays forces the day count into the API-supported 1-7.
func ClampForecastDays(days int) int {
	if days < 1 {
		return 1
	}
	if days > 7 {
		return 7
	}
	return days
}

// Store reads and writes the settings file. Load and Save are
// serialized; the record is effectively single-user.
type Store struct {
	mu   sync.Mutex
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load returns the persisted settings, or defaults when the file does
// not exist yet. A corrupt file is an error, not silent defaults.
func (s *Store) Load() (Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return Defaults(), nil
	}
	if err != nil {
		return Settings{}, fmt.Errorf("read settings: %w", err)
	}

	// Decode through a generic map so unknown keys from older versions
	// of the file are ignored rather than fatal.
	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return Settings{}, fmt.Errorf("parse settings: %w", err)
	}

	settings := Defaults()
	if err := mapstructure.Decode(raw, &settings); err != nil {
		return Settings{}, fmt.Errorf("decode settings: %w", err)
	}

	settings.TemperatureUnit = NormalizeUnit(settings.TemperatureUnit)
	settings.ForecastDays = ClampForecastDays(settings.ForecastDays)
	return settings, nil
}

// Save writes the settings atomically (temp file + rename).
func (s *Store) Save(settings Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create settings dir: %w", err)
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace settings: %w", err)
	}
	return nil
}
