package settings

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "settings.json"))
	got, err := store.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != Defaults() {
		t.Errorf("got %+v, want defaults %+v", got, Defaults())
	}
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "settings.json"))

	want := Settings{
		TemperatureUnit:   UnitFahrenheit,
		ForecastDays:      3,
		WindSpeedUnit:     "mph",
		DefaultLocationID: 42,
	}
	if err := store.Save(want); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestLoadIgnoresUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	payload := `{"temperature_unit":"F","forecast_days":5,"theme":"dark"}`
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := NewStore(path).Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.TemperatureUnit != UnitFahrenheit || got.ForecastDays != 5 {
		t.Errorf("got %+v", got)
	}
	// Unset keys keep their defaults.
	if got.WindSpeedUnit != "kph" {
		t.Errorf("wind speed unit = %q, want default kph", got.WindSpeedUnit)
	}
}

func TestLoadClampsOutOfRangeValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	payload := `{"temperature_unit":"kelvin","forecast_days":30}`
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := NewStore(path).Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.TemperatureUnit != UnitCelsius {
		t.Errorf("unit = %q, want C", got.TemperatureUnit)
	}
	if got.ForecastDays != 7 {
		t.Errorf("forecast days = %d, want 7", got.ForecastDays)
	}
}

func TestNormalizeUnit(t *testing.T) {
	if NormalizeUnit("f") != UnitFahrenheit || NormalizeUnit("F") != UnitFahrenheit {
		t.Error("fahrenheit inputs should normalize to F")
	}
	if NormalizeUnit("C") != UnitCelsius || NormalizeUnit("") != UnitCelsius {
		t.Error("everything else should normalize to C")
	}
}
