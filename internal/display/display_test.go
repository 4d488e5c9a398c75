package display

import (
	"bytes"
	"strings"
	"testing"

	"weather-dashboard/internal/settings"
	"weather-dashboard/internal/store"
	"weather-dashboard/internal/weatherapi"
)

func TestCurrentWeatherUnits(t *testing.T) {
	data := &weatherapi.WeatherData{
		Location: weatherapi.Location{Name: "London", Country: "United Kingdom"},
		Current: weatherapi.CurrentWeather{
			TempC: 18, TempF: 64.4, FeelsLikeC: 17, FeelsLikeF: 62.6,
			Condition: weatherapi.Condition{Text: "Light rain"},
		},
	}

	var buf bytes.Buffer
	NewRenderer(&buf).CurrentWeather(data, settings.UnitCelsius)
	out := buf.String()
	if !strings.Contains(out, "18.0°C") {
		t.Errorf("expected celsius temperature, got:\n%s", out)
	}
	if !strings.Contains(out, "🌧️") {
		t.Errorf("expected rain symbol, got:\n%s", out)
	}

	buf.Reset()
	NewRenderer(&buf).CurrentWeather(data, settings.UnitFahrenheit)
	if out := buf.String(); !strings.Contains(out, "64.4°F") {
		t.Errorf("expected fahrenheit temperature, got:\n%s", out)
	}
}

func TestCurrentWeatherNilData(t *testing.T) {
	var buf bytes.Buffer
	NewRenderer(&buf).CurrentWeather(nil, settings.UnitCelsius)
	if !strings.Contains(buf.String(), "Could not retrieve") {
		t.Errorf("expected error line, got:\n%s", buf.String())
	}
}

func TestSavedLocationsFavoriteMarker(t *testing.T) {
	var buf bytes.Buffer
	NewRenderer(&buf).SavedLocations([]store.SavedLocation{
		{ID: 1, Name: "Paris", Country: "France", IsFavorite: true},
		{ID: 2, Name: "Berlin", Country: "Germany"},
	})
	out := buf.String()
	if !strings.Contains(out, "★ Paris") {
		t.Errorf("expected favorite marker for Paris, got:\n%s", out)
	}
	if strings.Contains(out, "★ Berlin") {
		t.Errorf("unexpected favorite marker for Berlin:\n%s", out)
	}
}
