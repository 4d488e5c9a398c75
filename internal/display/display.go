// Package display renders weather data as console text.
package display

import (
	"fmt"
	"io"
	"strings"

	"weather-dashboard/internal/condition"
	"weather-dashboard/internal/settings"
	"weather-dashboard/internal/store"
	"weather-dashboard/internal/weatherapi"
)

// Renderer writes human-readable weather output. It never mutates the
// data it is given.
type Renderer struct {
	out io.Writer
}

func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{out: out}
}

// SearchResults lists the candidate locations of a search, numbered
// for selection.
func (r *Renderer) SearchResults(results []weatherapi.SearchResult) {
	if len(results) == 0 {
		fmt.Fprintln(r.out, "No city found.")
		return
	}
	fmt.Fprintln(r.out, "\n📍 Found city:")
	for i, loc := range results {
		region := loc.Region
		if region == "" {
			region = "N/A"
		}
		fmt.Fprintf(r.out, "%d. %s, %s, %s\n", i+1, loc.Name, region, loc.Country)
		fmt.Fprintf(r.out, "   Lat: %g, Lon: %g\n", loc.Lat, loc.Lon)
	}
}

// CurrentWeather prints the current observation block.
func (r *Renderer) CurrentWeather(data *weatherapi.WeatherData, unit string) {
	if data == nil {
		fmt.Fprintln(r.out, "❌ Could not retrieve weather data.")
		return
	}
	cur := data.Current
	symbol := condition.Symbol(cur.Condition.Text)

	fmt.Fprintf(r.out, "\n%s Weather in %s, %s: %s\n",
		symbol, data.Location.Name, data.Location.Country, cur.Condition.Text)
	if unit == settings.UnitFahrenheit {
		fmt.Fprintf(r.out, "Temperature: %.1f°F (feels like %.1f°F)\n", cur.TempF, cur.FeelsLikeF)
	} else {
		fmt.Fprintf(r.out, "Temperature: %.1f°C (feels like %.1f°C)\n", cur.TempC, cur.FeelsLikeC)
	}
	fmt.Fprintf(r.out, "Humidity: %d%%  Wind: %.1f kph %s  Pressure: %.0f mb\n",
		cur.Humidity, cur.WindKph, cur.WindDir, cur.PressureMb)
	fmt.Fprintf(r.out, "Precipitation: %.1f mm  Visibility: %.1f km\n", cur.PrecipMm, cur.VisKm)
	if cur.LastUpdated != "" {
		fmt.Fprintf(r.out, "Last updated: %s\n", cur.LastUpdated)
	}
}

// Forecast prints one line per forecast day.
func (r *Renderer) Forecast(data *weatherapi.WeatherData, unit string) {
	if data == nil || len(data.Forecast.ForecastDays) == 0 {
		fmt.Fprintln(r.out, "❌ Could not retrieve forecast data.")
		return
	}
	days := data.Forecast.ForecastDays
	fmt.Fprintf(r.out, "\n%d-Day Forecast:\n", len(days))
	for _, day := range days {
		symbol := condition.Symbol(day.Day.Condition.Text)
		var maxT, minT float64
		suffix := "°C"
		if unit == settings.UnitFahrenheit {
			maxT, minT = day.Day.MaxTempF, day.Day.MinTempF
			suffix = "°F"
		} else {
			maxT, minT = day.Day.MaxTempC, day.Day.MinTempC
		}
		fmt.Fprintf(r.out, "%s - %s %s  %.1f%s / %.1f%s  rain %d%%\n",
			day.Date, symbol, day.Day.Condition.Text, maxT, suffix, minT, suffix,
			day.Day.DailyChanceOfRain)
		if day.Astro.Sunrise != "" {
			fmt.Fprintf(r.out, "           sunrise %s  sunset %s\n", day.Astro.Sunrise, day.Astro.Sunset)
		}
	}
}

// SavedLocations lists stored locations with their favorite marker.
func (r *Renderer) SavedLocations(locs []store.SavedLocation) {
	if len(locs) == 0 {
		fmt.Fprintln(r.out, "No saved locations found.")
		return
	}
	fmt.Fprintln(r.out, "\nSaved locations:")
	fmt.Fprintln(r.out, strings.Repeat("=", 50))
	for i, loc := range locs {
		star := " "
		if loc.IsFavorite {
			star = "★"
		}
		region := loc.Region
		if region == "" {
			region = "N/A"
		}
		fmt.Fprintf(r.out, "%d. %s %s, %s, %s\n", i+1, star, loc.Name, region, loc.Country)
		fmt.Fprintf(r.out, "   Lat: %g, Lon: %g\n", loc.Latitude, loc.Longitude)
		fmt.Fprintln(r.out, strings.Repeat("-", 50))
	}
}

// Settings prints the current preference record.
func (r *Renderer) Settings(s settings.Settings) {
	fmt.Fprintln(r.out, "\nCurrent settings:")
	fmt.Fprintf(r.out, "  Temperature unit: %s\n", s.TemperatureUnit)
	fmt.Fprintf(r.out, "  Forecast days:    %d\n", s.ForecastDays)
	fmt.Fprintf(r.out, "  Wind speed unit:  %s\n", s.WindSpeedUnit)
	if s.DefaultLocationID != 0 {
		fmt.Fprintf(r.out, "  Default location: #%d\n", s.DefaultLocationID)
	}
}

// Error prints a user-facing error line.
func (r *Renderer) Error(msg string) {
	fmt.Fprintf(r.out, "❌ %s\n", msg)
}
