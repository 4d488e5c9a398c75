package web

import (
	"testing"

	"weather-dashboard/internal/weatherapi"
)

func sampleData() *weatherapi.WeatherData {
	return &weatherapi.WeatherData{
		Location: weatherapi.Location{Name: "Paris", Country: "France", Lat: 48.87, Lon: 2.33},
		Current: weatherapi.CurrentWeather{
			TempC: 20, TempF: 68, FeelsLikeC: 19, FeelsLikeF: 66.2,
			Condition: weatherapi.Condition{Text: "Sunny"},
		},
		Forecast: weatherapi.Forecast{ForecastDays: []weatherapi.ForecastDay{
			{Date: "2025-05-24", Day: weatherapi.DayAggregate{MaxTempC: 22, MaxTempF: 71.6, MinTempC: 12, MinTempF: 53.6, Condition: weatherapi.Condition{Text: "Light rain"}}},
			{Date: "2025-05-25", Day: weatherapi.DayAggregate{MaxTempC: 24, MaxTempF: 75.2, MinTempC: 13, MinTempF: 55.4, Condition: weatherapi.Condition{Text: "Cloudy"}}},
		}},
	}
}

func TestFormatWeatherDataUnits(t *testing.T) {
	data := sampleData()

	celsius := FormatWeatherData(data, "C")
	if celsius.Current.Temp != 20 || celsius.Forecast[0].MaxTemp != 22 {
		t.Errorf("expected celsius temps, got current %v max %v", celsius.Current.Temp, celsius.Forecast[0].MaxTemp)
	}

	fahrenheit := FormatWeatherData(data, "F")
	if fahrenheit.Current.Temp != 68 || fahrenheit.Forecast[0].MaxTemp != 71.6 {
		t.Errorf("expected fahrenheit temps, got current %v max %v", fahrenheit.Current.Temp, fahrenheit.Forecast[0].MaxTemp)
	}

	if celsius.Current.Symbol != "☀️" {
		t.Errorf("expected sunny symbol, got %q", celsius.Current.Symbol)
	}
	if celsius.Forecast[0].Symbol != "🌧️" {
		t.Errorf("expected rain symbol, got %q", celsius.Forecast[0].Symbol)
	}
}

func TestFormatWeatherDataNil(t *testing.T) {
	view := FormatWeatherData(nil, "C")
	if view.Unit != "C" || len(view.Forecast) != 0 {
		t.Errorf("expected empty view, got %+v", view)
	}
}

func TestFilterForecastDates(t *testing.T) {
	view := FormatWeatherData(sampleData(), "C")

	filtered := FilterForecastDates(view, []string{"2025-05-25"})
	if len(filtered.Forecast) != 1 || filtered.Forecast[0].Date != "2025-05-25" {
		t.Fatalf("expected only 2025-05-25, got %+v", filtered.Forecast)
	}

	// No wanted dates means no filtering.
	all := FilterForecastDates(view, nil)
	if len(all.Forecast) != 2 {
		t.Fatalf("expected both days, got %d", len(all.Forecast))
	}

	none := FilterForecastDates(view, []string{"2025-06-01"})
	if len(none.Forecast) != 0 {
		t.Fatalf("expected no days, got %d", len(none.Forecast))
	}
}
