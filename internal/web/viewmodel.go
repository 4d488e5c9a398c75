package web

import (
	"weather-dashboard/internal/condition"
	"weather-dashboard/internal/settings"
	"weather-dashboard/internal/weatherapi"
)

// CurrentView is the unit-resolved current weather block handed to
// templates and the JSON API.
type CurrentView struct {
	Temp        float64 `json:"temp"`
	FeelsLike   float64 `json:"feelslike"`
	Condition   string  `json:"condition"`
	Icon        string  `json:"icon"`
	Symbol      string  `json:"symbol"`
	Humidity    int     `json:"humidity"`
	WindKph     float64 `json:"wind_kph"`
	WindMph     float64 `json:"wind_mph"`
	WindDir     string  `json:"wind_dir"`
	PressureMb  float64 `json:"pressure_mb"`
	PressureIn  float64 `json:"pressure_in"`
	PrecipMm    float64 `json:"precip_mm"`
	PrecipIn    float64 `json:"precip_in"`
	VisKm       float64 `json:"vis_km"`
	LastUpdated string  `json:"last_updated"`
}

// ForecastDayView is one unit-resolved forecast day.
type ForecastDayView struct {
	Date         string  `json:"date"`
	Condition    string  `json:"condition"`
	Icon         string  `json:"icon"`
	Symbol       string  `json:"symbol"`
	MaxTemp      float64 `json:"max_temp"`
	MinTemp      float64 `json:"min_temp"`
	Humidity     float64 `json:"humidity"`
	ChanceOfRain int     `json:"chance_of_rain"`
	ChanceOfSnow int     `json:"chance_of_snow"`
	Sunrise      string  `json:"sunrise,omitempty"`
	Sunset       string  `json:"sunset,omitempty"`
}

// LocationView identifies the place a view describes.
type LocationView struct {
	Name    string  `json:"name"`
	Region  string  `json:"region"`
	Country string  `json:"country"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

// WeatherView is the full template/JSON payload: a pure function of
// the upstream data and the chosen unit.
type WeatherView struct {
	Location LocationView      `json:"location"`
	Current  CurrentView       `json:"current"`
	Forecast []ForecastDayView `json:"forecast,omitempty"`
	Unit     string            `json:"unit"`
}

// FormatWeatherData projects the upstream payload into a WeatherView
// for the requested temperature unit.
func FormatWeatherData(data *weatherapi.WeatherData, unit string) WeatherView {
	if data == nil {
		return WeatherView{Unit: unit}
	}

	view := WeatherView{
		Location: LocationView{
			Name:    data.Location.Name,
			Region:  data.Location.Region,
			Country: data.Location.Country,
			Lat:     data.Location.Lat,
			Lon:     data.Location.Lon,
		},
		Current: CurrentView{
			Condition:   data.Current.Condition.Text,
			Icon:        data.Current.Condition.Icon,
			Symbol:      condition.Symbol(data.Current.Condition.Text),
			Humidity:    data.Current.Humidity,
			WindKph:     data.Current.WindKph,
			WindMph:     data.Current.WindMph,
			WindDir:     data.Current.WindDir,
			PressureMb:  data.Current.PressureMb,
			PressureIn:  data.Current.PressureIn,
			PrecipMm:    data.Current.PrecipMm,
			PrecipIn:    data.Current.PrecipIn,
			VisKm:       data.Current.VisKm,
			LastUpdated: data.Current.LastUpdated,
		},
		Unit: unit,
	}

	if unit == settings.UnitFahrenheit {
		view.Current.Temp = data.Current.TempF
		view.Current.FeelsLike = data.Current.FeelsLikeF
	} else {
		view.Current.Temp = data.Current.TempC
		view.Current.FeelsLike = data.Current.FeelsLikeC
	}

	for _, day := range data.Forecast.ForecastDays {
		dayView := ForecastDayView{
			Date:         day.Date,
			Condition:    day.Day.Condition.Text,
			Icon:         day.Day.Condition.Icon,
			Symbol:       condition.Symbol(day.Day.Condition.Text),
			Humidity:     day.Day.AvgHumidity,
			ChanceOfRain: day.Day.DailyChanceOfRain,
			ChanceOfSnow: day.Day.DailyChanceOfSnow,
			Sunrise:      day.Astro.Sunrise,
			Sunset:       day.Astro.Sunset,
		}
		if unit == settings.UnitFahrenheit {
			dayView.MaxTemp = day.Day.MaxTempF
			dayView.MinTemp = day.Day.MinTempF
		} else {
			dayView.MaxTemp = day.Day.MaxTempC
			dayView.MinTemp = day.Day.MinTempC
		}
		view.Forecast = append(view.Forecast, dayView)
	}

	return view
}

// FilterForecastDates keeps only the forecast days whose date string
// appears in wanted (YYYY-MM-DD). Used by the natural-language route.
func FilterForecastDates(view WeatherView, wanted []string) WeatherView {
	if len(wanted) == 0 {
		return view
	}
	keep := make(map[string]bool, len(wanted))
	for _, d := range wanted {
		keep[d] = true
	}
	var filtered []ForecastDayView
	for _, day := range view.Forecast {
		if keep[day.Date] {
			filtered = append(filtered, day)
		}
	}
	view.Forecast = filtered
	return view
}
