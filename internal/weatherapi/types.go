package weatherapi

// Types mirror the WeatherAPI.com JSON schema. Fields the application
// never reads are omitted; the upstream payload is otherwise trusted.

// SearchResult is one entry from the search/autocomplete endpoint.
type SearchResult struct {
	ID      int     `json:"id"`
	Name    string  `json:"name"`
	Region  string  `json:"region"`
	Country string  `json:"country"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	URL     string  `json:"url"`
}

// Location identifies the place a weather payload describes.
type Location struct {
	Name           string  `json:"name"`
	Region         string  `json:"region"`
	Country        string  `json:"country"`
	Lat            float64 `json:"lat"`
	Lon            float64 `json:"lon"`
	TzID           string  `json:"tz_id"`
	Localtime      string  `json:"localtime"`
	LocaltimeEpoch int64   `json:"localtime_epoch"`
}

// Condition is the free-text weather description plus its icon and code.
type Condition struct {
	Text string `json:"text"`
	Icon string `json:"icon"`
	Code int    `json:"code"`
}

// CurrentWeather holds the current observation block.
type CurrentWeather struct {
	LastUpdated string    `json:"last_updated"`
	TempC       float64   `json:"temp_c"`
	TempF       float64   `json:"temp_f"`
	FeelsLikeC  float64   `json:"feelslike_c"`
	FeelsLikeF  float64   `json:"feelslike_f"`
	Humidity    int       `json:"humidity"`
	WindKph     float64   `json:"wind_kph"`
	WindMph     float64   `json:"wind_mph"`
	WindDir     string    `json:"wind_dir"`
	VisKm       float64   `json:"vis_km"`
	VisMiles    float64   `json:"vis_miles"`
	PressureMb  float64   `json:"pressure_mb"`
	PressureIn  float64   `json:"pressure_in"`
	PrecipMm    float64   `json:"precip_mm"`
	PrecipIn    float64   `json:"precip_in"`
	Condition   Condition `json:"condition"`
}

// DayAggregate holds the day-level aggregates of one forecast day.
type DayAggregate struct {
	MaxTempC          float64   `json:"maxtemp_c"`
	MaxTempF          float64   `json:"maxtemp_f"`
	MinTempC          float64   `json:"mintemp_c"`
	MinTempF          float64   `json:"mintemp_f"`
	AvgHumidity       float64   `json:"avghumidity"`
	DailyChanceOfRain int       `json:"daily_chance_of_rain"`
	DailyChanceOfSnow int       `json:"daily_chance_of_snow"`
	Condition         Condition `json:"condition"`
}

// Astro holds sunrise/sunset data for one forecast day.
type Astro struct {
	Sunrise string `json:"sunrise"`
	Sunset  string `json:"sunset"`
}

// ForecastDay is one future calendar day's aggregated prediction.
type ForecastDay struct {
	Date  string       `json:"date"`
	Day   DayAggregate `json:"day"`
	Astro Astro        `json:"astro"`
}

// Forecast wraps the multi-day forecast sequence.
type Forecast struct {
	ForecastDays []ForecastDay `json:"forecastday"`
}

// WeatherData is the full forecast.json response: location, current
// observation, and the requested number of forecast days.
type WeatherData struct {
	Location Location       `json:"location"`
	Current  CurrentWeather `json:"current"`
	Forecast Forecast       `json:"forecast"`
}

// apiError is the error envelope WeatherAPI.com returns on failures.
type apiError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
