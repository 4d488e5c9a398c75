package web

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"weather-dashboard/internal/dates"
	"weather-dashboard/internal/location"
	"weather-dashboard/internal/settings"
	"weather-dashboard/internal/store"
)

var validate = validator.New()

// quickLinks are UI shortcuts pre-filling popular city coordinates.
var quickLinks = []struct {
	Name string
	Lat  float64
	Lon  float64
}{
	{"London", 51.52, -0.11},
	{"New York", 40.71, -74.01},
	{"Tokyo", 35.69, 139.69},
	{"Paris", 48.87, 2.33},
	{"Sydney", -33.87, 151.21},
}

func (s *Server) registerRoutes(app *fiber.App) {
	app.Get("/", s.handleIndex)
	app.Post("/search", s.handleSearch)
	app.Get("/weather/:lat/:lon", s.handleWeather)
	app.Get("/forecast/:lat/:lon", s.handleForecastCoords)
	app.Get("/forecast", s.handleForecastQuery)
	app.Post("/nl-date-weather", s.handleNLDateWeather)
	app.Post("/unit", s.handleSetUnit)
	app.Post("/forecast-days", s.handleSetForecastDays)
	app.Post("/favorite/:id", s.handleToggleFavorite)
	app.Get("/api/weather/:lat/:lon", s.handleAPIWeather)
}

// currentUnit resolves the effective temperature unit: explicit query
// or form value first, then the browser cookie, then the saved
// preference.
func (s *Server) currentUnit(c *fiber.Ctx) string {
	if v := c.Query("unit", c.FormValue("unit")); v != "" {
		return settings.NormalizeUnit(v)
	}
	if v := c.Cookies("unit"); v != "" {
		return settings.NormalizeUnit(v)
	}
	prefs, err := s.settings.Load()
	if err != nil {
		return settings.UnitCelsius
	}
	return prefs.TemperatureUnit
}

func (s *Server) forecastDays(c *fiber.Ctx) int {
	if v := c.Query("days"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return settings.ClampForecastDays(n)
		}
	}
	prefs, err := s.settings.Load()
	if err != nil {
		return settings.DefaultForecastDays
	}
	return prefs.ForecastDays
}

func (s *Server) handleIndex(c *fiber.Ctx) error {
	favorites, err := s.repo.Favorites(c.Context())
	if err != nil {
		s.log.Warnw("failed to load favorite locations", "err", err)
		favorites = nil
	}

	return c.Render("index", fiber.Map{
		"Title":      "Weather Dashboard",
		"Unit":       s.currentUnit(c),
		"Favorites":  favorites,
		"QuickLinks": quickLinks,
		"Error":      c.Query("err"),
		"Message":    c.Query("msg"),
	})
}

// searchForm carries the POST /search payload.
type searchForm struct {
	Location string `validate:"required"`
	Unit     string
}

func (s *Server) handleSearch(c *fiber.Ctx) error {
	form := searchForm{
		Location: c.FormValue("location"),
		Unit:     c.FormValue("unit"),
	}
	if err := validate.Struct(form); err != nil {
		return redirectWithError(c, "Please enter a location")
	}

	unit := settings.NormalizeUnit(form.Unit)
	query := location.Normalize(form.Location)

	results, err := s.client.Search(c.Context(), query)
	if err != nil {
		s.log.Errorw("location search failed", "query", query, "err", err)
		return redirectWithError(c, "Error finding location: could not retrieve data")
	}
	if len(results) == 0 {
		return redirectWithError(c, fmt.Sprintf("No cities found matching %q", form.Location))
	}

	// A single hit goes straight to the weather page.
	if len(results) == 1 {
		return c.Redirect(fmt.Sprintf("/weather/%g/%g?unit=%s", results[0].Lat, results[0].Lon, unit))
	}

	return c.Render("search_results", fiber.Map{
		"Title":   "Search Results",
		"Query":   form.Location,
		"Results": results,
		"Unit":    unit,
	})
}

func (s *Server) handleWeather(c *fiber.Ctx) error {
	coords, err := coordsFromParams(c)
	if err != nil {
		return redirectWithError(c, err.Error())
	}
	unit := s.currentUnit(c)

	data, err := s.client.Current(c.Context(), coords.String())
	if err != nil {
		s.log.Errorw("weather lookup failed", "coords", coords.String(), "err", err)
		return redirectWithError(c, "Could not retrieve weather data")
	}

	saved := s.rememberLocation(c.Context(), coords, data.Location.Name, data.Location.Country, data.Location.Region)

	return c.Render("weather", fiber.Map{
		"Title":   fmt.Sprintf("Weather in %s", data.Location.Name),
		"Weather": FormatWeatherData(data, unit),
		"Saved":   saved,
		"Unit":    unit,
		"Lat":     coords.Lat,
		"Lon":     coords.Lon,
	})
}

func (s *Server) handleForecastCoords(c *fiber.Ctx) error {
	coords, err := coordsFromParams(c)
	if err != nil {
		return redirectWithError(c, err.Error())
	}
	unit := s.currentUnit(c)
	days := s.forecastDays(c)

	data, err := s.client.Forecast(c.Context(), coords.String(), days)
	if err != nil {
		s.log.Errorw("forecast lookup failed", "coords", coords.String(), "err", err)
		return redirectWithError(c, "Could not retrieve forecast data")
	}

	s.rememberLocation(c.Context(), coords, data.Location.Name, data.Location.Country, data.Location.Region)

	return c.Render("forecast", fiber.Map{
		"Title":   fmt.Sprintf("%d-Day Forecast for %s", days, data.Location.Name),
		"Weather": FormatWeatherData(data, unit),
		"Unit":    unit,
		"Days":    days,
	})
}

// forecastQuery carries GET /forecast parameters for free-text places.
type forecastQuery struct {
	Q    string `validate:"required"`
	Days int    `validate:"gte=1,lte=7"`
}

func (s *Server) handleForecastQuery(c *fiber.Ctx) error {
	q := forecastQuery{
		Q:    c.Query("q"),
		Days: s.forecastDays(c),
	}
	if err := validate.Struct(q); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	data, err := s.client.Forecast(c.Context(), location.Normalize(q.Q), q.Days)
	if err != nil {
		s.log.Errorw("forecast lookup failed", "q", q.Q, "err", err)
		return redirectWithError(c, "Could not retrieve forecast data")
	}

	unit := s.currentUnit(c)
	return c.Render("forecast", fiber.Map{
		"Title":   fmt.Sprintf("%d-Day Forecast for %s", q.Days, data.Location.Name),
		"Weather": FormatWeatherData(data, unit),
		"Unit":    unit,
		"Days":    q.Days,
	})
}

// nlForm carries the natural-language question form.
type nlForm struct {
	Query string `validate:"required"`
}

func (s *Server) handleNLDateWeather(c *fiber.Ctx) error {
	form := nlForm{Query: c.FormValue("query")}
	if err := validate.Struct(form); err != nil {
		return redirectWithError(c, "Please ask something like \"Weather for Paris this weekend?\"")
	}

	place, datePhrase := location.ParseNLQuery(form.Query)
	if place == "" {
		return redirectWithError(c, "Could not find a place in that question")
	}

	wantedDates := dates.RangeForQuery(datePhrase, time.Now())
	if datePhrase != "" && len(wantedDates) == 0 {
		return redirectWithError(c, fmt.Sprintf("Did not understand the date %q", datePhrase))
	}

	results, err := s.client.Search(c.Context(), location.Normalize(place))
	if err != nil || len(results) == 0 {
		return redirectWithError(c, fmt.Sprintf("No cities found matching %q", place))
	}
	top := results[0]

	days := settings.DefaultForecastDays
	if len(wantedDates) > 0 {
		last := wantedDates[len(wantedDates)-1]
		days = settings.ClampForecastDays(daysAhead(last) + 1)
	}

	coords := location.Coordinates{Lat: top.Lat, Lon: top.Lon}
	data, err := s.client.Forecast(c.Context(), coords.String(), days)
	if err != nil {
		s.log.Errorw("nl forecast lookup failed", "place", place, "err", err)
		return redirectWithError(c, "Could not retrieve forecast data")
	}

	unit := s.currentUnit(c)
	view := FormatWeatherData(data, unit)
	if len(wantedDates) > 0 {
		wanted := make([]string, 0, len(wantedDates))
		for _, d := range wantedDates {
			wanted = append(wanted, d.Format("2006-01-02"))
		}
		view = FilterForecastDates(view, wanted)
		if len(view.Forecast) == 0 {
			return redirectWithError(c, "No forecast available for the requested dates")
		}
	}

	title := fmt.Sprintf("Weather for %s", top.Name)
	if datePhrase != "" {
		title = fmt.Sprintf("Weather for %s %s", top.Name, datePhrase)
	}
	return c.Render("forecast", fiber.Map{
		"Title":   title,
		"Weather": view,
		"Unit":    unit,
		"Days":    len(view.Forecast),
	})
}

func (s *Server) handleSetUnit(c *fiber.Ctx) error {
	unit := settings.NormalizeUnit(c.FormValue("unit"))

	prefs, err := s.settings.Load()
	if err != nil {
		prefs = settings.Defaults()
	}
	prefs.TemperatureUnit = unit
	if err := s.settings.Save(prefs); err != nil {
		s.log.Errorw("failed to save settings", "err", err)
		return redirectWithError(c, "Failed to save temperature unit")
	}

	c.Cookie(&fiber.Cookie{
		Name:    "unit",
		Value:   unit,
		Expires: time.Now().Add(365 * 24 * time.Hour),
	})
	return redirectBack(c, "Temperature unit updated")
}

// daysForm carries the forecast-days preference form.
type daysForm struct {
	Days int `validate:"gte=1,lte=7"`
}

func (s *Server) handleSetForecastDays(c *fiber.Ctx) error {
	n, err := strconv.Atoi(c.FormValue("days"))
	if err != nil {
		return redirectWithError(c, "Forecast days must be a number between 1 and 7")
	}
	form := daysForm{Days: n}
	if err := validate.Struct(form); err != nil {
		return redirectWithError(c, "Forecast days must be between 1 and 7")
	}

	prefs, err := s.settings.Load()
	if err != nil {
		prefs = settings.Defaults()
	}
	prefs.ForecastDays = form.Days
	if err := s.settings.Save(prefs); err != nil {
		s.log.Errorw("failed to save settings", "err", err)
		return redirectWithError(c, "Failed to save forecast days")
	}
	return redirectBack(c, fmt.Sprintf("Default forecast days updated to %d", form.Days))
}

func (s *Server) handleToggleFavorite(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return redirectWithError(c, "Invalid location")
	}
	fav, err := s.repo.ToggleFavorite(c.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return redirectWithError(c, "Location not found")
		}
		s.log.Errorw("failed to toggle favorite", "id", id, "err", err)
		return redirectWithError(c, "Failed to update favorite status")
	}
	if fav {
		return redirectBack(c, "Added to favorites")
	}
	return redirectBack(c, "Removed from favorites")
}

func (s *Server) handleAPIWeather(c *fiber.Ctx) error {
	coords, err := coordsFromParams(c)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	days := s.forecastDays(c)

	data, err := s.client.Forecast(c.Context(), coords.String(), days)
	if err != nil {
		return fiber.NewError(fiber.StatusBadGateway, "could not retrieve weather data")
	}
	return c.JSON(FormatWeatherData(data, s.currentUnit(c)))
}

// rememberLocation saves the looked-up place, refreshing any
// placeholder details from API data. Storage failures are logged and
// swallowed; the lookup still succeeds.
func (s *Server) rememberLocation(ctx context.Context, coords location.Coordinates, name, country, region string) *store.SavedLocation {
	saved, err := s.repo.FindOrCreate(ctx, store.SavedLocation{
		Name:      name,
		Country:   country,
		Region:    region,
		Latitude:  coords.Lat,
		Longitude: coords.Lon,
	})
	if err != nil {
		s.log.Warnw("failed to save location", "coords", coords.String(), "err", err)
		return nil
	}
	if saved.Name != name || saved.Country != country {
		if updated, err := s.repo.UpdateDetails(ctx, saved.ID, name, country, region); err == nil {
			saved = updated
		}
	}
	return &saved
}

// coordsFromParams reads and validates :lat/:lon path parameters.
func coordsFromParams(c *fiber.Ctx) (location.Coordinates, error) {
	return location.ParsePath(c.Params("lat") + "/" + c.Params("lon"))
}

func redirectWithError(c *fiber.Ctx, msg string) error {
	return c.Redirect("/?err=" + url.QueryEscape(msg))
}

func redirectBack(c *fiber.Ctx, msg string) error {
	target := c.FormValue("redirect")
	if target == "" || target[0] != '/' {
		target = "/"
	}
	sep := "?"
	if strings.Contains(target, "?") {
		sep = "&"
	}
	return c.Redirect(target + sep + "msg=" + url.QueryEscape(msg))
}

// daysAhead counts whole days from today to target, never negative.
func daysAhead(target time.Time) int {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	n := int(target.Sub(today).Hours() / 24)
	if n < 0 {
		return 0
	}
	return n
}
