package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"weather-dashboard/internal/location"
	"weather-dashboard/internal/settings"
	"weather-dashboard/internal/store"
)

// version is overridden at build time with -ldflags.
var version = "dev"

var addFavorite bool

func init() {
	addLocationCmd.Flags().BoolVar(&addFavorite, "favorite", false, "mark the location as a favorite")

	rootCmd.AddCommand(
		weatherCmd,
		currentCmd,
		forecastCmd,
		searchCmd,
		addLocationCmd,
		refreshLocationCmd,
		settingsCmd,
		setUnitCmd,
		setForecastDaysCmd,
		initDBCmd,
		diagnosticsCmd,
		interactiveCmd,
		versionCmd,
	)
}

var weatherCmd = &cobra.Command{
	Use:   "weather <location>",
	Short: "Show current weather and forecast for a location",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.showWeather(cmd.Context(), strings.Join(args, " "), true)
	},
}

var currentCmd = &cobra.Command{
	Use:   "current <location>",
	Short: "Show current weather only",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.showWeather(cmd.Context(), strings.Join(args, " "), false)
	},
}

var forecastCmd = &cobra.Command{
	Use:   "forecast [location]",
	Short: "Show the multi-day forecast",
	Long:  "Shows the forecast for the given location, or for the saved default location when omitted.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		prefs := cli.loadSettings()

		var query string
		if len(args) > 0 {
			q, err := cli.resolvePlace(ctx, strings.Join(args, " "))
			if err != nil {
				return err
			}
			query = q
		} else {
			if prefs.DefaultLocationID == 0 {
				return fmt.Errorf("no location given and no default location saved (use add-location first)")
			}
			loc, err := cli.repo.GetByID(ctx, prefs.DefaultLocationID)
			if err != nil {
				return fmt.Errorf("default location: %w", err)
			}
			query = location.Coordinates{Lat: loc.Latitude, Lon: loc.Longitude}.String()
		}

		data, err := cli.client.Forecast(ctx, query, prefs.ForecastDays)
		if err != nil {
			cli.render.Error("Could not retrieve forecast data.")
			return err
		}
		cli.rememberLocation(ctx, data.Location.Lat, data.Location.Lon, data.Location.Name, data.Location.Country, data.Location.Region)
		cli.render.Forecast(data, prefs.TemperatureUnit)
		return nil
	},
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search for matching locations",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		results, err := cli.client.Search(cmd.Context(), location.Normalize(strings.Join(args, " ")))
		if err != nil {
			cli.render.Error("Could not search for locations.")
			return err
		}
		cli.render.SearchResults(results)
		return nil
	},
}

var addLocationCmd = &cobra.Command{
	Use:   "add-location <query>",
	Short: "Save a location for later lookups",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		query := location.Normalize(strings.Join(args, " "))

		results, err := cli.client.Search(ctx, query)
		if err != nil {
			cli.render.Error("Could not search for locations.")
			return err
		}
		if len(results) == 0 {
			return fmt.Errorf("no cities found matching %q", strings.Join(args, " "))
		}
		top := results[0]

		saved, err := cli.repo.FindOrCreate(ctx, store.SavedLocation{
			Name:      top.Name,
			Region:    top.Region,
			Country:   top.Country,
			Latitude:  top.Lat,
			Longitude: top.Lon,
		})
		if err != nil {
			return fmt.Errorf("save location: %w", err)
		}
		if addFavorite && !saved.IsFavorite {
			if _, err := cli.repo.ToggleFavorite(ctx, saved.ID); err != nil {
				return fmt.Errorf("mark favorite: %w", err)
			}
			saved.IsFavorite = true
		}

		fmt.Printf("Saved location #%d: %s, %s\n", saved.ID, saved.Name, saved.Country)
		return nil
	},
}

var refreshLocationCmd = &cobra.Command{
	Use:   "refresh-location <id>",
	Short: "Refresh a saved location's details from the API",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid location id %q", args[0])
		}

		loc, err := cli.repo.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("location #%d: %w", id, err)
		}

		coords := location.Coordinates{Lat: loc.Latitude, Lon: loc.Longitude}
		data, err := cli.client.Current(ctx, coords.String())
		if err != nil {
			cli.render.Error("Could not retrieve location details.")
			return err
		}

		updated, err := cli.repo.UpdateDetails(ctx, id, data.Location.Name, data.Location.Country, data.Location.Region)
		if err != nil {
			return fmt.Errorf("update location: %w", err)
		}
		fmt.Printf("Refreshed location #%d: %s, %s\n", updated.ID, updated.Name, updated.Country)
		return nil
	},
}

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show current settings and saved locations",
	RunE: func(cmd *cobra.Command, args []string) error {
		cli.render.Settings(cli.loadSettings())

		locs, err := cli.repo.List(cmd.Context(), 50)
		if err != nil {
			return err
		}
		cli.render.SavedLocations(locs)
		return nil
	},
}

var setUnitCmd = &cobra.Command{
	Use:   "set-unit <C|F>",
	Short: "Set the temperature unit",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		prefs := cli.loadSettings()
		prefs.TemperatureUnit = settings.NormalizeUnit(args[0])
		if err := cli.prefs.Save(prefs); err != nil {
			return err
		}
		fmt.Printf("Temperature unit set to %s\n", prefs.TemperatureUnit)
		return nil
	},
}

var setForecastDaysCmd = &cobra.Command{
	Use:   "set-forecast-days <1-7>",
	Short: "Set how many forecast days to show",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 || n > 7 {
			return fmt.Errorf("forecast days must be a number between 1 and 7")
		}
		prefs := cli.loadSettings()
		prefs.ForecastDays = n
		if err := cli.prefs.Save(prefs); err != nil {
			return err
		}
		fmt.Printf("Forecast days set to %d\n", n)
		return nil
	},
}

var initDBCmd = &cobra.Command{
	Use:   "init-db",
	Short: "Create the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cli.cfg.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is not set")
		}
		pg, ok := cli.repo.(*store.PostgresRepository)
		if !ok {
			return fmt.Errorf("database repository is not active")
		}
		if err := pg.InitSchema(cmd.Context()); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
		fmt.Println("Database schema created.")
		return nil
	},
}

var diagnosticsCmd = &cobra.Command{
	Use:   "diagnostics",
	Short: "Check configuration and connectivity",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		fmt.Println("Configuration:")
		if cli.cfg.WeatherAPIKey != "" {
			fmt.Println("  API key:       set")
		} else {
			fmt.Println("  API key:       MISSING (set WEATHER_API_KEY)")
		}
		fmt.Printf("  API base URL:  %s\n", cli.cfg.WeatherAPIBaseURL)
		fmt.Printf("  Settings path: %s\n", cli.cfg.SettingsPath)
		if cli.cfg.DatabaseURL != "" {
			fmt.Println("  Storage:       postgres")
		} else {
			fmt.Println("  Storage:       in-memory")
		}

		fmt.Println("\nConnectivity:")
		if _, err := cli.client.Search(ctx, "London"); err != nil {
			fmt.Printf("  WeatherAPI:    FAILED (%v)\n", err)
		} else {
			fmt.Println("  WeatherAPI:    ok")
		}

		count, err := cli.repo.Count(ctx)
		if err != nil {
			fmt.Printf("  Storage:       FAILED (%v)\n", err)
		} else {
			fmt.Printf("  Storage:       ok (%d saved locations)\n", count)
		}
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("weather-cli %s\n", version)
	},
}

// showWeather resolves the place, prints the current observation and,
// when withForecast is set, the forecast for the preferred day count.
func (a *app) showWeather(ctx context.Context, input string, withForecast bool) error {
	query, err := a.resolvePlace(ctx, input)
	if err != nil {
		return err
	}
	prefs := a.loadSettings()

	days := 1
	if withForecast {
		days = prefs.ForecastDays
	}
	data, err := a.client.Forecast(ctx, query, days)
	if err != nil {
		a.render.Error("Could not retrieve weather data.")
		return err
	}

	a.rememberLocation(ctx, data.Location.Lat, data.Location.Lon, data.Location.Name, data.Location.Country, data.Location.Region)
	a.render.CurrentWeather(data, prefs.TemperatureUnit)
	if withForecast {
		a.render.Forecast(data, prefs.TemperatureUnit)
	}
	return nil
}

// resolvePlace turns user input into a WeatherAPI query. A "lat,lon"
// pair passes through directly; anything else goes through expansion
// and the search endpoint, taking the first match.
func (a *app) resolvePlace(ctx context.Context, input string) (string, error) {
	if coords, err := location.ParsePair(input); err == nil {
		return coords.String(), nil
	}

	results, err := a.client.Search(ctx, location.Normalize(input))
	if err != nil {
		a.render.Error("Could not search for locations.")
		return "", err
	}
	if len(results) == 0 {
		return "", fmt.Errorf("no cities found matching %q", input)
	}
	if len(results) > 1 {
		a.render.SearchResults(results)
		fmt.Printf("Using first match: %s, %s\n", results[0].Name, results[0].Country)
	}
	top := results[0]
	return location.Coordinates{Lat: top.Lat, Lon: top.Lon}.String(), nil
}

// rememberLocation saves the looked-up place. Failures are logged and
// swallowed; the lookup still succeeds.
func (a *app) rememberLocation(ctx context.Context, lat, lon float64, name, country, region string) {
	if _, err := a.repo.FindOrCreate(ctx, store.SavedLocation{
		Name:      name,
		Region:    region,
		Country:   country,
		Latitude:  lat,
		Longitude: lon,
	}); err != nil {
		a.log.Warnw("failed to save location", "name", name, "err", err)
	}
}
