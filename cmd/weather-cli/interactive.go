package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"weather-dashboard/internal/dates"
	"weather-dashboard/internal/location"
	"weather-dashboard/internal/settings"
	"weather-dashboard/internal/weatherapi"
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Start an interactive weather session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.runInteractive(cmd.Context())
	},
}

const interactiveHelp = `Commands:
  weather <location>    current weather and forecast
  current <location>    current weather only
  forecast <location>   multi-day forecast
  search <query>        list matching locations
  ask <question>        e.g. "Weather for Paris this weekend?"
  locations             list saved locations
  settings              show settings
  unit <C|F>            set temperature unit
  days <1-7>            set forecast days
  help                  show this help
  quit                  exit`

func (a *app) runInteractive(ctx context.Context) error {
	fmt.Println("Weather dashboard interactive mode. Type 'help' for commands.")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			fmt.Println()
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		command, rest, _ := strings.Cut(line, " ")
		rest = strings.TrimSpace(rest)

		switch strings.ToLower(command) {
		case "quit", "exit", "q":
			return nil
		case "help":
			fmt.Println(interactiveHelp)
		case "weather":
			a.interactiveLookup(ctx, rest, true)
		case "current":
			a.interactiveLookup(ctx, rest, false)
		case "forecast":
			a.interactiveForecast(ctx, rest)
		case "search":
			if rest == "" {
				a.render.Error("Usage: search <query>")
				continue
			}
			results, err := a.client.Search(ctx, location.Normalize(rest))
			if err != nil {
				a.render.Error("Could not search for locations.")
				continue
			}
			a.render.SearchResults(results)
		case "ask":
			a.interactiveAsk(ctx, rest)
		case "locations":
			locs, err := a.repo.List(ctx, 50)
			if err != nil {
				a.render.Error("Could not list saved locations.")
				continue
			}
			a.render.SavedLocations(locs)
		case "settings":
			a.render.Settings(a.loadSettings())
		case "unit":
			prefs := a.loadSettings()
			prefs.TemperatureUnit = settings.NormalizeUnit(rest)
			if err := a.prefs.Save(prefs); err != nil {
				a.render.Error("Could not save settings.")
				continue
			}
			fmt.Printf("Temperature unit set to %s\n", prefs.TemperatureUnit)
		case "days":
			var n int
			if _, err := fmt.Sscanf(rest, "%d", &n); err != nil || n < 1 || n > 7 {
				a.render.Error("Forecast days must be a number between 1 and 7.")
				continue
			}
			prefs := a.loadSettings()
			prefs.ForecastDays = n
			if err := a.prefs.Save(prefs); err != nil {
				a.render.Error("Could not save settings.")
				continue
			}
			fmt.Printf("Forecast days set to %d\n", n)
		default:
			// Bare input is treated as a weather lookup.
			a.interactiveLookup(ctx, line, true)
		}
	}
}

func (a *app) interactiveLookup(ctx context.Context, input string, withForecast bool) {
	if input == "" {
		a.render.Error("Usage: weather <location>")
		return
	}
	if err := a.showWeather(ctx, input, withForecast); err != nil {
		a.render.Error(err.Error())
	}
}

func (a *app) interactiveForecast(ctx context.Context, input string) {
	if input == "" {
		a.render.Error("Usage: forecast <location>")
		return
	}
	query, err := a.resolvePlace(ctx, input)
	if err != nil {
		a.render.Error(err.Error())
		return
	}
	prefs := a.loadSettings()
	data, err := a.client.Forecast(ctx, query, prefs.ForecastDays)
	if err != nil {
		a.render.Error("Could not retrieve forecast data.")
		return
	}
	a.render.Forecast(data, prefs.TemperatureUnit)
}

// interactiveAsk answers natural-language questions like "Weather for
// Paris this weekend?".
func (a *app) interactiveAsk(ctx context.Context, question string) {
	if question == "" {
		a.render.Error("Usage: ask <question>")
		return
	}

	place, datePhrase := location.ParseNLQuery(question)
	if place == "" {
		a.render.Error("Could not find a place in that question.")
		return
	}

	wantedDates := dates.RangeForQuery(datePhrase, time.Now())
	if datePhrase != "" && len(wantedDates) == 0 {
		a.render.Error(fmt.Sprintf("Did not understand the date %q.", datePhrase))
		return
	}

	query, err := a.resolvePlace(ctx, place)
	if err != nil {
		a.render.Error(err.Error())
		return
	}

	prefs := a.loadSettings()
	days := prefs.ForecastDays
	if len(wantedDates) > 0 {
		last := wantedDates[len(wantedDates)-1]
		days = settings.ClampForecastDays(daysUntil(last) + 1)
	}

	data, err := a.client.Forecast(ctx, query, days)
	if err != nil {
		a.render.Error("Could not retrieve forecast data.")
		return
	}

	if len(wantedDates) > 0 {
		keep := make(map[string]bool, len(wantedDates))
		for _, d := range wantedDates {
			keep[d.Format("2006-01-02")] = true
		}
		var filtered []weatherapi.ForecastDay
		for _, day := range data.Forecast.ForecastDays {
			if keep[day.Date] {
				filtered = append(filtered, day)
			}
		}
		if len(filtered) == 0 {
			a.render.Error("No forecast available for the requested dates.")
			return
		}
		data.Forecast.ForecastDays = filtered
	}

	a.render.Forecast(data, prefs.TemperatureUnit)
}

// daysUntil counts whole days from today to target, never negative.
func daysUntil(target time.Time) int {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	n := int(target.Sub(today).Hours() / 24)
	if n < 0 {
		return 0
	}
	return n
}
