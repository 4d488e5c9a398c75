// Package location normalizes free-form location input: country
// abbreviation expansion, coordinate parsing and validation, and
// splitting natural-language weather questions into a place and a date
// phrase.
package location

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"weather-dashboard/internal/dates"
)

var validate = validator.New()

// abbreviations expands trailing country shorthand; order only matters
// for documentation, each entry is tried against the trailing token.
var abbreviations = map[string]string{
	"UK":   "United Kingdom",
	"U.S.": "United States",
	"USA":  "United States",
	"UAE":  "United Arab Emirates",
}

// Coordinates is a validated latitude/longitude pair.
type Coordinates struct {
	Lat float64 `validate:"gte=-90,lte=90"`
	Lon float64 `validate:"gte=-180,lte=180"`
}

// String renders the "lat,lon" form the weather API accepts as q.
func (c Coordinates) String() string {
	return fmt.Sprintf("%g,%g", c.Lat, c.Lon)
}

// Normalize expands known country abbreviations at the end of the
// input ("London, UK" becomes "London, United Kingdom") and passes
// everything else through trimmed.
func Normalize(input string) string {
	trimmed := strings.TrimSpace(input)
	upper := strings.ToUpper(trimmed)
	for abbr, full := range abbreviations {
		if upper == abbr {
			return full
		}
		if strings.HasSuffix(upper, abbr) {
			cut := len(trimmed) - len(abbr)
			// The abbreviation must be its own trailing token, so
			// "Ragusa" does not expand.
			if prev := trimmed[cut-1]; prev != ' ' && prev != ',' {
				continue
			}
			head := strings.TrimSpace(trimmed[:cut])
			head = strings.TrimSuffix(head, ",")
			if head == "" {
				return full
			}
			return head + ", " + full
		}
	}
	return trimmed
}

// ParsePath parses the "lat/lon" form used in URL paths.
func ParsePath(coordinates string) (Coordinates, error) {
	return parsePair(coordinates, "/")
}

// ParsePair parses the "lat,lon" form used in query strings.
func ParsePair(coordinates string) (Coordinates, error) {
	return parsePair(coordinates, ",")
}

func parsePair(s, sep string) (Coordinates, error) {
	parts := strings.Split(strings.TrimSpace(s), sep)
	if len(parts) != 2 {
		return Coordinates{}, errors.New("invalid coordinates format")
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return Coordinates{}, fmt.Errorf("invalid latitude %q", parts[0])
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return Coordinates{}, fmt.Errorf("invalid longitude %q", parts[1])
	}

	coords := Coordinates{Lat: lat, Lon: lon}
	if err := validate.Struct(coords); err != nil {
		return Coordinates{}, fmt.Errorf("coordinates out of range: %s", coords)
	}
	return coords, nil
}

// queryPrefixes are leading filler in natural-language questions.
var queryPrefixes = []string{
	"what's the weather like in",
	"what is the weather in",
	"weather for",
	"weather in",
	"how's",
	"how is",
}

// ParseNLQuery splits a question like "Weather for Paris this weekend?"
// into the place ("Paris") and the date phrase ("this weekend"). The
// date phrase is empty when the question names no date.
func ParseNLQuery(query string) (place, datePhrase string) {
	q := strings.TrimSpace(strings.TrimRight(strings.TrimSpace(query), "?!."))
	lower := strings.ToLower(q)

	for _, prefix := range queryPrefixes {
		if strings.HasPrefix(lower, prefix) {
			q = strings.TrimSpace(q[len(prefix):])
			lower = strings.ToLower(q)
			break
		}
	}

	if phrase, ok := dates.ContainsDatePhrase(lower); ok {
		datePhrase = phrase
		if idx := strings.Index(lower, phrase); idx >= 0 {
			q = strings.TrimSpace(q[:idx])
		}
	}

	return strings.TrimSpace(strings.TrimSuffix(q, ",")), datePhrase
}
