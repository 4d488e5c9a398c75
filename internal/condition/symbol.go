// Package condition maps free-text weather condition descriptions to
// display symbols.
package condition

import "strings"

// DefaultSymbol is returned when no keyword matches.
const DefaultSymbol = "🌈"

// symbolTable is scanned in order; the first keyword contained in the
// condition wins, so order is significant.
var symbolTable = []struct {
	keyword string
	symbol  string
}{
	{"sunny", "☀️"},
	{"cloud", "☁️"},
	{"rain", "🌧️"},
	{"drizzle", "🌧️"},
	{"thunder", "⛈️"},
	{"snow", "❄️"},
	{"fog", "🌫️"},
	{"mist", "🌫️"},
	{"clear", "🌕"},
	{"wind", "🌬️"},
}

// Symbol returns the display symbol for a condition description, e.g.
// "Patchy rain possible" yields the rain symbol. Matching is
// case-insensitive substring matching against a fixed keyword table.
func Symbol(condition string) string {
	condition = strings.ToLower(condition)
	for _, entry := range symbolTable {
		if strings.Contains(condition, entry.keyword) {
			return entry.symbol
		}
	}
	return DefaultSymbol
}
