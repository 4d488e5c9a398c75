// Package dates resolves natural-language date phrases to calendar
// dates relative to an explicitly supplied "today".
package dates

import (
	"strings"
	"time"
)

// weekdays maps lower-case weekday names to time.Weekday.
var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

// RangeForQuery maps a phrase to concrete dates relative to today.
// Supported phrases: "today", "tomorrow", "this weekend" (the upcoming
// Saturday and Sunday), and a weekday name optionally prefixed with
// "next" or "this", resolving to the next occurrence strictly after
// today. Unrecognized phrases yield an empty slice.
func RangeForQuery(query string, today time.Time) []time.Time {
	q := strings.ToLower(strings.TrimSpace(query))
	today = truncateToDay(today)

	switch q {
	case "today":
		return []time.Time{today}
	case "tomorrow":
		return []time.Time{today.AddDate(0, 0, 1)}
	case "this weekend", "weekend":
		saturday := nextWeekday(today, time.Saturday)
		return []time.Time{saturday, saturday.AddDate(0, 0, 1)}
	}

	name := q
	for _, prefix := range []string{"next ", "this "} {
		if strings.HasPrefix(name, prefix) {
			name = strings.TrimPrefix(name, prefix)
			break
		}
	}
	if wd, ok := weekdays[name]; ok {
		return []time.Time{nextWeekday(today, wd)}
	}

	return nil
}

// ContainsDatePhrase reports whether the text mentions any phrase
// RangeForQuery understands, returning the phrase found.
func ContainsDatePhrase(text string) (string, bool) {
	lower := strings.ToLower(text)
	for _, phrase := range []string{"this weekend", "weekend", "today", "tomorrow"} {
		if strings.Contains(lower, phrase) {
			return phrase, true
		}
	}
	for name := range weekdays {
		if idx := strings.Index(lower, name); idx >= 0 {
			// Keep a "next"/"this" qualifier attached when present.
			for _, prefix := range []string{"next ", "this "} {
				if strings.HasSuffix(lower[:idx], prefix) {
					return prefix + name, true
				}
			}
			return name, true
		}
	}
	return "", false
}

// nextWeekday returns the next occurrence of wd strictly after today:
// if today already is wd, the result rolls a full week forward.
func nextWeekday(today time.Time, wd time.Weekday) time.Time {
	days := (int(wd) - int(today.Weekday()) + 7) % 7
	if days == 0 {
		days = 7
	}
	return today.AddDate(0, 0, days)
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
