package dates

import (
	"testing"
	"time"
)

// 2025-05-23 is a Friday.
var friday = time.Date(2025, 5, 23, 0, 0, 0, 0, time.UTC)

func TestRangeForQueryTomorrow(t *testing.T) {
	got := RangeForQuery("tomorrow", friday)
	if len(got) != 1 {
		t.Fatalf("expected 1 date, got %d", len(got))
	}
	want := time.Date(2025, 5, 24, 0, 0, 0, 0, time.UTC)
	if !got[0].Equal(want) {
		t.Errorf("tomorrow = %v, want %v", got[0], want)
	}
}

func TestRangeForQueryThisWeekend(t *testing.T) {
	got := RangeForQuery("this weekend", friday)
	if len(got) != 2 {
		t.Fatalf("expected 2 dates, got %d", len(got))
	}
	saturday := time.Date(2025, 5, 24, 0, 0, 0, 0, time.UTC)
	sunday := time.Date(2025, 5, 25, 0, 0, 0, 0, time.UTC)
	if !got[0].Equal(saturday) || !got[1].Equal(sunday) {
		t.Errorf("this weekend = %v, want [%v %v]", got, saturday, sunday)
	}
}

func TestRangeForQueryWeekdayRollsForward(t *testing.T) {
	// Monday asked on a Friday is the following Monday, not this week's.
	got := RangeForQuery("monday", friday)
	if len(got) != 1 {
		t.Fatalf("expected 1 date, got %d", len(got))
	}
	want := time.Date(2025, 5, 26, 0, 0, 0, 0, time.UTC)
	if !got[0].Equal(want) {
		t.Errorf("monday = %v, want %v", got[0], want)
	}
}

func TestRangeForQuerySameWeekdayRollsAWeek(t *testing.T) {
	got := RangeForQuery("friday", friday)
	want := time.Date(2025, 5, 30, 0, 0, 0, 0, time.UTC)
	if len(got) != 1 || !got[0].Equal(want) {
		t.Errorf("friday on a Friday = %v, want [%v]", got, want)
	}
}

func TestRangeForQueryNextPrefix(t *testing.T) {
	plain := RangeForQuery("monday", friday)
	next := RangeForQuery("next monday", friday)
	if len(next) != 1 || !next[0].Equal(plain[0]) {
		t.Errorf("next monday = %v, want %v", next, plain)
	}
}

func TestRangeForQueryToday(t *testing.T) {
	got := RangeForQuery("today", friday)
	if len(got) != 1 || !got[0].Equal(friday) {
		t.Errorf("today = %v, want [%v]", got, friday)
	}
}

func TestRangeForQueryUnrecognized(t *testing.T) {
	if got := RangeForQuery("invalid query", friday); len(got) != 0 {
		t.Errorf("expected empty result, got %v", got)
	}
}

func TestContainsDatePhrase(t *testing.T) {
	cases := []struct {
		text   string
		phrase string
		ok     bool
	}{
		{"Weather for Paris this weekend?", "this weekend", true},
		{"How's Tokyo next Monday?", "next monday", true},
		{"weather in London tomorrow", "tomorrow", true},
		{"weather in Berlin", "", false},
	}
	for _, tc := range cases {
		phrase, ok := ContainsDatePhrase(tc.text)
		if ok != tc.ok || phrase != tc.phrase {
			t.Errorf("ContainsDatePhrase(%q) = (%q, %v), want (%q, %v)",
				tc.text, phrase, ok, tc.phrase, tc.ok)
		}
	}
}
