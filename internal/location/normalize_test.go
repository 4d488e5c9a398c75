package location

import "testing"

func TestNormalizeKnownAbbreviations(t *testing.T) {
	cases := map[string]string{
		"UK":         "United Kingdom",
		"USA":        "United States",
		"UAE":        "United Arab Emirates",
		"London, UK": "London, United Kingdom",
		"London UK":  "London, United Kingdom",
	}
	for input, want := range cases {
		if got := Normalize(input); got != want {
			t.Errorf("Normalize(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestNormalizePassThrough(t *testing.T) {
	for _, input := range []string{"Germany", "XYZ", "Paris"} {
		if got := Normalize(input); got != input {
			t.Errorf("Normalize(%q) = %q, want unchanged", input, got)
		}
	}
	if got := Normalize("  Berlin  "); got != "Berlin" {
		t.Errorf("Normalize should trim whitespace, got %q", got)
	}
}

func TestParsePathValid(t *testing.T) {
	coords, err := ParsePath("40.7128/-74.0060")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if coords.Lat != 40.7128 || coords.Lon != -74.0060 {
		t.Errorf("got %+v, want lat 40.7128 lon -74.0060", coords)
	}

	coords, err = ParsePath("-33.8688/151.2093")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if coords.Lat != -33.8688 || coords.Lon != 151.2093 {
		t.Errorf("got %+v, want lat -33.8688 lon 151.2093", coords)
	}
}

func TestParsePathInvalid(t *testing.T) {
	for _, input := range []string{
		"invalid/coords",
		"40.7128", // missing longitude
		"40.7128/",
		"91.0/10.0",   // latitude out of range
		"45.0/-181.0", // longitude out of range
	} {
		if _, err := ParsePath(input); err == nil {
			t.Errorf("ParsePath(%q) succeeded, want error", input)
		}
	}
}

func TestParsePairQueryForm(t *testing.T) {
	coords, err := ParsePair("51.5072,-0.1276")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if coords.Lat != 51.5072 || coords.Lon != -0.1276 {
		t.Errorf("got %+v", coords)
	}
	if s := coords.String(); s != "51.5072,-0.1276" {
		t.Errorf("String() = %q", s)
	}
}

func TestParseNLQuery(t *testing.T) {
	cases := []struct {
		query  string
		place  string
		phrase string
	}{
		{"Weather for Paris this weekend?", "Paris", "this weekend"},
		{"How's Tokyo next Monday?", "Tokyo", "next monday"},
		{"weather in New York tomorrow", "New York", "tomorrow"},
		{"Berlin", "Berlin", ""},
	}
	for _, tc := range cases {
		place, phrase := ParseNLQuery(tc.query)
		if place != tc.place || phrase != tc.phrase {
			t.Errorf("ParseNLQuery(%q) = (%q, %q), want (%q, %q)",
				tc.query, place, phrase, tc.place, tc.phrase)
		}
	}
}
