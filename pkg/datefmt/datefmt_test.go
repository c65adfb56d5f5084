package datefmt

import (
	"testing"
	"time"
)

func TestFormat_DefaultPattern(t *testing.T) {
	tm := time.Date(2015, 2, 7, 12, 10, 0, 0, time.Local)

	got, err := Format(tm, Default)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "2015-02-07 12.10.00" {
		t.Fatalf("unexpected result: %q", got)
	}
}

func TestFormat_Tokens(t *testing.T) {
	tm := time.Date(2009, 8, 7, 15, 4, 5, 0, time.Local)

	testCases := []struct {
		pattern string
		want    string
	}{
		{pattern: "%Y", want: "2009"},
		{pattern: "%y", want: "09"},
		{pattern: "%m", want: "08"},
		{pattern: "%d", want: "07"},
		{pattern: "%H", want: "15"},
		{pattern: "%I", want: "03"},
		{pattern: "%M", want: "04"},
		{pattern: "%S", want: "05"},
		{pattern: "%p", want: "PM"},
		{pattern: "%j", want: "219"},
		{pattern: "100%%", want: "100%"},
		{pattern: "%Y%m%d_%H%M%S", want: "20090807_150405"},
	}

	for _, tc := range testCases {
		t.Run(tc.pattern, func(t *testing.T) {
			got, err := Format(tm, tc.pattern)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("unexpected result: got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestFormat_MidnightIsTwelveAM(t *testing.T) {
	tm := time.Date(2020, 1, 1, 0, 30, 0, 0, time.Local)

	got, err := Format(tm, "%I.%M %p")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "12.30 AM" {
		t.Fatalf("unexpected result: %q", got)
	}
}

func TestValidate(t *testing.T) {
	if err := Validate(Default); err != nil {
		t.Fatalf("default pattern must validate: %v", err)
	}
	if err := Validate("%Q"); err == nil {
		t.Fatalf("expected error for unsupported token")
	}
	if err := Validate("broken%"); err == nil {
		t.Fatalf("expected error for trailing %%")
	}
}

func TestParse_DefaultPattern(t *testing.T) {
	got, err := Parse(Default, "2015-02-07 12.10.00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := time.Date(2015, 2, 7, 12, 10, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Fatalf("unexpected time\n got: %v\nwant: %v", got, want)
	}
}

func TestParse_RoundTrip(t *testing.T) {
	// A lossless pattern must recover the original time to the second.
	tm := time.Date(2021, 12, 31, 23, 59, 58, 0, time.Local)

	formatted, err := Format(tm, Default)
	if err != nil {
		t.Fatalf("unexpected format error: %v", err)
	}

	parsed, err := Parse(Default, formatted)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}

	if !parsed.Equal(tm) {
		t.Fatalf("round trip lost information\n got: %v\nwant: %v", parsed, tm)
	}
}

func TestParse_TwoDigitYearPivot(t *testing.T) {
	old, err := Parse("%y", "99")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if old.Year() != 1999 {
		t.Fatalf("expected 1999, got %d", old.Year())
	}

	recent, err := Parse("%y", "05")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if recent.Year() != 2005 {
		t.Fatalf("expected 2005, got %d", recent.Year())
	}
}

func TestParse_TwelveHourClock(t *testing.T) {
	got, err := Parse("%I %p", "07 PM")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Hour() != 19 {
		t.Fatalf("expected hour 19, got %d", got.Hour())
	}

	midnight, err := Parse("%I %p", "12 AM")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if midnight.Hour() != 0 {
		t.Fatalf("expected hour 0, got %d", midnight.Hour())
	}
}

func TestParse_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		pattern string
		value   string
	}{
		{name: "literal mismatch", pattern: "%Y-%m", value: "2015:02"},
		{name: "value too short", pattern: "%Y-%m-%d", value: "2015-02"},
		{name: "trailing input", pattern: "%Y", value: "2015-extra"},
		{name: "non-digits", pattern: "%Y", value: "abcd"},
		{name: "bad meridiem", pattern: "%p", value: "XX"},
		{name: "unsupported token", pattern: "%Q", value: "zz"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse(tc.pattern, tc.value); err == nil {
				t.Fatalf("expected error for %q / %q", tc.pattern, tc.value)
			}
		})
	}
}
