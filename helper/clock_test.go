package helper

import (
	"errors"
	"testing"
)

func TestParseClock(t *testing.T) {
	ok := map[string]int{"00:00": 0, "09:05": 545, "13:00": 780, "23:59": 1439, "24:00": 1440}
	for in, want := range ok {
		got, err := ParseClock(in)
		if err != nil {
			t.Fatalf("ParseClock(%q) unexpected error: %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseClock(%q) = %d, want %d", in, got, want)
		}
	}
	for _, in := range []string{"", "9:00", "09:60", "25:00", "24:01", "ab:cd", "09-00", "09:000"} {
		if _, err := ParseClock(in); !errors.Is(err, ErrInvalidTimeFormat) {
			t.Fatalf("ParseClock(%q) expected ErrInvalidTimeFormat, got %v", in, err)
		}
	}
}

func TestParseRangeRejectsEmptyAndInverted(t *testing.T) {
	if _, _, err := ParseRange("10:00", "10:00"); !errors.Is(err, ErrInvalidTimeRange) {
		t.Fatalf("equal bounds expected ErrInvalidTimeRange, got %v", err)
	}
	_, _, err := ParseRange("12:00", "10:00")
	if !errors.Is(err, ErrInvalidTimeRange) || !errors.Is(err, ErrInvalidTimeFormat) {
		t.Fatalf("inverted range should be a time format error too, got %v", err)
	}
	s, e, err := ParseRange("10:00", "11:30")
	if err != nil || s != 600 || e != 690 {
		t.Fatalf("ParseRange = %d,%d,%v", s, e, err)
	}
}

func TestFormatClock12h(t *testing.T) {
	cases := map[string]string{
		"00:00": "12:00 AM",
		"09:00": "9:00 AM",
		"12:00": "12:00 PM",
		"13:05": "1:05 PM",
		"22:00": "10:00 PM",
		"bogus": "bogus",
	}
	for in, want := range cases {
		if got := FormatClock12h(in); got != want {
			t.Fatalf("FormatClock12h(%q) = %q, want %q", in, got, want)
		}
	}
	if got := FormatRange12h("10:00", "11:00"); got != "10:00 AM - 11:00 AM" {
		t.Fatalf("unexpected range label %q", got)
	}
	if got := FormatRange12h("", ""); got != "" {
		t.Fatalf("empty range should render empty, got %q", got)
	}
}
