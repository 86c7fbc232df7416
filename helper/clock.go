package helper

import (
	"fmt"
	"time"

	"venue_booking/utils"
)

// ParseClock converts a 24h "HH:mm" string to minutes since midnight.
// "24:00" is accepted as the end of the day.
func ParseClock(s string) (int, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	h, okH := twoDigits(s[0:2])
	m, okM := twoDigits(s[3:5])
	if !okH || !okM || m > 59 || h > 24 || (h == 24 && m != 0) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	return h*60 + m, nil
}

func twoDigits(s string) (int, bool) {
	if s[0] < '0' || s[0] > '9' || s[1] < '0' || s[1] > '9' {
		return 0, false
	}
	return int(s[0]-'0')*10 + int(s[1]-'0'), true
}

// ParseRange parses a start/end pair and enforces start < end.
func ParseRange(start, end string) (int, int, error) {
	s, err := ParseClock(start)
	if err != nil {
		return 0, 0, err
	}
	e, err := ParseClock(end)
	if err != nil {
		return 0, 0, err
	}
	if s >= e {
		return 0, 0, fmt.Errorf("%w (%s-%s)", ErrInvalidTimeRange, start, end)
	}
	return s, e, nil
}

func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// FormatClock12h renders "HH:mm" as "h:mm AM/PM". Invalid input is returned as is.
func FormatClock12h(hhmm string) string {
	total, err := ParseClock(hhmm)
	if err != nil {
		return hhmm
	}
	h, m := (total/60)%24, total%60
	suffix := "AM"
	if h >= 12 {
		suffix = "PM"
	}
	h = h % 12
	if h == 0 {
		h = 12
	}
	return fmt.Sprintf("%d:%02d %s", h, m, suffix)
}

// FormatRange12h joins both ends with " - ". A range with neither end set
// renders empty.
func FormatRange12h(start, end string) string {
	if start == "" && end == "" {
		return ""
	}
	return FormatClock12h(start) + " - " + FormatClock12h(end)
}

func ParseDate(date string, loc *time.Location) (time.Time, error) {
	d, err := utils.ParseDate(date, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}
	return d, nil
}

// At returns the instant minutes after midnight of day, in day's location.
func At(day time.Time, minutes int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), 0, minutes, 0, 0, day.Location())
}
