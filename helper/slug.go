package helper

import (
	"strings"

	"github.com/gosimple/slug"
)

// MatchesRoom applies the room predicate used by the conflict check: a
// case-sensitive substring match of the requested room name, with a trailing
// " Booking" suffix ignored.
func MatchesRoom(facility, roomName string) bool {
	return strings.Contains(facility, strings.TrimSuffix(roomName, " Booking"))
}

// MatchesLocation compares a facility against the ?location= query loosely,
// by slug, so "grand-hall", "Grand Hall" and "GRAND HALL" all match.
func MatchesLocation(facility, location string) bool {
	if strings.TrimSpace(location) == "" {
		return true
	}
	want := slug.Make(strings.TrimSuffix(location, " Booking"))
	if want == "" {
		return true
	}
	return strings.Contains(slug.Make(facility), want)
}
