package helper

import (
	"errors"
	"fmt"

	"venue_booking/database"
)

var (
	ErrInvalidDate       = errors.New("invalid date")
	ErrInvalidTimeFormat = errors.New("invalid time format")
	ErrInvalidTimeRange  = fmt.Errorf("%w: end must be after start", ErrInvalidTimeFormat)
	ErrStoreUnavailable  = errors.New("order store unavailable")
	ErrSlotConflict      = errors.New("requested range conflicts with an existing booking")
	ErrRangeInPast       = errors.New("requested range has already started")
	ErrHoldNotFound      = database.ErrHoldNotFound
)

// IsInvalidInput reports whether err was caused by malformed client input.
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidDate) || errors.Is(err, ErrInvalidTimeFormat) ||
		errors.Is(err, ErrRangeInPast)
}
