package constants

const (
	ROLE_ADMIN = "admin"
)

const (
	ERROR_INTERNAL_ERROR     = "Internal server error"
	ERROR_INVALID_INPUT      = "Invalid input"
	ERROR_INVALID_DATE       = "Invalid date, expected YYYY-MM-DD"
	ERROR_INVALID_TIME       = "Invalid time, expected HH:mm"
	ERROR_INVALID_TIME_RANGE = "End time must be after start time"
	ERROR_STORE_UNAVAILABLE  = "Unable to verify availability right now, please try again"
	ERROR_HOLD_NOT_FOUND     = "Hold not found"
	ERROR_SLOT_TAKEN         = "The requested time range is no longer available"
	ERROR_RANGE_IN_PAST      = "The requested time range has already started"
	ERROR_UNAUTHORIZED       = "Missing token"
	ERROR_INVALID_TOKEN      = "Invalid token"
	ERROR_NOT_ADMIN          = "Admin access required"
)

// SLOT_CONFLICT_MESSAGE takes the buffer length, e.g. "2-hour".
const SLOT_CONFLICT_MESSAGE = "This time slot is already booked (including the %s post-event buffer). Please choose another time."
