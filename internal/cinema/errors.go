package cinema

import "errors"

// Hard failures. Constructors never return a partially built value
// alongside them.
var (
	ErrInvalidDuration = errors.New("invalid duration: must be a positive number of minutes")
	ErrInvalidShowtime = errors.New("invalid showtime: must be HH:MM between 08:00 and 20:00")
)

// Notices. The operation that returned one left every collection untouched.
var (
	ErrDuplicateShowtime = errors.New("movie already runs at this time")
	ErrShowtimeNotFound  = errors.New("no showtime at this time")
	ErrNoScreening       = errors.New("no movie at this time")
)

// IsNotice reports whether err only signals a no-op rather than a failure.
func IsNotice(err error) bool {
	return errors.Is(err, ErrDuplicateShowtime) ||
		errors.Is(err, ErrShowtimeNotFound) ||
		errors.Is(err, ErrNoScreening)
}
