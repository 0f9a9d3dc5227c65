package cinema

import "time"

// Opening window of the cinema, in minutes since midnight (both inclusive).
const (
	OpensAt  = 8 * 60
	ClosesAt = 20 * 60
)

// Hour and minute each take one or two digits.
const showtimeLayout = "15:4"

// ValidateTime reports whether t is a 24-hour HH:MM time that falls inside
// the opening window. Neither the hour nor the minute needs a leading zero.
func ValidateTime(t string) bool {
	parsed, err := time.Parse(showtimeLayout, t)
	if err != nil {
		return false
	}
	minutes := parsed.Hour()*60 + parsed.Minute()
	return minutes >= OpensAt && minutes <= ClosesAt
}

// ValidateDuration reports whether d is a usable running time in minutes.
func ValidateDuration(d int) bool {
	return d > 0
}
