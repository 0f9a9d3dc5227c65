package cinema

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/iliyamo/cinema-booking/internal/model"
)

// Movie is a title with a running time and the list of times it is screened.
// Every showtime held by a Movie passes ValidateTime.
type Movie struct {
	title     string
	duration  int
	showtimes []string
	log       logrus.FieldLogger
}

// NewMovie validates duration and every showtime before building the movie.
// Showtimes keep the caller's order; duplicates in the input are kept as given.
func NewMovie(title string, duration int, showtimes []string, opts ...Option) (*Movie, error) {
	if !ValidateDuration(duration) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDuration, duration)
	}
	for _, t := range showtimes {
		if !ValidateTime(t) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidShowtime, t)
		}
	}
	o := buildOptions(opts)
	st := make([]string, len(showtimes))
	copy(st, showtimes)
	return &Movie{
		title:     title,
		duration:  duration,
		showtimes: st,
		log:       o.logger.WithField("movie", title),
	}, nil
}

func (m *Movie) Title() string { return m.title }

func (m *Movie) Duration() int { return m.duration }

// Showtimes returns a copy of the screening times in insertion order.
func (m *Movie) Showtimes() []string {
	out := make([]string, len(m.showtimes))
	copy(out, m.showtimes)
	return out
}

// HasShowtime reports whether t is screened. The comparison is literal, so
// "9:00" and "09:00" are different showtimes.
func (m *Movie) HasShowtime(t string) bool {
	return m.indexOf(t) >= 0
}

// AddShowtime appends t to the screening list. An invalid time or one that is
// already screened leaves the list unchanged; the latter is logged as well.
func (m *Movie) AddShowtime(t string) error {
	if !ValidateTime(t) {
		return fmt.Errorf("%w: %q", ErrInvalidShowtime, t)
	}
	if m.HasShowtime(t) {
		m.log.WithField("time", t).Warn(ErrDuplicateShowtime.Error())
		return fmt.Errorf("%w: %s", ErrDuplicateShowtime, t)
	}
	m.showtimes = append(m.showtimes, t)
	return nil
}

// RemoveShowtime drops the first occurrence of t.
func (m *Movie) RemoveShowtime(t string) error {
	i := m.indexOf(t)
	if i < 0 {
		m.log.WithField("time", t).Warn(ErrShowtimeNotFound.Error())
		return fmt.Errorf("%w: %s", ErrShowtimeNotFound, t)
	}
	m.showtimes = append(m.showtimes[:i], m.showtimes[i+1:]...)
	return nil
}

// Details returns a snapshot of the movie.
func (m *Movie) Details() model.MovieDetails {
	return model.MovieDetails{
		Title:     m.title,
		Duration:  m.duration,
		Showtimes: m.Showtimes(),
	}
}

func (m *Movie) indexOf(t string) int {
	for i, s := range m.showtimes {
		if s == t {
			return i
		}
	}
	return -1
}
