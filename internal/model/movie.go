package model

import (
    "fmt"

    "github.com/google/uuid"
)

// MovieDetails is the structured view of a movie returned to callers
// that list or display the catalogue.
//
// Fields:
//  Title     – movie title (not unique).
//  Duration  – running time in minutes.
//  Showtimes – screening times in HH:MM, in insertion order.
type MovieDetails struct {
    Title     string   `json:"title"`
    Duration  int      `json:"duration"`
    Showtimes []string `json:"showtimes"`
}

// DurationParts splits the running time into whole hours and remaining minutes.
func (d MovieDetails) DurationParts() (hours, minutes int) {
    return d.Duration / 60, d.Duration % 60
}

// String renders the details on three lines the way the box office prints them.
func (d MovieDetails) String() string {
    h, m := d.DurationParts()
    return fmt.Sprintf("Title: %s\nDuration %dh %dm\nShowtimes: %v", d.Title, h, m, d.Showtimes)
}

// MovieListing is a catalogue entry: the movie details plus the identifier
// the service assigned when the movie was added.
type MovieListing struct {
    ID uuid.UUID `json:"id"`
    MovieDetails
}
