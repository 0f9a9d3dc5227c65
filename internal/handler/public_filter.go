package handler

import (
    "strings"

    "github.com/iliyamo/cinema-booking/internal/model"
)

// filterByTitle keeps the movies whose title equals title, ignoring case and
// surrounding whitespace.  An empty title keeps everything.
func filterByTitle(movies []model.MovieListing, title string) []model.MovieListing {
    title = strings.TrimSpace(title)
    if title == "" {
        return movies
    }
    out := make([]model.MovieListing, 0, len(movies))
    for _, m := range movies {
        if strings.EqualFold(m.Title, title) {
            out = append(out, m)
        }
    }
    return out
}
