package handler // handler package contains owner-specific movie handlers

import (
    "net/http" // http defines status codes
    "strings"  // strings helps with trimming whitespace

    "github.com/labstack/echo/v4" // echo provides the web context and JSON helpers
)

type createMovieReq struct {
    Title     string   `json:"title"`
    Duration  int      `json:"duration"`
    Showtimes []string `json:"showtimes"`
}

type showtimeReq struct {
    Time string `json:"time"`
}

// CreateMovie handles POST /v1/movies and adds a movie to the catalogue.
// Duration and showtimes are validated by the booking core; a bad value
// rejects the whole movie.
func (h *OwnerHandler) CreateMovie(c echo.Context) error {
    var body createMovieReq
    if err := c.Bind(&body); err != nil { // bind incoming JSON
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    title := strings.TrimSpace(body.Title)
    if title == "" { // titles may repeat but may not be blank
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "title is required"})
    }
    movie, err := h.Svc.CreateMovie(title, body.Duration, body.Showtimes)
    if err != nil {
        return respondError(c, err)
    }
    return c.JSON(http.StatusCreated, movie)
}

// AddShowtime handles POST /v1/movies/:id/showtimes.
func (h *OwnerHandler) AddShowtime(c echo.Context) error {
    id, ok := pathID(c)
    if !ok {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid movie id"})
    }
    var body showtimeReq
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    movie, err := h.Svc.AddShowtime(id, strings.TrimSpace(body.Time))
    if err != nil { // duplicate and invalid times leave the movie unchanged
        return respondError(c, err)
    }
    return c.JSON(http.StatusOK, movie)
}

// RemoveShowtime handles DELETE /v1/movies/:id/showtimes/:time.
func (h *OwnerHandler) RemoveShowtime(c echo.Context) error {
    id, ok := pathID(c)
    if !ok {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid movie id"})
    }
    movie, err := h.Svc.RemoveShowtime(id, c.Param("time")) // echo has already decoded the segment
    if err != nil {
        return respondError(c, err)
    }
    return c.JSON(http.StatusOK, movie)
}
