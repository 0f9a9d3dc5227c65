// Package handler exposes HTTP handlers for both authenticated and public endpoints.
// This file defines the public catalogue routes.  They need no token and
// are served through the response cache.

package handler

import (
    "net/http"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/cinema-booking/internal/service"
)

// PublicHandler serves unauthenticated catalogue reads.
type PublicHandler struct {
    Svc *service.BookingService
}

func NewPublicHandler(svc *service.BookingService) *PublicHandler {
    return &PublicHandler{Svc: svc}
}

// ListMovies handles GET /v1/movies.  Movies are listed in the order they
// were added; ?title= narrows the list to an exact (case-insensitive) title.
func (h *PublicHandler) ListMovies(c echo.Context) error {
    items := filterByTitle(h.Svc.ListMovies(), c.QueryParam("title"))
    return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// GetMovie handles GET /v1/movies/:id.  ?format=text returns the three-line
// plain text rendering instead of JSON.
func (h *PublicHandler) GetMovie(c echo.Context) error {
    id, ok := pathID(c)
    if !ok {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid movie id"})
    }
    movie, err := h.Svc.GetMovie(id)
    if err != nil {
        return respondError(c, err)
    }
    if c.QueryParam("format") == "text" {
        return c.String(http.StatusOK, movie.MovieDetails.String())
    }
    return c.JSON(http.StatusOK, movie)
}
