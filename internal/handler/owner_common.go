package handler // handler defines http handlers

import (
    "errors"   // errors.Is for sentinel matching
    "net/http" // status codes

    "github.com/google/uuid"
    "github.com/labstack/echo/v4"
    "github.com/sirupsen/logrus"

    "github.com/iliyamo/cinema-booking/internal/cinema"
    "github.com/iliyamo/cinema-booking/internal/middleware"
    "github.com/iliyamo/cinema-booking/internal/service"
)

// OwnerHandler serves the box office owner's catalogue and customer routes.
type OwnerHandler struct {
    Svc *service.BookingService
}

// NewOwnerHandler panics when svc is nil.
func NewOwnerHandler(svc *service.BookingService) *OwnerHandler {
    if svc == nil {
        panic("nil service passed to NewOwnerHandler")
    }
    return &OwnerHandler{Svc: svc}
}

// statusFor maps booking errors to HTTP status codes.  Notices from the
// core become 404/409 so clients can tell a no-op from a rejected request.
func statusFor(err error) int {
    switch {
    case errors.Is(err, cinema.ErrInvalidDuration), errors.Is(err, cinema.ErrInvalidShowtime):
        return http.StatusBadRequest
    case errors.Is(err, cinema.ErrDuplicateShowtime), errors.Is(err, cinema.ErrNoScreening):
        return http.StatusConflict
    case errors.Is(err, cinema.ErrShowtimeNotFound),
        errors.Is(err, service.ErrMovieNotFound),
        errors.Is(err, service.ErrCustomerNotFound):
        return http.StatusNotFound
    case errors.Is(err, service.ErrNotVIP):
        return http.StatusForbidden
    }
    return http.StatusInternalServerError
}

// respondError writes {"error": ...} with the status matching err.  Internal
// errors are logged and hidden from the client.
func respondError(c echo.Context, err error) error {
    status := statusFor(err)
    if status == http.StatusInternalServerError {
        logrus.WithError(err).WithField("path", c.Path()).Error("unexpected error")
        return c.JSON(status, echo.Map{"error": "internal error"})
    }
    return c.JSON(status, echo.Map{"error": err.Error()})
}

// pathID parses the :id path parameter as a UUID.
func pathID(c echo.Context) (uuid.UUID, bool) {
    id, err := uuid.Parse(c.Param("id"))
    return id, err == nil
}

// callerID returns the authenticated customer's ID from the token subject.
func callerID(c echo.Context) (uuid.UUID, bool) {
    id, err := uuid.Parse(middleware.Subject(c))
    return id, err == nil
}
