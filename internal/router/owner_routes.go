package router // router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/cinema-booking/internal/handler"    // owner handlers
	"github.com/iliyamo/cinema-booking/internal/middleware" // JWT + role middlewares
	"github.com/iliyamo/cinema-booking/internal/model"
)

// RegisterOwner registers OWNER-scoped endpoints under /v1.
// All routes require a valid JWT and OWNER role.  purge runs after every
// catalogue write so cached listings are dropped.
func RegisterOwner(e *echo.Echo, o *handler.OwnerHandler, a *handler.AuthHandler, jwtSecret string, purge echo.MiddlewareFunc) {
	g := e.Group(
		"/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(model.RoleOwner),
	)

	// ---- Movies ----
	g.POST("/movies", o.CreateMovie, purge)
	g.POST("/movies/:id/showtimes", o.AddShowtime, purge)
	g.DELETE("/movies/:id/showtimes/:time", o.RemoveShowtime, purge)

	// ---- Customers ----
	g.POST("/customers", a.CreateCustomer)
	g.GET("/customers", o.ListCustomers)
}
