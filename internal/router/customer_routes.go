package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/cinema-booking/internal/handler"
	"github.com/iliyamo/cinema-booking/internal/middleware"
	"github.com/iliyamo/cinema-booking/internal/model"
)

// RegisterCustomer registers customer-scoped endpoints under /v1.  All routes
// require a valid JWT and the CUSTOMER or VIP role; private shows are VIP
// only.
func RegisterCustomer(e *echo.Echo, h *handler.CustomerHandler, jwtSecret string) {
	g := e.Group(
		"/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(model.RoleCustomer, model.RoleVIP),
	)
	g.POST("/reservations", h.Reserve)
	g.GET("/my-reservations", h.ListReservations)
	g.GET("/price-quote", h.QuotePrice)
	g.POST("/private-shows", h.BookPrivateShow, middleware.RequireRole(model.RoleVIP))
}
