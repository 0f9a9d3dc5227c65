package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/cinema-booking/internal/handler" // import the handlers that implement business logic
)

// RegisterRoutes registers routes that do not require authentication and are
// not part of the API itself.  Currently it exposes only a health check
// that also reports whether redis is reachable.
func RegisterRoutes(e *echo.Echo, rdb *redis.Client) {
	e.GET("/healthz", handler.Health(rdb))
}

// RegisterAuth registers the token issuing routes under /v1/auth.  Neither
// requires an existing session.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler) {
	g := e.Group("/v1/auth")
	// Owner exchanges the box office password for an OWNER token.
	g.POST("/owner", a.OwnerLogin)
	// Anyone may sign up as a standard customer.
	g.POST("/register", a.Register)
}

// RegisterPublic registers the unauthenticated catalogue routes.  cache is
// applied per route so that only catalogue reads are cached.
func RegisterPublic(e *echo.Echo, p *handler.PublicHandler, cache echo.MiddlewareFunc) {
	e.GET("/v1/movies", p.ListMovies, cache)
	e.GET("/v1/movies/:id", p.GetMovie, cache)
}
