package middleware

// identity.go defines helpers shared by middleware and handlers to read the
// caller's identity that JWTAuth stored in the Echo context.

import "github.com/labstack/echo/v4"

// Context keys set by JWTAuth.
const (
    ctxSubject = "user_id"
    ctxRole    = "role"
)

// Subject returns the token subject (owner name or customer UUID), or
// "guest" when the request is unauthenticated.
func Subject(c echo.Context) string {
    if s, ok := c.Get(ctxSubject).(string); ok && s != "" {
        return s
    }
    return "guest"
}

// Role returns the role claim of the authenticated caller, or "" when absent.
func Role(c echo.Context) string {
    r, _ := c.Get(ctxRole).(string)
    return r
}
