package middleware

import (
    "time"

    "github.com/labstack/echo/v4"
    "github.com/sirupsen/logrus"
)

// RequestLogger writes one logrus entry per request.  Server errors are
// logged at error level, client errors at warning level.
func RequestLogger(log logrus.FieldLogger) echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            start := time.Now()
            err := next(c)
            if err != nil {
                c.Error(err)
            }
            status := c.Response().Status
            entry := log.WithFields(logrus.Fields{
                "method":  c.Request().Method,
                "path":    c.Path(),
                "status":  status,
                "latency": time.Since(start).String(),
                "ip":      c.RealIP(),
                "subject": Subject(c),
            })
            switch {
            case status >= 500:
                entry.WithError(err).Error("request failed")
            case status >= 400:
                entry.Warn("request rejected")
            default:
                entry.Info("request served")
            }
            return nil
        }
    }
}
