package handler // declare the package name; contains HTTP handlers

import (
    "context"
    "net/http" // net/http provides status codes and response helpers
    "time"

    "github.com/labstack/echo/v4" // echo is the web framework used for this project
    "github.com/redis/go-redis/v9"
)

// Health reports liveness for load balancers.  The service is always "ok";
// the redis field tells whether the cache and shared rate limiter are
// reachable ("up", "down") or not configured ("disabled").
func Health(rdb *redis.Client) echo.HandlerFunc {
    return func(c echo.Context) error {
        redisState := "disabled"
        if rdb != nil {
            ctx, cancel := context.WithTimeout(c.Request().Context(), time.Second)
            defer cancel()
            redisState = "up"
            if err := rdb.Ping(ctx).Err(); err != nil {
                redisState = "down"
            }
        }
        return c.JSON(http.StatusOK, echo.Map{"status": "ok", "redis": redisState})
    }
}
