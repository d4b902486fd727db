package db

import (
	"context"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
)

const pingTimeout = 5 * time.Second

// PoolStatus is the connection pool snapshot reported by the database
// health endpoint.
type PoolStatus struct {
	Total    int32  `json:"total"`
	Idle     int32  `json:"idle"`
	InUse    int32  `json:"in_use"`
	Max      int32  `json:"max"`
	WaitTime string `json:"wait_time"`
}

func poolStatus(pool *pgxpool.Pool) PoolStatus {
	s := pool.Stat()
	return PoolStatus{
		Total:    s.TotalConns(),
		Idle:     s.IdleConns(),
		InUse:    s.AcquiredConns(),
		Max:      s.MaxConns(),
		WaitTime: s.AcquireDuration().String(),
	}
}

// HealthHandler reports whether the database answers a ping, with the pool
// snapshot alongside. A failed ping answers 503 so load balancers drain the
// instance.
func HealthHandler(pool *pgxpool.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), pingTimeout)
		defer cancel()

		if err := pool.Ping(ctx); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]interface{}{
				"status": "unavailable",
				"error":  err.Error(),
				"pool":   poolStatus(pool),
			})
		}

		return c.JSON(http.StatusOK, map[string]interface{}{
			"status": "ok",
			"pool":   poolStatus(pool),
		})
	}
}
