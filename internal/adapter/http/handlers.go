package http

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Dependency is a backing service pinged by the health check.
type Dependency struct {
	Name string
	Ping func(ctx context.Context) error
}

type Handler struct{ deps []Dependency }

func NewHandler(deps ...Dependency) *Handler { return &Handler{deps: deps} }

// Health reports "ok" when every dependency answers its ping, "degraded"
// with 503 otherwise.
func (h *Handler) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()

	code, overall := http.StatusOK, "ok"
	checks := make(map[string]string, len(h.deps))
	for _, d := range h.deps {
		if err := d.Ping(ctx); err != nil {
			checks[d.Name] = "down"
			code, overall = http.StatusServiceUnavailable, "degraded"
			continue
		}
		checks[d.Name] = "up"
	}
	return c.JSON(code, map[string]any{
		"status": overall,
		"checks": checks,
		"time":   time.Now().UTC().Format(time.RFC3339Nano),
	})
}
