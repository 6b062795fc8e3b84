package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	resdto "stay-picker/internal/handler/dto/response"

	"github.com/gin-gonic/gin"
)

const healthTimeout = 2 * time.Second

type Pinger interface {
	Ping(ctx context.Context) error
}

// PingFunc adapts a plain function to Pinger.
type PingFunc func(ctx context.Context) error

func (f PingFunc) Ping(ctx context.Context) error { return f(ctx) }

// HealthHandler reports readiness. Postgres is required; the location
// cache is optional, so losing it only degrades the service.
type HealthHandler struct {
	db     Pinger
	cache  Pinger
	logger *slog.Logger
}

func NewHealthHandler(db, cache Pinger, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{db: db, cache: cache, logger: logger}
}

// @Summary Health check
// @Description Readiness of the service and its backing stores
// @Tags health
// @Produce json
// @Success 200 {object} resdto.HealthResponse
// @Failure 503 {object} resdto.HealthResponse
// @Router /health [get]
func (h *HealthHandler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
	defer cancel()

	resp := resdto.HealthResponse{Status: resdto.HealthOK, Checks: map[string]string{}}
	status := http.StatusOK

	if err := h.db.Ping(ctx); err != nil {
		h.logger.Error("health: postgres unreachable", "error", err)
		resp.Checks["postgres"] = resdto.HealthDown
		resp.Status = resdto.HealthDown
		status = http.StatusServiceUnavailable
	} else {
		resp.Checks["postgres"] = resdto.HealthOK
	}

	if err := h.cache.Ping(ctx); err != nil {
		h.logger.Warn("health: redis unreachable", "error", err)
		resp.Checks["redis"] = resdto.HealthDown
		if resp.Status == resdto.HealthOK {
			resp.Status = resdto.HealthDegraded
		}
	} else {
		resp.Checks["redis"] = resdto.HealthOK
	}

	c.JSON(status, resp)
}
