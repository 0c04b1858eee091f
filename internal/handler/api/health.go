package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"cuponx-backend/internal/pkg/clock"

	"github.com/gin-gonic/gin"
)

const pingTimeout = 2 * time.Second

type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db    Pinger
	clock clock.Clock
}

func NewHealthHandler(db Pinger, clk clock.Clock) *HealthHandler {
	return &HealthHandler{
		db:    db,
		clock: clk,
	}
}

// @Summary Health check
// @Description Process is up
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"message": "Backend is running",
	})
}

// @Summary Status
// @Description Pings the database
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /api/status [get]
func (h *HealthHandler) Status(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), pingTimeout)
	defer cancel()

	timestamp := h.clock.Now().UTC().Format(time.RFC3339)
	if err := h.db.Ping(ctx); err != nil {
		slog.Error("database ping failed", "error", err)
		body := gin.H{
			"status":    "ERROR",
			"message":   "Database connection failed",
			"timestamp": timestamp,
		}
		if gin.Mode() != gin.ReleaseMode {
			body["error"] = err.Error()
		}
		c.JSON(http.StatusServiceUnavailable, body)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "OK",
		"message":   "Backend and Database are running",
		"timestamp": timestamp,
	})
}
