package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/harish176/placement-portal/internal/app/models/dto"
)

// Pinger reports database reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthController serves the liveness probe.
type HealthController struct {
	db      Pinger
	started time.Time
}

// NewHealthController creates a new HealthController. db may be nil.
func NewHealthController(db Pinger) *HealthController {
	return &HealthController{db: db, started: time.Now()}
}

// Health reports liveness. It always answers 200; the database field is
// informational.
// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} dto.APIResponse
// @Router /health [get]
func (c *HealthController) Health(ctx *gin.Context) {
	database := "unknown"
	if c.db != nil {
		pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
		defer cancel()
		if err := c.db.Ping(pingCtx); err != nil {
			database = "down"
		} else {
			database = "up"
		}
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Server is running", gin.H{
		"status":    "ok",
		"database":  database,
		"uptime":    time.Since(c.started).Round(time.Second).String(),
		"timestamp": time.Now().UTC(),
	}))
}
