package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// HealthHandler serves liveness and readiness probes.
type HealthHandler struct {
	startedAt time.Time
	logger    *logrus.Logger
}

// NewHealthHandler creates the handler.
func NewHealthHandler(logger *logrus.Logger) *HealthHandler {
	return &HealthHandler{
		startedAt: time.Now(),
		logger:    logger,
	}
}

// GetHealth reports process liveness.
func (h *HealthHandler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":         "healthy",
		"uptime_seconds": int(time.Since(h.startedAt).Seconds()),
	})
}

// GetReady reports readiness. The pipeline has no warm-up phase, so
// ready follows healthy.
func (h *HealthHandler) GetReady(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
