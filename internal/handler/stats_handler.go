package handler

import (
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/yourorg/options-dashboard/internal/service"
)

// StatsHandler handles system statistics HTTP requests
type StatsHandler struct {
	statsService   *service.StatsService
	streamInterval time.Duration
	logger         *zap.Logger
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(statsService *service.StatsService, streamInterval time.Duration, logger *zap.Logger) *StatsHandler {
	if streamInterval <= 0 {
		streamInterval = 2 * time.Second
	}

	return &StatsHandler{
		statsService:   statsService,
		streamInterval: streamInterval,
		logger:         logger,
	}
}

// GetStats handles retrieving system statistics
// GET /api/v1/stats
func (h *StatsHandler) GetStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.statsService.GetStats(c.Request.Context()))
}

// StreamStats pushes stats to the client as server-sent events until the
// client disconnects. Each subscriber gets its own ticker; there is no
// shared mutable state beyond read-only store access.
// GET /api/v1/stats/stream
func (h *StatsHandler) StreamStats(c *gin.Context) {
	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	ctx := c.Request.Context()

	ticker := time.NewTicker(h.streamInterval)
	defer ticker.Stop()

	// Push a first snapshot immediately so the client does not wait a
	// full interval for its initial render.
	c.SSEvent("stats", h.statsService.GetStats(ctx))
	c.Writer.Flush()

	c.Stream(func(w io.Writer) bool {
		select {
		case <-ctx.Done():
			return false
		case <-ticker.C:
			c.SSEvent("stats", h.statsService.GetStats(ctx))
			return true
		}
	})
}
