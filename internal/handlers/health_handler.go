package handlers

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/torislove/gomandap-server/internal/database"
	"github.com/torislove/gomandap-server/internal/dto"
)

// GET /health
func (h *Handler) Health(c *gin.Context) {
	status := dto.HealthResponse{Status: "ok", Database: "connected"}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if database.Client == nil || database.Client.Ping(ctx, nil) != nil {
		status.Database = "unreachable"
		c.JSON(503, status)
		return
	}

	c.JSON(200, status)
}
