package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

func (h HandlerSet) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "call logs api"})
}

type healthResponse struct {
	Status      string `json:"status"`
	Database    string `json:"database"`
	Environment string `json:"environment"`
}

func (h HandlerSet) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	dbStatus := "ok"
	if err := h.health.Ping(ctx); err != nil {
		dbStatus = "error"
		h.log.Error().Err(err).Msg("store ping failed")
	}

	c.JSON(http.StatusOK, healthResponse{
		Status:      "ok",
		Database:    dbStatus,
		Environment: h.cfg.Environment,
	})
}
