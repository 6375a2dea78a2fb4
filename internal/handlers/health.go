package handlers

import (
	"net/http"

	"github.com/alimgiray/mistakelog/internal/services"
	"github.com/alimgiray/mistakelog/pkg/logger"
	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	healthService *services.HealthService
}

func NewHealthHandler(healthService *services.HealthService) *HealthHandler {
	return &HealthHandler{
		healthService: healthService,
	}
}

// HealthCheck handles GET /health and GET /health/:path_echo. The optional
// echo query parameter and path segment are passed through unchanged.
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	echo := queryValue(c, "echo")

	var pathEcho *string
	if value := c.Param("path_echo"); value != "" {
		pathEcho = &value
	}

	health, err := h.healthService.Report(echo, pathEcho)
	if err != nil {
		logger.WithError(err).Error("health check failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, health)
}
