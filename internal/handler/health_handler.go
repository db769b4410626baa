package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/tutor-api/internal/service"
	"github.com/noah-isme/tutor-api/pkg/response"
)

// HealthHandler exposes liveness, readiness and Prometheus endpoints.
type HealthHandler struct {
	health  *service.HealthService
	metrics *service.MetricsService
}

// NewHealthHandler constructs a HealthHandler.
func NewHealthHandler(health *service.HealthService, metrics *service.MetricsService) *HealthHandler {
	return &HealthHandler{health: health, metrics: metrics}
}

// Health godoc
// @Summary Liveness check
// @Description Returns a greeting with the number of earlier checks.
// @Tags System
// @Produce json
// @Success 200 {string} string "I'm OK. N times"
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	response.OK(c, h.health.Check())
}

// Ready godoc
// @Summary Readiness check
// @Tags System
// @Produce json
// @Success 200 {object} service.ReadinessReport
// @Failure 503 {object} service.ReadinessReport
// @Router /ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	report, err := h.health.Ready(c.Request.Context())
	if err != nil {
		response.JSON(c, http.StatusServiceUnavailable, report)
		return
	}
	response.OK(c, report)
}

// Prometheus serves the Prometheus metrics endpoint.
func (h *HealthHandler) Prometheus(c *gin.Context) {
	if h.metrics == nil {
		c.Status(http.StatusServiceUnavailable)
		return
	}
	h.metrics.Handler().ServeHTTP(c.Writer, c.Request)
}
