package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/harborview/insightdeck-backend/internal/services"
)

type DashboardHandler struct {
	metrics services.MetricsService
	trends  services.TrendService
}

func NewDashboardHandler(metrics services.MetricsService, trends services.TrendService) *DashboardHandler {
	return &DashboardHandler{metrics: metrics, trends: trends}
}

// GET /api/dashboard/metrics
func (h *DashboardHandler) AllThemeMetrics(c *gin.Context) {
	m, err := h.metrics.AllThemeMetrics(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, m)
}

// GET /api/dashboard/trends
func (h *DashboardHandler) ThemeTrends(c *gin.Context) {
	records, err := h.trends.ThemeTrends(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"trends": records})
}

// GET /api/insights/:id/trend
func (h *DashboardHandler) InsightTrend(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}

	rec, err := h.trends.InsightTrend(c.Request.Context(), id)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, rec)
}
