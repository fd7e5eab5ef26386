package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/harborview/insightdeck-backend/internal/services"
	"github.com/harborview/insightdeck-backend/internal/types"
)

type ThemeHandler struct {
	themes  services.ThemeService
	metrics services.MetricsService
}

func NewThemeHandler(themes services.ThemeService, metrics services.MetricsService) *ThemeHandler {
	return &ThemeHandler{themes: themes, metrics: metrics}
}

// GET /api/themes
func (h *ThemeHandler) List(c *gin.Context) {
	includeArchived := c.Query("include_archived") == "true"
	themes, err := h.themes.List(c.Request.Context(), includeArchived)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"themes": themes})
}

// POST /api/themes
func (h *ThemeHandler) Create(c *gin.Context) {
	var req services.CreateThemeInput
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}

	theme, err := h.themes.Create(c.Request.Context(), req)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, theme)
}

// PATCH /api/themes/:id
func (h *ThemeHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}

	var req services.UpdateThemeInput
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}

	theme, err := h.themes.Update(c.Request.Context(), id, req)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, theme)
}

// DELETE /api/themes/:id
func (h *ThemeHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}

	if err := h.themes.Delete(c.Request.Context(), id); err != nil {
		RespondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// POST /api/themes/:id/archive
func (h *ThemeHandler) Archive(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}

	if err := h.themes.Archive(c.Request.Context(), id); err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"id": id, "status": "archived"})
}

// POST /api/themes/:id/critical
func (h *ThemeHandler) TagAsCritical(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}

	if err := h.themes.TagAsCritical(c.Request.Context(), id); err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"id": id, "priority_score": types.CriticalPriority})
}

type linkRequest struct {
	InsightID uuid.UUID `json:"insight_id" binding:"required"`
}

// POST /api/themes/:id/insights
func (h *ThemeHandler) LinkInsight(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}

	var req linkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}

	if err := h.themes.LinkInsight(c.Request.Context(), id, req.InsightID); err != nil {
		RespondServiceError(c, err)
		return
	}
	c.Status(http.StatusCreated)
}

// DELETE /api/themes/:id/insights/:insightID
func (h *ThemeHandler) UnlinkInsight(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	insightID, err := uuid.Parse(c.Param("insightID"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}

	if err := h.themes.UnlinkInsight(c.Request.Context(), id, insightID); err != nil {
		RespondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GET /api/themes/:id/metrics
func (h *ThemeHandler) Metrics(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}

	m, err := h.metrics.ThemeMetrics(c.Request.Context(), id)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, m)
}
