package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/harborview/insightdeck-backend/internal/repos"
	"github.com/harborview/insightdeck-backend/internal/services"
	"github.com/harborview/insightdeck-backend/internal/types"
)

type InsightHandler struct {
	insights  services.InsightService
	lifecycle services.LifecycleService
}

func NewInsightHandler(insights services.InsightService, lifecycle services.LifecycleService) *InsightHandler {
	return &InsightHandler{insights: insights, lifecycle: lifecycle}
}

// GET /api/insights
func (h *InsightHandler) List(c *gin.Context) {
	filter, err := parseInsightFilter(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_filter", err)
		return
	}

	items, err := h.insights.List(c.Request.Context(), filter)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"insights": items})
}

// GET /api/insights/:id
func (h *InsightHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}

	item, err := h.insights.Get(c.Request.Context(), id)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, item)
}

// POST /api/insights/:id/open
func (h *InsightHandler) Open(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}

	insight, err := h.lifecycle.MarkOpened(c.Request.Context(), id)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, insight)
}

type statusRequest struct {
	Status string `json:"status" binding:"required"`
}

// PUT /api/insights/:id/status
func (h *InsightHandler) SetStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}

	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}

	if err := h.lifecycle.ApplyExternalStatus(c.Request.Context(), id, req.Status); err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"id": id, "status": req.Status})
}

type shareRequest struct {
	WorkspaceID uuid.UUID `json:"workspace_id" binding:"required"`
	Tags        []string  `json:"tags"`
	Note        string    `json:"note"`
}

// POST /api/insights/:id/share
func (h *InsightHandler) Share(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}

	var req shareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}

	share, err := h.lifecycle.ShareToWorkspace(c.Request.Context(), id, req.WorkspaceID, req.Tags, req.Note)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, share)
}

func parseInsightFilter(c *gin.Context) (repos.InsightFilter, error) {
	var filter repos.InsightFilter

	if raw := c.Query("created_from"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return filter, err
		}
		filter.CreatedFrom = &t
	}
	if raw := c.Query("created_to"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return filter, err
		}
		filter.CreatedTo = &t
	}
	for _, s := range c.QueryArray("source") {
		filter.Sources = append(filter.Sources, types.Source(s))
	}
	for _, s := range c.QueryArray("sentiment") {
		filter.Sentiments = append(filter.Sentiments, types.Sentiment(s))
	}
	for _, s := range c.QueryArray("status") {
		status, err := types.ParseStatus(s)
		if err != nil {
			return filter, err
		}
		filter.Statuses = append(filter.Statuses, status)
	}
	return filter, nil
}
