package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/harborview/insightdeck-backend/internal/services"
)

type ImportanceHandler struct {
	importance services.ImportanceService
}

func NewImportanceHandler(importance services.ImportanceService) *ImportanceHandler {
	return &ImportanceHandler{importance: importance}
}

// PUT /api/insights/:id/important
func (h *ImportanceHandler) Mark(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}

	if err := h.importance.Mark(c.Request.Context(), id); err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"id": id, "important": true})
}

// DELETE /api/insights/:id/important
func (h *ImportanceHandler) Unmark(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}

	if err := h.importance.Unmark(c.Request.Context(), id); err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"id": id, "important": false})
}

// GET /api/insights/important
func (h *ImportanceHandler) List(c *gin.Context) {
	ids, err := h.importance.List(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	if ids == nil {
		ids = []uuid.UUID{}
	}
	RespondOK(c, gin.H{"insight_ids": ids})
}
