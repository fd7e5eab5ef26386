package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/harborview/insightdeck-backend/internal/repos"
	"github.com/harborview/insightdeck-backend/internal/types"
)

type WorkspaceHandler struct {
	db        *gorm.DB
	workspace repos.WorkspaceRepo
	shares    repos.WorkspaceInsightRepo
}

func NewWorkspaceHandler(db *gorm.DB, workspace repos.WorkspaceRepo, shares repos.WorkspaceInsightRepo) *WorkspaceHandler {
	return &WorkspaceHandler{db: db, workspace: workspace, shares: shares}
}

type createWorkspaceRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// POST /api/workspaces
func (h *WorkspaceHandler) Create(c *gin.Context) {
	var req createWorkspaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}

	row := &types.Workspace{ID: uuid.New(), Name: req.Name, Description: req.Description}
	if _, err := h.workspace.Create(c.Request.Context(), nil, []*types.Workspace{row}); err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, row)
}

// GET /api/workspaces
func (h *WorkspaceHandler) List(c *gin.Context) {
	rows, err := h.workspace.List(c.Request.Context(), nil)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"workspaces": rows})
}

// GET /api/workspaces/:id/insights
func (h *WorkspaceHandler) Shares(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}

	rows, err := h.shares.GetByWorkspaceIDs(c.Request.Context(), nil, []uuid.UUID{id})
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"shares": rows})
}
