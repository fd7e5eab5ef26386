package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Workspace is a collaborative share target. Adding an insight to one
// promotes the insight to in_review.
type Workspace struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"column:name;not null" json:"name"`
	Description string    `gorm:"column:description" json:"description"`

	CreatedAt time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Workspace) TableName() string { return "workspace" }

func (w *Workspace) BeforeCreate(tx *gorm.DB) error {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	return nil
}

// WorkspaceInsight records a share of an insight into a workspace, with an
// optional tag list and free-text note. Its lifecycle is independent of the
// insight's status.
type WorkspaceInsight struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	WorkspaceID uuid.UUID      `gorm:"type:uuid;not null;index:idx_workspace_insight,unique" json:"workspace_id"`
	InsightID   uuid.UUID      `gorm:"type:uuid;not null;index:idx_workspace_insight,unique" json:"insight_id"`
	Tags        datatypes.JSON `gorm:"column:tags" json:"tags,omitempty"`
	Note        string         `gorm:"column:note" json:"note,omitempty"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

func (WorkspaceInsight) TableName() string { return "workspace_insight" }

func (wi *WorkspaceInsight) BeforeCreate(tx *gorm.DB) error {
	if wi.ID == uuid.Nil {
		wi.ID = uuid.New()
	}
	return nil
}
