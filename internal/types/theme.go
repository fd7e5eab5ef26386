package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ThemeStatus string

const (
	ThemeStatusActive   ThemeStatus = "active"
	ThemeStatusArchived ThemeStatus = "archived"
)

// CriticalPriority is the score applied by the "tag as critical" action.
const CriticalPriority = 100

type Theme struct {
	ID              uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	Name            string      `gorm:"column:name;not null" json:"name"`
	Description     string      `gorm:"column:description" json:"description"`
	PriorityScore   int         `gorm:"column:priority_score;not null;default:0" json:"priority_score"`
	Status          ThemeStatus `gorm:"column:status;not null;default:active;index" json:"status"`
	IsAutoGenerated bool        `gorm:"column:is_auto_generated;not null;default:false" json:"is_auto_generated"`

	CreatedAt time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Theme) TableName() string { return "theme" }

func (t *Theme) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// ThemeInsight links an insight into a theme. An insight may belong to many
// themes; metrics fan out to each linked theme independently.
type ThemeInsight struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ThemeID   uuid.UUID `gorm:"type:uuid;not null;index:idx_theme_insight,unique" json:"theme_id"`
	InsightID uuid.UUID `gorm:"type:uuid;not null;index:idx_theme_insight,unique" json:"insight_id"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

func (ThemeInsight) TableName() string { return "theme_insight" }

func (l *ThemeInsight) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
