package types

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Status is the lifecycle state of an insight. Progression is typically
// new -> read -> in_review -> planned, but re-review from planned is allowed.
type Status string

const (
	StatusNew      Status = "new"
	StatusRead     Status = "read"
	StatusInReview Status = "in_review"
	StatusPlanned  Status = "planned"
)

var ErrInvalidStatus = errors.New("invalid insight status")

// ParseStatus validates a raw status string before any write happens.
func ParseStatus(raw string) (Status, error) {
	switch Status(raw) {
	case StatusNew, StatusRead, StatusInReview, StatusPlanned:
		return Status(raw), nil
	}
	return "", ErrInvalidStatus
}

type Source string

const (
	SourceSlack    Source = "slack"
	SourceHubspot  Source = "hubspot"
	SourceDocument Source = "document"
	SourceZoom     Source = "zoom"
	SourceCSV      Source = "csv"
)

type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

type Insight struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Content   string    `gorm:"column:content;not null" json:"content"`
	Source    Source    `gorm:"column:source;not null;index" json:"source"`
	Sentiment Sentiment `gorm:"column:sentiment;not null;index" json:"sentiment"`
	Status    Status    `gorm:"column:status;not null;default:new;index" json:"status"`

	CreatedAt time.Time      `gorm:"not null;index" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Insight) TableName() string { return "insight" }

func (i *Insight) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
