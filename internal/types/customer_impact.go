package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CustomerImpact attributes ACV dollars to one (insight, customer) pair.
// Summing pairs is additive per insight; unique-customer counts deduplicate
// on CustomerID instead.
type CustomerImpact struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	InsightID    uuid.UUID `gorm:"type:uuid;not null;index" json:"insight_id"`
	CustomerID   uuid.UUID `gorm:"type:uuid;not null;index" json:"customer_id"`
	CustomerName string    `gorm:"column:customer_name" json:"customer_name"`
	ACVImpact    float64   `gorm:"column:acv_impact;not null;default:0" json:"acv_impact"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

func (CustomerImpact) TableName() string { return "customer_impact" }

func (ci *CustomerImpact) BeforeCreate(tx *gorm.DB) error {
	if ci.ID == uuid.Nil {
		ci.ID = uuid.New()
	}
	return nil
}
