package types

import "github.com/google/uuid"

// ThemeMetrics is a derived roll-up, recomputed on demand and never persisted.
type ThemeMetrics struct {
	ThemeID         uuid.UUID `json:"theme_id"`
	TotalMentions   int       `json:"total_mentions"`
	UniqueCustomers int       `json:"unique_customers"`
	TotalACV        float64   `json:"total_acv"`
}

type TrendDirection string

const (
	TrendUp   TrendDirection = "up"
	TrendDown TrendDirection = "down"
	TrendFlat TrendDirection = "flat"
)

// TrendRecord is the shared output shape of both trend modes: the theme-level
// ratio trend and the single-insight recency trend.
type TrendRecord struct {
	SubjectID       uuid.UUID      `json:"subject_id"`
	Name            string         `json:"name"`
	OverallTrend    TrendDirection `json:"overall_trend"`
	WoWPercent      float64        `json:"wow_percent"`
	MoMPercent      float64        `json:"mom_percent"`
	TotalACVImpact  float64        `json:"total_acv_impact"`
	UniqueCustomers int            `json:"unique_customers"`
}
