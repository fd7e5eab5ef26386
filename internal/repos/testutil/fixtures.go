package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/harborview/insightdeck-backend/internal/types"
)

// SeedInsight inserts an insight created the given number of days ago.
func SeedInsight(tb testing.TB, ctx context.Context, tx *gorm.DB, daysAgo int, status types.Status) *types.Insight {
	tb.Helper()
	row := &types.Insight{
		ID:        uuid.New(),
		Content:   "seeded insight",
		Source:    types.SourceSlack,
		Sentiment: types.SentimentNegative,
		Status:    status,
		CreatedAt: time.Now().UTC().AddDate(0, 0, -daysAgo),
	}
	if err := tx.WithContext(ctx).Create(row).Error; err != nil {
		tb.Fatalf("seed insight: %v", err)
	}
	return row
}

func SeedTheme(tb testing.TB, ctx context.Context, tx *gorm.DB, name string) *types.Theme {
	tb.Helper()
	row := &types.Theme{
		ID:     uuid.New(),
		Name:   name,
		Status: types.ThemeStatusActive,
	}
	if err := tx.WithContext(ctx).Create(row).Error; err != nil {
		tb.Fatalf("seed theme: %v", err)
	}
	return row
}

func LinkThemeInsight(tb testing.TB, ctx context.Context, tx *gorm.DB, themeID, insightID uuid.UUID) *types.ThemeInsight {
	tb.Helper()
	row := &types.ThemeInsight{
		ID:        uuid.New(),
		ThemeID:   themeID,
		InsightID: insightID,
	}
	if err := tx.WithContext(ctx).Create(row).Error; err != nil {
		tb.Fatalf("link theme insight: %v", err)
	}
	return row
}

func SeedImpact(tb testing.TB, ctx context.Context, tx *gorm.DB, insightID, customerID uuid.UUID, acv float64) *types.CustomerImpact {
	tb.Helper()
	row := &types.CustomerImpact{
		ID:           uuid.New(),
		InsightID:    insightID,
		CustomerID:   customerID,
		CustomerName: "Seed Customer",
		ACVImpact:    acv,
	}
	if err := tx.WithContext(ctx).Create(row).Error; err != nil {
		tb.Fatalf("seed impact: %v", err)
	}
	return row
}

func SeedWorkspace(tb testing.TB, ctx context.Context, tx *gorm.DB, name string) *types.Workspace {
	tb.Helper()
	row := &types.Workspace{
		ID:   uuid.New(),
		Name: name,
	}
	if err := tx.WithContext(ctx).Create(row).Error; err != nil {
		tb.Fatalf("seed workspace: %v", err)
	}
	return row
}
