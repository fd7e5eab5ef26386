package repos

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/harborview/insightdeck-backend/internal/repos/testutil"
	"github.com/harborview/insightdeck-backend/internal/types"
)

func seedFilterFixtures(t *testing.T, ctx context.Context, tx *gorm.DB) (slack, hubspot, old *types.Insight) {
	t.Helper()
	now := time.Now().UTC()
	rows := []*types.Insight{
		{ID: uuid.New(), Content: "export breaks on large files", Source: types.SourceSlack, Sentiment: types.SentimentNegative, Status: types.StatusNew, CreatedAt: now.AddDate(0, 0, -1)},
		{ID: uuid.New(), Content: "love the new dashboard", Source: types.SourceHubspot, Sentiment: types.SentimentPositive, Status: types.StatusRead, CreatedAt: now.AddDate(0, 0, -2)},
		{ID: uuid.New(), Content: "old complaint about exports", Source: types.SourceSlack, Sentiment: types.SentimentNegative, Status: types.StatusPlanned, CreatedAt: now.AddDate(0, 0, -90)},
	}
	for _, row := range rows {
		if err := tx.WithContext(ctx).Create(row).Error; err != nil {
			t.Fatalf("seed insight: %v", err)
		}
	}
	return rows[0], rows[1], rows[2]
}

func TestInsightList(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))
	repo := NewInsightRepo(tx, testutil.Logger(t))

	slack, hubspot, old := seedFilterFixtures(t, ctx, tx)

	t.Run("no_filter_newest_first", func(t *testing.T) {
		got, err := repo.List(ctx, nil, InsightFilter{})
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if len(got) != 3 {
			t.Fatalf("got %d rows, want 3", len(got))
		}
		if got[0].ID != slack.ID || got[1].ID != hubspot.ID || got[2].ID != old.ID {
			t.Fatalf("rows not ordered newest first")
		}
	})

	t.Run("by_source", func(t *testing.T) {
		got, err := repo.List(ctx, nil, InsightFilter{Sources: []types.Source{types.SourceHubspot}})
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if len(got) != 1 || got[0].ID != hubspot.ID {
			t.Fatalf("source filter returned wrong rows: %d", len(got))
		}
	})

	t.Run("by_status", func(t *testing.T) {
		got, err := repo.List(ctx, nil, InsightFilter{Statuses: []types.Status{types.StatusNew, types.StatusRead}})
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("status filter returned %d rows, want 2", len(got))
		}
	})

	t.Run("created_window", func(t *testing.T) {
		from := time.Now().UTC().AddDate(0, 0, -7)
		got, err := repo.List(ctx, nil, InsightFilter{CreatedFrom: &from})
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("window filter returned %d rows, want 2", len(got))
		}
		for _, row := range got {
			if row.ID == old.ID {
				t.Fatalf("window filter leaked the 90-day-old insight")
			}
		}
	})

	t.Run("combined", func(t *testing.T) {
		from := time.Now().UTC().AddDate(0, 0, -7)
		got, err := repo.List(ctx, nil, InsightFilter{
			CreatedFrom: &from,
			Sources:     []types.Source{types.SourceSlack},
			Sentiments:  []types.Sentiment{types.SentimentNegative},
		})
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if len(got) != 1 || got[0].ID != slack.ID {
			t.Fatalf("combined filter returned wrong rows")
		}
	})
}

func TestInsightGetByID(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))
	repo := NewInsightRepo(tx, testutil.Logger(t))

	ins := testutil.SeedInsight(t, ctx, tx, 0, types.StatusNew)

	got, err := repo.GetByID(ctx, nil, ins.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.ID != ins.ID {
		t.Fatalf("got %s, want %s", got.ID, ins.ID)
	}

	if _, err := repo.GetByID(ctx, nil, uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing row err=%v, want ErrNotFound", err)
	}
}

func TestInsightUpdateStatus(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))
	repo := NewInsightRepo(tx, testutil.Logger(t))

	ins := testutil.SeedInsight(t, ctx, tx, 0, types.StatusNew)

	if err := repo.UpdateStatus(ctx, nil, ins.ID, types.StatusInReview); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	got, err := repo.GetByID(ctx, nil, ins.ID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.Status != types.StatusInReview {
		t.Fatalf("status %s, want in_review", got.Status)
	}

	if err := repo.UpdateStatus(ctx, nil, uuid.New(), types.StatusRead); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing row err=%v, want ErrNotFound", err)
	}
}
