package repos

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/harborview/insightdeck-backend/internal/repos/testutil"
	"github.com/harborview/insightdeck-backend/internal/types"
)

func TestThemeListOrderingAndArchiveFilter(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))
	repo := NewThemeRepo(tx, testutil.Logger(t))

	low := testutil.SeedTheme(t, ctx, tx, "low priority")
	high := testutil.SeedTheme(t, ctx, tx, "high priority")
	archived := testutil.SeedTheme(t, ctx, tx, "archived")

	if err := repo.UpsertPriority(ctx, nil, high.ID, 90); err != nil {
		t.Fatalf("UpsertPriority: %v", err)
	}
	if err := repo.UpsertPriority(ctx, nil, low.ID, 10); err != nil {
		t.Fatalf("UpsertPriority: %v", err)
	}
	if err := repo.SetStatus(ctx, nil, archived.ID, types.ThemeStatusArchived); err != nil {
		t.Fatalf("SetStatus: %v", err)
	}

	active, err := repo.List(ctx, nil, false)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(active) != 2 {
		t.Fatalf("got %d active themes, want 2", len(active))
	}
	if active[0].ID != high.ID || active[1].ID != low.ID {
		t.Fatalf("themes not ordered by priority score")
	}

	all, err := repo.List(ctx, nil, true)
	if err != nil {
		t.Fatalf("List(all): %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("got %d themes with archived, want 3", len(all))
	}
}

func TestThemeUpsertPriorityNotFound(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))
	repo := NewThemeRepo(tx, testutil.Logger(t))

	if err := repo.UpsertPriority(ctx, nil, uuid.New(), 50); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err=%v, want ErrNotFound", err)
	}
}

func TestThemeFullDelete(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))
	repo := NewThemeRepo(tx, testutil.Logger(t))

	theme := testutil.SeedTheme(t, ctx, tx, "short lived")
	if err := repo.FullDeleteByIDs(ctx, nil, []uuid.UUID{theme.ID}); err != nil {
		t.Fatalf("FullDeleteByIDs: %v", err)
	}
	if _, err := repo.GetByID(ctx, nil, theme.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("deleted theme still resolvable: %v", err)
	}
}

func TestThemeInsightLinks(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))
	log := testutil.Logger(t)
	repo := NewThemeInsightRepo(tx, log)

	themeA := testutil.SeedTheme(t, ctx, tx, "a")
	themeB := testutil.SeedTheme(t, ctx, tx, "b")
	ins := testutil.SeedInsight(t, ctx, tx, 0, types.StatusNew)
	testutil.LinkThemeInsight(t, ctx, tx, themeA.ID, ins.ID)
	testutil.LinkThemeInsight(t, ctx, tx, themeB.ID, ins.ID)

	byTheme, err := repo.GetByThemeIDs(ctx, nil, []uuid.UUID{themeA.ID})
	if err != nil {
		t.Fatalf("GetByThemeIDs: %v", err)
	}
	if len(byTheme) != 1 || byTheme[0].InsightID != ins.ID {
		t.Fatalf("theme A links %+v, want the single seeded link", byTheme)
	}

	if err := repo.DeleteLink(ctx, nil, themeA.ID, ins.ID); err != nil {
		t.Fatalf("DeleteLink: %v", err)
	}
	byInsight, err := repo.GetByInsightIDs(ctx, nil, []uuid.UUID{ins.ID})
	if err != nil {
		t.Fatalf("GetByInsightIDs: %v", err)
	}
	if len(byInsight) != 1 || byInsight[0].ThemeID != themeB.ID {
		t.Fatalf("unlink removed the wrong link: %+v", byInsight)
	}
}
