package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/harborview/insightdeck-backend/internal/repos"
	"github.com/harborview/insightdeck-backend/internal/repos/testutil"
	"github.com/harborview/insightdeck-backend/internal/types"
)

func newThemeService(t *testing.T, tx *gorm.DB) ThemeService {
	t.Helper()
	log := testutil.Logger(t)
	return NewThemeService(tx, log,
		repos.NewThemeRepo(tx, log),
		repos.NewThemeInsightRepo(tx, log),
		repos.NewInsightRepo(tx, log),
	)
}

func TestThemeCreateValidation(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))
	svc := newThemeService(t, tx)

	if _, err := svc.Create(ctx, CreateThemeInput{Name: ""}); err == nil {
		t.Fatalf("nameless theme should be rejected")
	}
	if _, err := svc.Create(ctx, CreateThemeInput{Name: "x", PriorityScore: 200}); err == nil {
		t.Fatalf("out-of-range priority should be rejected")
	}

	theme, err := svc.Create(ctx, CreateThemeInput{Name: "Slow exports", PriorityScore: 40})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if theme.Status != types.ThemeStatusActive {
		t.Fatalf("new theme status %s, want active", theme.Status)
	}
}

func TestThemeTagAsCritical(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))
	svc := newThemeService(t, tx)
	log := testutil.Logger(t)

	theme := testutil.SeedTheme(t, ctx, tx, "Billing confusion")
	if err := svc.TagAsCritical(ctx, theme.ID); err != nil {
		t.Fatalf("TagAsCritical: %v", err)
	}

	got, err := repos.NewThemeRepo(tx, log).GetByID(ctx, nil, theme.ID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.PriorityScore != types.CriticalPriority {
		t.Fatalf("priority %d, want %d", got.PriorityScore, types.CriticalPriority)
	}
}

func TestThemeDeleteUnlinksButKeepsInsights(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))
	svc := newThemeService(t, tx)
	log := testutil.Logger(t)

	theme := testutil.SeedTheme(t, ctx, tx, "Short lived")
	ins := testutil.SeedInsight(t, ctx, tx, 0, types.StatusNew)
	testutil.LinkThemeInsight(t, ctx, tx, theme.ID, ins.ID)

	if err := svc.Delete(ctx, theme.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if _, err := repos.NewThemeRepo(tx, log).GetByID(ctx, nil, theme.ID); !errors.Is(err, repos.ErrNotFound) {
		t.Fatalf("theme survived delete: %v", err)
	}
	links, err := repos.NewThemeInsightRepo(tx, log).GetByThemeIDs(ctx, nil, []uuid.UUID{theme.ID})
	if err != nil {
		t.Fatalf("load links: %v", err)
	}
	if len(links) != 0 {
		t.Fatalf("theme links survived delete: %d", len(links))
	}
	if _, err := repos.NewInsightRepo(tx, log).GetByID(ctx, nil, ins.ID); err != nil {
		t.Fatalf("insight must survive theme deletion: %v", err)
	}
}

func TestThemeLinkInsightChecksExistence(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))
	svc := newThemeService(t, tx)

	theme := testutil.SeedTheme(t, ctx, tx, "Linked")
	ins := testutil.SeedInsight(t, ctx, tx, 0, types.StatusNew)

	if err := svc.LinkInsight(ctx, theme.ID, uuid.New()); !errors.Is(err, repos.ErrNotFound) {
		t.Fatalf("linking a missing insight: err=%v, want ErrNotFound", err)
	}
	if err := svc.LinkInsight(ctx, uuid.New(), ins.ID); !errors.Is(err, repos.ErrNotFound) {
		t.Fatalf("linking to a missing theme: err=%v, want ErrNotFound", err)
	}
	if err := svc.LinkInsight(ctx, theme.ID, ins.ID); err != nil {
		t.Fatalf("LinkInsight: %v", err)
	}
}

func TestThemeUpdatePatchesOnlyProvidedFields(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))
	svc := newThemeService(t, tx)

	theme, err := svc.Create(ctx, CreateThemeInput{Name: "Original", Description: "keep me", PriorityScore: 30})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	newName := "Renamed"
	got, err := svc.Update(ctx, theme.ID, UpdateThemeInput{Name: &newName})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got.Name != "Renamed" || got.Description != "keep me" || got.PriorityScore != 30 {
		t.Fatalf("patch touched unrelated fields: %+v", got)
	}
}
