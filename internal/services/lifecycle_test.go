package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/harborview/insightdeck-backend/internal/repos"
	"github.com/harborview/insightdeck-backend/internal/repos/testutil"
	"github.com/harborview/insightdeck-backend/internal/types"
)

func newLifecycle(t *testing.T, tx *gorm.DB) LifecycleService {
	t.Helper()
	log := testutil.Logger(t)
	return NewLifecycleService(tx, log,
		repos.NewInsightRepo(tx, log),
		repos.NewWorkspaceRepo(tx, log),
		repos.NewWorkspaceInsightRepo(tx, log),
	)
}

func insightStatus(t *testing.T, ctx context.Context, tx *gorm.DB, id uuid.UUID) types.Status {
	t.Helper()
	var row types.Insight
	if err := tx.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		t.Fatalf("reload insight: %v", err)
	}
	return row.Status
}

func TestMarkOpened(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))
	svc := newLifecycle(t, tx)

	ins := testutil.SeedInsight(t, ctx, tx, 0, types.StatusNew)

	got, err := svc.MarkOpened(ctx, ins.ID)
	if err != nil {
		t.Fatalf("MarkOpened: %v", err)
	}
	if got.Status != types.StatusRead {
		t.Fatalf("returned status %s, want read", got.Status)
	}
	if s := insightStatus(t, ctx, tx, ins.ID); s != types.StatusRead {
		t.Fatalf("stored status %s, want read", s)
	}

	// Opening again is a no-op.
	if _, err := svc.MarkOpened(ctx, ins.ID); err != nil {
		t.Fatalf("second MarkOpened: %v", err)
	}
	if s := insightStatus(t, ctx, tx, ins.ID); s != types.StatusRead {
		t.Fatalf("status after reopen %s, want read", s)
	}
}

func TestMarkOpenedDoesNotRegress(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))
	svc := newLifecycle(t, tx)

	for _, status := range []types.Status{types.StatusInReview, types.StatusPlanned} {
		ins := testutil.SeedInsight(t, ctx, tx, 0, status)
		got, err := svc.MarkOpened(ctx, ins.ID)
		if err != nil {
			t.Fatalf("MarkOpened(%s): %v", status, err)
		}
		if got.Status != status {
			t.Fatalf("opening a %s insight changed status to %s", status, got.Status)
		}
	}
}

func TestMarkOpenedNotFound(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))
	svc := newLifecycle(t, tx)

	if _, err := svc.MarkOpened(ctx, uuid.New()); !errors.Is(err, repos.ErrNotFound) {
		t.Fatalf("err=%v, want repos.ErrNotFound", err)
	}
}

func TestMoveToReviewFromAnyState(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))
	svc := newLifecycle(t, tx)

	for _, status := range []types.Status{types.StatusNew, types.StatusRead, types.StatusPlanned} {
		ins := testutil.SeedInsight(t, ctx, tx, 0, status)
		if err := svc.MoveToReview(ctx, ins.ID); err != nil {
			t.Fatalf("MoveToReview from %s: %v", status, err)
		}
		if s := insightStatus(t, ctx, tx, ins.ID); s != types.StatusInReview {
			t.Fatalf("status after review from %s is %s, want in_review", status, s)
		}
	}
}

func TestShareToWorkspace(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))
	svc := newLifecycle(t, tx)
	log := testutil.Logger(t)

	ws := testutil.SeedWorkspace(t, ctx, tx, "Q2 planning")
	ins := testutil.SeedInsight(t, ctx, tx, 0, types.StatusNew)

	share, err := svc.ShareToWorkspace(ctx, ins.ID, ws.ID, []string{"billing", "churn-risk"}, "raised twice this week")
	if err != nil {
		t.Fatalf("ShareToWorkspace: %v", err)
	}
	if s := insightStatus(t, ctx, tx, ins.ID); s != types.StatusInReview {
		t.Fatalf("shared insight status %s, want in_review", s)
	}

	shares, err := repos.NewWorkspaceInsightRepo(tx, log).GetByWorkspaceIDs(ctx, nil, []uuid.UUID{ws.ID})
	if err != nil {
		t.Fatalf("load shares: %v", err)
	}
	if len(shares) != 1 || shares[0].ID != share.ID || shares[0].InsightID != ins.ID {
		t.Fatalf("share rows %+v, want the one created", shares)
	}

	var tags []string
	if err := json.Unmarshal(shares[0].Tags, &tags); err != nil {
		t.Fatalf("decode share tags: %v", err)
	}
	if len(tags) != 2 || tags[0] != "billing" {
		t.Fatalf("tags %v, want [billing churn-risk]", tags)
	}
}

func TestShareToUnknownWorkspace(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))
	svc := newLifecycle(t, tx)

	ins := testutil.SeedInsight(t, ctx, tx, 0, types.StatusNew)

	if _, err := svc.ShareToWorkspace(ctx, ins.ID, uuid.New(), nil, ""); !errors.Is(err, repos.ErrNotFound) {
		t.Fatalf("err=%v, want repos.ErrNotFound", err)
	}
	// The failed share must not have touched the status.
	if s := insightStatus(t, ctx, tx, ins.ID); s != types.StatusNew {
		t.Fatalf("status after failed share %s, want new", s)
	}
}

func TestApplyExternalStatus(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))
	svc := newLifecycle(t, tx)

	ins := testutil.SeedInsight(t, ctx, tx, 0, types.StatusInReview)

	// planned is only reachable through the external path.
	if err := svc.ApplyExternalStatus(ctx, ins.ID, "planned"); err != nil {
		t.Fatalf("ApplyExternalStatus(planned): %v", err)
	}
	if s := insightStatus(t, ctx, tx, ins.ID); s != types.StatusPlanned {
		t.Fatalf("status %s, want planned", s)
	}

	// An unknown status is rejected before any write.
	err := svc.ApplyExternalStatus(ctx, ins.ID, "closed-wont-fix")
	if !errors.Is(err, types.ErrInvalidStatus) {
		t.Fatalf("err=%v, want types.ErrInvalidStatus", err)
	}
	if s := insightStatus(t, ctx, tx, ins.ID); s != types.StatusPlanned {
		t.Fatalf("rejected status leaked into store: %s", s)
	}
}
