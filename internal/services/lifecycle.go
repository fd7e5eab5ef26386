package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/harborview/insightdeck-backend/internal/logger"
	"github.com/harborview/insightdeck-backend/internal/repos"
	"github.com/harborview/insightdeck-backend/internal/types"
)

// LifecycleService owns every status transition an insight goes through.
// Transitions are single atomic writes keyed by insight id; concurrent
// actors are last-write-wins, the status column has no causal metadata.
type LifecycleService interface {
	// MarkOpened moves a new insight to read. Opening an already read or
	// later insight is a no-op.
	MarkOpened(ctx context.Context, id uuid.UUID) (*types.Insight, error)
	// MoveToReview moves an insight to in_review from any prior state,
	// planned included: re-review is permitted.
	MoveToReview(ctx context.Context, id uuid.UUID) error
	// ShareToWorkspace promotes the insight to in_review and records the
	// workspace association with its optional tags and note. The two writes
	// are not atomic across steps: a failure after the status write leaves a
	// recoverable partial state.
	ShareToWorkspace(ctx context.Context, insightID, workspaceID uuid.UUID, tags []string, note string) (*types.WorkspaceInsight, error)
	// ApplyExternalStatus accepts a status set by an external workflow (the
	// only way planned is ever reached). Unrecognized statuses are rejected
	// before any write.
	ApplyExternalStatus(ctx context.Context, id uuid.UUID, rawStatus string) error
}

type lifecycleService struct {
	db            *gorm.DB
	log           *logger.Logger
	insightRepo   repos.InsightRepo
	workspaceRepo repos.WorkspaceRepo
	shareRepo     repos.WorkspaceInsightRepo
}

func NewLifecycleService(
	db *gorm.DB,
	baseLog *logger.Logger,
	insightRepo repos.InsightRepo,
	workspaceRepo repos.WorkspaceRepo,
	shareRepo repos.WorkspaceInsightRepo,
) LifecycleService {
	return &lifecycleService{
		db:            db,
		log:           baseLog.With("service", "LifecycleService"),
		insightRepo:   insightRepo,
		workspaceRepo: workspaceRepo,
		shareRepo:     shareRepo,
	}
}

func (s *lifecycleService) MarkOpened(ctx context.Context, id uuid.UUID) (*types.Insight, error) {
	insight, err := s.insightRepo.GetByID(ctx, nil, id)
	if err != nil {
		return nil, err
	}
	if insight.Status != types.StatusNew {
		return insight, nil
	}

	if err := s.insightRepo.UpdateStatus(ctx, nil, id, types.StatusRead); err != nil {
		return nil, fmt.Errorf("mark opened: %w", err)
	}
	insight.Status = types.StatusRead
	return insight, nil
}

func (s *lifecycleService) MoveToReview(ctx context.Context, id uuid.UUID) error {
	if err := s.insightRepo.UpdateStatus(ctx, nil, id, types.StatusInReview); err != nil {
		return fmt.Errorf("move to review: %w", err)
	}
	return nil
}

func (s *lifecycleService) ShareToWorkspace(ctx context.Context, insightID, workspaceID uuid.UUID, tags []string, note string) (*types.WorkspaceInsight, error) {
	if _, err := s.workspaceRepo.GetByID(ctx, nil, workspaceID); err != nil {
		return nil, fmt.Errorf("share target: %w", err)
	}

	if err := s.MoveToReview(ctx, insightID); err != nil {
		return nil, err
	}

	share := &types.WorkspaceInsight{
		ID:          uuid.New(),
		WorkspaceID: workspaceID,
		InsightID:   insightID,
		Note:        note,
	}
	if len(tags) > 0 {
		raw, err := json.Marshal(tags)
		if err != nil {
			return nil, fmt.Errorf("encode share tags: %w", err)
		}
		share.Tags = datatypes.JSON(raw)
	}

	if _, err := s.shareRepo.Create(ctx, nil, []*types.WorkspaceInsight{share}); err != nil {
		// Status already moved; the share row is missing. Recoverable by
		// retrying the share, so report it rather than failing silently.
		s.log.Warn("share record write failed after status transition",
			"insight_id", insightID, "workspace_id", workspaceID, "error", err)
		return nil, fmt.Errorf("create share record: %w", err)
	}
	return share, nil
}

func (s *lifecycleService) ApplyExternalStatus(ctx context.Context, id uuid.UUID, rawStatus string) error {
	status, err := types.ParseStatus(rawStatus)
	if err != nil {
		return err
	}
	if err := s.insightRepo.UpdateStatus(ctx, nil, id, status); err != nil {
		return fmt.Errorf("apply external status: %w", err)
	}
	return nil
}
