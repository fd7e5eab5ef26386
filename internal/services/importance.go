package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	redisclient "github.com/harborview/insightdeck-backend/internal/clients/redis"
	"github.com/harborview/insightdeck-backend/internal/logger"
	"github.com/harborview/insightdeck-backend/internal/repos"
	"github.com/harborview/insightdeck-backend/internal/types"
)

// AnnotatedInsight decorates an insight with overlay membership at query
// time. Importance is never denormalized onto the insight record.
type AnnotatedInsight struct {
	*types.Insight
	Important bool `json:"important"`
}

// ImportanceService maintains the overlay set of important insights. The set
// lives in its own store, not on the insight's status field, though marking
// conventionally promotes the insight to in_review as a side effect.
type ImportanceService interface {
	Mark(ctx context.Context, id uuid.UUID) error
	Unmark(ctx context.Context, id uuid.UUID) error
	IsImportant(ctx context.Context, id uuid.UUID) (bool, error)
	List(ctx context.Context) ([]uuid.UUID, error)
	Annotate(ctx context.Context, insights []*types.Insight) ([]AnnotatedInsight, error)
}

type importanceService struct {
	db          *gorm.DB
	log         *logger.Logger
	store       redisclient.ImportanceStore
	insightRepo repos.InsightRepo
	lifecycle   LifecycleService
}

func NewImportanceService(
	db *gorm.DB,
	baseLog *logger.Logger,
	store redisclient.ImportanceStore,
	insightRepo repos.InsightRepo,
	lifecycle LifecycleService,
) ImportanceService {
	return &importanceService{
		db:          db,
		log:         baseLog.With("service", "ImportanceService"),
		store:       store,
		insightRepo: insightRepo,
		lifecycle:   lifecycle,
	}
}

func (s *importanceService) Mark(ctx context.Context, id uuid.UUID) error {
	if err := s.store.Add(ctx, id); err != nil {
		return fmt.Errorf("mark important: %w", err)
	}

	insight, err := s.insightRepo.GetByID(ctx, nil, id)
	if err != nil {
		// The overlay mark stays: the two stores are independent and the
		// local mark is not rolled back on a record-store failure.
		s.log.Warn("importance marked but insight lookup failed", "insight_id", id, "error", err)
		return fmt.Errorf("promote marked insight: %w", err)
	}
	if insight.Status == types.StatusInReview {
		return nil
	}
	if err := s.lifecycle.MoveToReview(ctx, id); err != nil {
		s.log.Warn("importance marked but status transition failed", "insight_id", id, "error", err)
		return fmt.Errorf("promote marked insight: %w", err)
	}
	return nil
}

// Unmark removes the overlay mark only. The insight's status never regresses.
func (s *importanceService) Unmark(ctx context.Context, id uuid.UUID) error {
	if err := s.store.Remove(ctx, id); err != nil {
		return fmt.Errorf("unmark important: %w", err)
	}
	return nil
}

func (s *importanceService) IsImportant(ctx context.Context, id uuid.UUID) (bool, error) {
	return s.store.Contains(ctx, id)
}

func (s *importanceService) List(ctx context.Context) ([]uuid.UUID, error) {
	return s.store.List(ctx)
}

func (s *importanceService) Annotate(ctx context.Context, insights []*types.Insight) ([]AnnotatedInsight, error) {
	marked, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load importance set: %w", err)
	}
	markedSet := make(map[uuid.UUID]struct{}, len(marked))
	for _, id := range marked {
		markedSet[id] = struct{}{}
	}

	out := make([]AnnotatedInsight, 0, len(insights))
	for _, ins := range insights {
		_, important := markedSet[ins.ID]
		out = append(out, AnnotatedInsight{Insight: ins, Important: important})
	}
	return out, nil
}
