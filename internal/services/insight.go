package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/harborview/insightdeck-backend/internal/logger"
	"github.com/harborview/insightdeck-backend/internal/repos"
	"github.com/harborview/insightdeck-backend/internal/types"
)

// InsightService is the read side of the insight surface: filtered listing
// annotated with overlay membership. Status mutations go through
// LifecycleService.
type InsightService interface {
	List(ctx context.Context, filter repos.InsightFilter) ([]AnnotatedInsight, error)
	Get(ctx context.Context, id uuid.UUID) (*AnnotatedInsight, error)
}

type insightService struct {
	db          *gorm.DB
	log         *logger.Logger
	insightRepo repos.InsightRepo
	importance  ImportanceService
}

func NewInsightService(
	db *gorm.DB,
	baseLog *logger.Logger,
	insightRepo repos.InsightRepo,
	importance ImportanceService,
) InsightService {
	return &insightService{
		db:          db,
		log:         baseLog.With("service", "InsightService"),
		insightRepo: insightRepo,
		importance:  importance,
	}
}

func (s *insightService) List(ctx context.Context, filter repos.InsightFilter) ([]AnnotatedInsight, error) {
	insights, err := s.insightRepo.List(ctx, nil, filter)
	if err != nil {
		return nil, fmt.Errorf("%w: list insights: %v", ErrQueryFailed, err)
	}
	return s.importance.Annotate(ctx, insights)
}

func (s *insightService) Get(ctx context.Context, id uuid.UUID) (*AnnotatedInsight, error) {
	insight, err := s.insightRepo.GetByID(ctx, nil, id)
	if err != nil {
		return nil, err
	}
	annotated, err := s.importance.Annotate(ctx, []*types.Insight{insight})
	if err != nil {
		return nil, err
	}
	return &annotated[0], nil
}
