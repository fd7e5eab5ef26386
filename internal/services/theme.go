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

type CreateThemeInput struct {
	Name            string `json:"name"`
	Description     string `json:"description"`
	PriorityScore   int    `json:"priority_score"`
	IsAutoGenerated bool   `json:"is_auto_generated"`
}

type UpdateThemeInput struct {
	Name          *string `json:"name"`
	Description   *string `json:"description"`
	PriorityScore *int    `json:"priority_score"`
}

type ThemeService interface {
	Create(ctx context.Context, in CreateThemeInput) (*types.Theme, error)
	Update(ctx context.Context, id uuid.UUID, in UpdateThemeInput) (*types.Theme, error)
	List(ctx context.Context, includeArchived bool) ([]*types.Theme, error)
	// Delete removes the theme and its insight links. Linked insights are
	// never deleted, only the association.
	Delete(ctx context.Context, id uuid.UUID) error
	Archive(ctx context.Context, id uuid.UUID) error
	// TagAsCritical pins the theme's priority score to the maximum.
	TagAsCritical(ctx context.Context, id uuid.UUID) error
	LinkInsight(ctx context.Context, themeID, insightID uuid.UUID) error
	UnlinkInsight(ctx context.Context, themeID, insightID uuid.UUID) error
}

type themeService struct {
	db          *gorm.DB
	log         *logger.Logger
	themeRepo   repos.ThemeRepo
	linkRepo    repos.ThemeInsightRepo
	insightRepo repos.InsightRepo
}

func NewThemeService(
	db *gorm.DB,
	baseLog *logger.Logger,
	themeRepo repos.ThemeRepo,
	linkRepo repos.ThemeInsightRepo,
	insightRepo repos.InsightRepo,
) ThemeService {
	return &themeService{
		db:          db,
		log:         baseLog.With("service", "ThemeService"),
		themeRepo:   themeRepo,
		linkRepo:    linkRepo,
		insightRepo: insightRepo,
	}
}

func (s *themeService) Create(ctx context.Context, in CreateThemeInput) (*types.Theme, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("theme name required")
	}
	if in.PriorityScore < 0 || in.PriorityScore > types.CriticalPriority {
		return nil, fmt.Errorf("priority score must be in [0,%d]", types.CriticalPriority)
	}

	theme := &types.Theme{
		ID:              uuid.New(),
		Name:            in.Name,
		Description:     in.Description,
		PriorityScore:   in.PriorityScore,
		Status:          types.ThemeStatusActive,
		IsAutoGenerated: in.IsAutoGenerated,
	}
	if _, err := s.themeRepo.Create(ctx, nil, []*types.Theme{theme}); err != nil {
		return nil, fmt.Errorf("create theme: %w", err)
	}
	return theme, nil
}

func (s *themeService) Update(ctx context.Context, id uuid.UUID, in UpdateThemeInput) (*types.Theme, error) {
	theme, err := s.themeRepo.GetByID(ctx, nil, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		theme.Name = *in.Name
	}
	if in.Description != nil {
		theme.Description = *in.Description
	}
	if in.PriorityScore != nil {
		if *in.PriorityScore < 0 || *in.PriorityScore > types.CriticalPriority {
			return nil, fmt.Errorf("priority score must be in [0,%d]", types.CriticalPriority)
		}
		theme.PriorityScore = *in.PriorityScore
	}

	if err := s.themeRepo.Update(ctx, nil, theme); err != nil {
		return nil, fmt.Errorf("update theme: %w", err)
	}
	return theme, nil
}

func (s *themeService) List(ctx context.Context, includeArchived bool) ([]*types.Theme, error) {
	return s.themeRepo.List(ctx, nil, includeArchived)
}

func (s *themeService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.linkRepo.DeleteByThemeIDs(ctx, nil, []uuid.UUID{id}); err != nil {
		return fmt.Errorf("unlink theme insights: %w", err)
	}
	if err := s.themeRepo.FullDeleteByIDs(ctx, nil, []uuid.UUID{id}); err != nil {
		return fmt.Errorf("delete theme: %w", err)
	}
	return nil
}

func (s *themeService) Archive(ctx context.Context, id uuid.UUID) error {
	return s.themeRepo.SetStatus(ctx, nil, id, types.ThemeStatusArchived)
}

func (s *themeService) TagAsCritical(ctx context.Context, id uuid.UUID) error {
	return s.themeRepo.UpsertPriority(ctx, nil, id, types.CriticalPriority)
}

func (s *themeService) LinkInsight(ctx context.Context, themeID, insightID uuid.UUID) error {
	if _, err := s.insightRepo.GetByID(ctx, nil, insightID); err != nil {
		return fmt.Errorf("link insight: %w", err)
	}
	if _, err := s.themeRepo.GetByID(ctx, nil, themeID); err != nil {
		return fmt.Errorf("link theme: %w", err)
	}

	link := &types.ThemeInsight{ID: uuid.New(), ThemeID: themeID, InsightID: insightID}
	if _, err := s.linkRepo.Create(ctx, nil, []*types.ThemeInsight{link}); err != nil {
		return fmt.Errorf("create theme link: %w", err)
	}
	return nil
}

func (s *themeService) UnlinkInsight(ctx context.Context, themeID, insightID uuid.UUID) error {
	return s.linkRepo.DeleteLink(ctx, nil, themeID, insightID)
}
