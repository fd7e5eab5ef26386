package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/harborview/insightdeck-backend/internal/logger"
	"github.com/harborview/insightdeck-backend/internal/types"
)

type ThemeInsightRepo interface {
	Create(ctx context.Context, tx *gorm.DB, rows []*types.ThemeInsight) ([]*types.ThemeInsight, error)
	GetAll(ctx context.Context, tx *gorm.DB) ([]*types.ThemeInsight, error)
	GetByThemeIDs(ctx context.Context, tx *gorm.DB, themeIDs []uuid.UUID) ([]*types.ThemeInsight, error)
	GetByInsightIDs(ctx context.Context, tx *gorm.DB, insightIDs []uuid.UUID) ([]*types.ThemeInsight, error)
	DeleteByThemeIDs(ctx context.Context, tx *gorm.DB, themeIDs []uuid.UUID) error
	DeleteLink(ctx context.Context, tx *gorm.DB, themeID, insightID uuid.UUID) error
}

type themeInsightRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewThemeInsightRepo(db *gorm.DB, baseLog *logger.Logger) ThemeInsightRepo {
	return &themeInsightRepo{db: db, log: baseLog.With("repo", "ThemeInsightRepo")}
}

func (r *themeInsightRepo) Create(ctx context.Context, tx *gorm.DB, rows []*types.ThemeInsight) ([]*types.ThemeInsight, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(rows) == 0 {
		return []*types.ThemeInsight{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *themeInsightRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*types.ThemeInsight, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.ThemeInsight
	if err := transaction.WithContext(ctx).Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *themeInsightRepo) GetByThemeIDs(ctx context.Context, tx *gorm.DB, themeIDs []uuid.UUID) ([]*types.ThemeInsight, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.ThemeInsight
	if len(themeIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("theme_id IN ?", themeIDs).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *themeInsightRepo) GetByInsightIDs(ctx context.Context, tx *gorm.DB, insightIDs []uuid.UUID) ([]*types.ThemeInsight, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.ThemeInsight
	if len(insightIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("insight_id IN ?", insightIDs).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *themeInsightRepo) DeleteByThemeIDs(ctx context.Context, tx *gorm.DB, themeIDs []uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(themeIDs) == 0 {
		return nil
	}

	return transaction.WithContext(ctx).
		Where("theme_id IN ?", themeIDs).
		Delete(&types.ThemeInsight{}).Error
}

func (r *themeInsightRepo) DeleteLink(ctx context.Context, tx *gorm.DB, themeID, insightID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	return transaction.WithContext(ctx).
		Where("theme_id = ? AND insight_id = ?", themeID, insightID).
		Delete(&types.ThemeInsight{}).Error
}
