package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/harborview/insightdeck-backend/internal/logger"
	"github.com/harborview/insightdeck-backend/internal/types"
)

type CustomerImpactRepo interface {
	Create(ctx context.Context, tx *gorm.DB, rows []*types.CustomerImpact) ([]*types.CustomerImpact, error)
	GetByInsightIDs(ctx context.Context, tx *gorm.DB, insightIDs []uuid.UUID) ([]*types.CustomerImpact, error)
	GetAll(ctx context.Context, tx *gorm.DB) ([]*types.CustomerImpact, error)
}

type customerImpactRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCustomerImpactRepo(db *gorm.DB, baseLog *logger.Logger) CustomerImpactRepo {
	return &customerImpactRepo{db: db, log: baseLog.With("repo", "CustomerImpactRepo")}
}

func (r *customerImpactRepo) Create(ctx context.Context, tx *gorm.DB, rows []*types.CustomerImpact) ([]*types.CustomerImpact, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(rows) == 0 {
		return []*types.CustomerImpact{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *customerImpactRepo) GetByInsightIDs(ctx context.Context, tx *gorm.DB, insightIDs []uuid.UUID) ([]*types.CustomerImpact, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.CustomerImpact
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

func (r *customerImpactRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*types.CustomerImpact, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.CustomerImpact
	if err := transaction.WithContext(ctx).Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
