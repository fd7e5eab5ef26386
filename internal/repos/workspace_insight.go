package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/harborview/insightdeck-backend/internal/logger"
	"github.com/harborview/insightdeck-backend/internal/types"
)

type WorkspaceInsightRepo interface {
	Create(ctx context.Context, tx *gorm.DB, rows []*types.WorkspaceInsight) ([]*types.WorkspaceInsight, error)
	GetByWorkspaceIDs(ctx context.Context, tx *gorm.DB, workspaceIDs []uuid.UUID) ([]*types.WorkspaceInsight, error)
	GetByInsightIDs(ctx context.Context, tx *gorm.DB, insightIDs []uuid.UUID) ([]*types.WorkspaceInsight, error)
	FullDeleteByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) error
}

type workspaceInsightRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewWorkspaceInsightRepo(db *gorm.DB, baseLog *logger.Logger) WorkspaceInsightRepo {
	return &workspaceInsightRepo{db: db, log: baseLog.With("repo", "WorkspaceInsightRepo")}
}

func (r *workspaceInsightRepo) Create(ctx context.Context, tx *gorm.DB, rows []*types.WorkspaceInsight) ([]*types.WorkspaceInsight, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(rows) == 0 {
		return []*types.WorkspaceInsight{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *workspaceInsightRepo) GetByWorkspaceIDs(ctx context.Context, tx *gorm.DB, workspaceIDs []uuid.UUID) ([]*types.WorkspaceInsight, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.WorkspaceInsight
	if len(workspaceIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("workspace_id IN ?", workspaceIDs).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *workspaceInsightRepo) GetByInsightIDs(ctx context.Context, tx *gorm.DB, insightIDs []uuid.UUID) ([]*types.WorkspaceInsight, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.WorkspaceInsight
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

func (r *workspaceInsightRepo) FullDeleteByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(ids) == 0 {
		return nil
	}

	return transaction.WithContext(ctx).
		Where("id IN ?", ids).
		Delete(&types.WorkspaceInsight{}).Error
}
