package repos

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/harborview/insightdeck-backend/internal/logger"
	"github.com/harborview/insightdeck-backend/internal/types"
)

type WorkspaceRepo interface {
	Create(ctx context.Context, tx *gorm.DB, rows []*types.Workspace) ([]*types.Workspace, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Workspace, error)
	List(ctx context.Context, tx *gorm.DB) ([]*types.Workspace, error)
}

type workspaceRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewWorkspaceRepo(db *gorm.DB, baseLog *logger.Logger) WorkspaceRepo {
	return &workspaceRepo{db: db, log: baseLog.With("repo", "WorkspaceRepo")}
}

func (r *workspaceRepo) Create(ctx context.Context, tx *gorm.DB, rows []*types.Workspace) ([]*types.Workspace, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(rows) == 0 {
		return []*types.Workspace{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *workspaceRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Workspace, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var row types.Workspace
	if err := transaction.WithContext(ctx).
		Where("id = ?", id).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &row, nil
}

func (r *workspaceRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.Workspace, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.Workspace
	if err := transaction.WithContext(ctx).Order("created_at DESC").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
