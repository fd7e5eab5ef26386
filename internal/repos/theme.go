package repos

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/harborview/insightdeck-backend/internal/logger"
	"github.com/harborview/insightdeck-backend/internal/types"
)

type ThemeRepo interface {
	Create(ctx context.Context, tx *gorm.DB, rows []*types.Theme) ([]*types.Theme, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Theme, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.Theme, error)
	List(ctx context.Context, tx *gorm.DB, includeArchived bool) ([]*types.Theme, error)
	Update(ctx context.Context, tx *gorm.DB, row *types.Theme) error
	UpsertPriority(ctx context.Context, tx *gorm.DB, id uuid.UUID, score int) error
	SetStatus(ctx context.Context, tx *gorm.DB, id uuid.UUID, status types.ThemeStatus) error
	FullDeleteByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) error
}

type themeRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewThemeRepo(db *gorm.DB, baseLog *logger.Logger) ThemeRepo {
	return &themeRepo{db: db, log: baseLog.With("repo", "ThemeRepo")}
}

func (r *themeRepo) Create(ctx context.Context, tx *gorm.DB, rows []*types.Theme) ([]*types.Theme, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(rows) == 0 {
		return []*types.Theme{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *themeRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Theme, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var row types.Theme
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

func (r *themeRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.Theme, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.Theme
	if len(ids) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *themeRepo) List(ctx context.Context, tx *gorm.DB, includeArchived bool) ([]*types.Theme, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	q := transaction.WithContext(ctx).Model(&types.Theme{})
	if !includeArchived {
		q = q.Where("status = ?", types.ThemeStatusActive)
	}

	var results []*types.Theme
	if err := q.Order("priority_score DESC, created_at DESC").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *themeRepo) Update(ctx context.Context, tx *gorm.DB, row *types.Theme) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if row == nil {
		return nil
	}

	if err := transaction.WithContext(ctx).Save(row).Error; err != nil {
		return err
	}
	return nil
}

func (r *themeRepo) UpsertPriority(ctx context.Context, tx *gorm.DB, id uuid.UUID, score int) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	res := transaction.WithContext(ctx).
		Model(&types.Theme{}).
		Where("id = ?", id).
		Updates(map[string]any{"priority_score": score, "updated_at": time.Now().UTC()})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *themeRepo) SetStatus(ctx context.Context, tx *gorm.DB, id uuid.UUID, status types.ThemeStatus) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	res := transaction.WithContext(ctx).
		Model(&types.Theme{}).
		Where("id = ?", id).
		Updates(map[string]any{"status": status, "updated_at": time.Now().UTC()})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *themeRepo) FullDeleteByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(ids) == 0 {
		return nil
	}

	return transaction.WithContext(ctx).
		Unscoped().
		Where("id IN ?", ids).
		Delete(&types.Theme{}).Error
}
