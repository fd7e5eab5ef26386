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

var ErrNotFound = errors.New("record not found")

// InsightFilter composes an insight query from optional, statically-typed
// clauses. Zero-value fields are not applied.
type InsightFilter struct {
	CreatedFrom *time.Time
	CreatedTo   *time.Time
	Sources     []types.Source
	Sentiments  []types.Sentiment
	Statuses    []types.Status
}

type InsightRepo interface {
	Create(ctx context.Context, tx *gorm.DB, rows []*types.Insight) ([]*types.Insight, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Insight, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.Insight, error)
	List(ctx context.Context, tx *gorm.DB, filter InsightFilter) ([]*types.Insight, error)
	UpdateStatus(ctx context.Context, tx *gorm.DB, id uuid.UUID, status types.Status) error
}

type insightRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewInsightRepo(db *gorm.DB, baseLog *logger.Logger) InsightRepo {
	return &insightRepo{db: db, log: baseLog.With("repo", "InsightRepo")}
}

func (r *insightRepo) Create(ctx context.Context, tx *gorm.DB, rows []*types.Insight) ([]*types.Insight, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(rows) == 0 {
		return []*types.Insight{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *insightRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Insight, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var row types.Insight
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

func (r *insightRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.Insight, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.Insight
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

func (r *insightRepo) List(ctx context.Context, tx *gorm.DB, filter InsightFilter) ([]*types.Insight, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	q := transaction.WithContext(ctx).Model(&types.Insight{})
	if filter.CreatedFrom != nil {
		q = q.Where("created_at >= ?", *filter.CreatedFrom)
	}
	if filter.CreatedTo != nil {
		q = q.Where("created_at < ?", *filter.CreatedTo)
	}
	if len(filter.Sources) > 0 {
		q = q.Where("source IN ?", filter.Sources)
	}
	if len(filter.Sentiments) > 0 {
		q = q.Where("sentiment IN ?", filter.Sentiments)
	}
	if len(filter.Statuses) > 0 {
		q = q.Where("status IN ?", filter.Statuses)
	}

	var results []*types.Insight
	if err := q.Order("created_at DESC").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// UpdateStatus is a single atomic write keyed by insight id. Concurrent
// writers are last-write-wins; the status column carries no causal metadata.
func (r *insightRepo) UpdateStatus(ctx context.Context, tx *gorm.DB, id uuid.UUID, status types.Status) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	res := transaction.WithContext(ctx).
		Model(&types.Insight{}).
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
