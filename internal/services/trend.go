package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/harborview/insightdeck-backend/internal/config"
	"github.com/harborview/insightdeck-backend/internal/logger"
	"github.com/harborview/insightdeck-backend/internal/repos"
	"github.com/harborview/insightdeck-backend/internal/types"
)

// saturatedPercent is the indicator value emitted by single-insight recency
// trends, which have no ratio to report.
const saturatedPercent = 100

// ComputeThemeTrend computes the ratio-mode trend for a set of insights
// belonging to one subject (a theme). The week-over-week percentage is the
// observed share of insights created inside the week window, measured against
// the configured baseline share; month-over-month is analogous. ACV and
// customer figures compose AggregateMetrics.
func ComputeThemeTrend(
	cfg config.TrendConfig,
	subjectID uuid.UUID,
	name string,
	insights []*types.Insight,
	impacts []*types.CustomerImpact,
	now time.Time,
) types.TrendRecord {
	rec := types.TrendRecord{
		SubjectID:    subjectID,
		Name:         name,
		OverallTrend: types.TrendFlat,
	}

	m := AggregateMetrics(insights, impacts)
	rec.TotalACVImpact = m.TotalACV
	rec.UniqueCustomers = m.UniqueCustomers

	total := len(insights)
	if total == 0 {
		return rec
	}

	weekAgo := now.AddDate(0, 0, -cfg.WeekWindowDays)
	monthAgo := now.AddDate(0, 0, -cfg.MonthWindowDays)

	recentCount, monthCount := 0, 0
	for _, ins := range insights {
		if !ins.CreatedAt.Before(weekAgo) {
			recentCount++
		}
		if !ins.CreatedAt.Before(monthAgo) {
			monthCount++
		}
	}

	rec.WoWPercent = (float64(recentCount)/float64(total) - cfg.BaselineWeek) * 100
	rec.MoMPercent = (float64(monthCount)/float64(total) - cfg.BaselineMonth) * 100
	rec.OverallTrend = classifyTrend(rec.WoWPercent, cfg.FlatBandPercent)
	return rec
}

// ComputeInsightTrend computes the recency-mode trend for a single insight:
// up inside the week window, flat inside the month window, down beyond it.
// The percentages are saturating indicators, not ratios.
func ComputeInsightTrend(
	cfg config.TrendConfig,
	insight *types.Insight,
	impacts []*types.CustomerImpact,
	now time.Time,
) types.TrendRecord {
	rec := types.TrendRecord{
		SubjectID: insight.ID,
		Name:      insight.Content,
	}

	m := AggregateMetrics([]*types.Insight{insight}, impacts)
	rec.TotalACVImpact = m.TotalACV
	rec.UniqueCustomers = m.UniqueCustomers

	age := now.Sub(insight.CreatedAt)
	switch {
	case age <= time.Duration(cfg.WeekWindowDays)*24*time.Hour:
		rec.OverallTrend = types.TrendUp
		rec.WoWPercent = saturatedPercent
		rec.MoMPercent = saturatedPercent
	case age <= time.Duration(cfg.MonthWindowDays)*24*time.Hour:
		rec.OverallTrend = types.TrendFlat
		rec.WoWPercent = 0
		rec.MoMPercent = saturatedPercent
	default:
		rec.OverallTrend = types.TrendDown
		rec.WoWPercent = -saturatedPercent
		rec.MoMPercent = -saturatedPercent
	}
	return rec
}

func classifyTrend(wowPercent, flatBand float64) types.TrendDirection {
	switch {
	case wowPercent > flatBand:
		return types.TrendUp
	case wowPercent < -flatBand:
		return types.TrendDown
	default:
		return types.TrendFlat
	}
}

type TrendService interface {
	ThemeTrends(ctx context.Context) ([]types.TrendRecord, error)
	InsightTrend(ctx context.Context, insightID uuid.UUID) (*types.TrendRecord, error)
}

type trendService struct {
	db          *gorm.DB
	log         *logger.Logger
	cfg         config.TrendConfig
	themeRepo   repos.ThemeRepo
	insightRepo repos.InsightRepo
	linkRepo    repos.ThemeInsightRepo
	impactRepo  repos.CustomerImpactRepo
	now         func() time.Time
}

func NewTrendService(
	db *gorm.DB,
	baseLog *logger.Logger,
	cfg config.TrendConfig,
	themeRepo repos.ThemeRepo,
	insightRepo repos.InsightRepo,
	linkRepo repos.ThemeInsightRepo,
	impactRepo repos.CustomerImpactRepo,
) TrendService {
	return &trendService{
		db:          db,
		log:         baseLog.With("service", "TrendService"),
		cfg:         cfg,
		themeRepo:   themeRepo,
		insightRepo: insightRepo,
		linkRepo:    linkRepo,
		impactRepo:  impactRepo,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (s *trendService) ThemeTrends(ctx context.Context) ([]types.TrendRecord, error) {
	var (
		themes   []*types.Theme
		links    []*types.ThemeInsight
		insights []*types.Insight
		impacts  []*types.CustomerImpact
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		themes, err = s.themeRepo.List(gctx, nil, false)
		return err
	})
	g.Go(func() error {
		var err error
		links, err = s.linkRepo.GetAll(gctx, nil)
		return err
	})
	g.Go(func() error {
		var err error
		insights, err = s.insightRepo.List(gctx, nil, repos.InsightFilter{})
		return err
	})
	g.Go(func() error {
		var err error
		impacts, err = s.impactRepo.GetAll(gctx, nil)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQueryFailed, err)
	}

	insightsByID := make(map[uuid.UUID]*types.Insight, len(insights))
	for _, ins := range insights {
		insightsByID[ins.ID] = ins
	}
	impactsByInsight := make(map[uuid.UUID][]*types.CustomerImpact)
	for _, imp := range impacts {
		impactsByInsight[imp.InsightID] = append(impactsByInsight[imp.InsightID], imp)
	}

	perTheme := make(map[uuid.UUID][]*types.Insight)
	skipped := 0
	for _, link := range links {
		ins, ok := insightsByID[link.InsightID]
		if !ok {
			skipped++
			continue
		}
		perTheme[link.ThemeID] = append(perTheme[link.ThemeID], ins)
	}
	if skipped > 0 {
		s.log.Warn("skipped dangling theme links", "count", skipped)
	}

	now := s.now()
	records := make([]types.TrendRecord, 0, len(themes))
	for _, theme := range themes {
		themeInsights := perTheme[theme.ID]
		var themeImpacts []*types.CustomerImpact
		for _, ins := range themeInsights {
			themeImpacts = append(themeImpacts, impactsByInsight[ins.ID]...)
		}
		records = append(records, ComputeThemeTrend(s.cfg, theme.ID, theme.Name, themeInsights, themeImpacts, now))
	}
	return records, nil
}

func (s *trendService) InsightTrend(ctx context.Context, insightID uuid.UUID) (*types.TrendRecord, error) {
	insight, err := s.insightRepo.GetByID(ctx, nil, insightID)
	if err != nil {
		if errors.Is(err, repos.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: fetch insight: %v", ErrQueryFailed, err)
	}
	impacts, err := s.impactRepo.GetByInsightIDs(ctx, nil, []uuid.UUID{insightID})
	if err != nil {
		return nil, fmt.Errorf("%w: fetch customer impacts: %v", ErrQueryFailed, err)
	}

	rec := ComputeInsightTrend(s.cfg, insight, impacts, s.now())
	return &rec, nil
}
