package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/harborview/insightdeck-backend/internal/logger"
	"github.com/harborview/insightdeck-backend/internal/repos"
	"github.com/harborview/insightdeck-backend/internal/types"
)

// ErrQueryFailed marks a record-store fetch failure. Callers must distinguish
// it from a legitimately empty result: aggregation never silently reports
// zeros for a failed fetch.
var ErrQueryFailed = errors.New("record store query failed")

// AggregateMetrics computes the roll-up for one set of insights with their
// attached customer impacts. Mentions count each insight once, ACV is additive
// across (insight, customer) pairs, and unique customers deduplicate by
// customer id. Impacts whose insight is not in the set are ignored.
func AggregateMetrics(insights []*types.Insight, impacts []*types.CustomerImpact) types.ThemeMetrics {
	m := types.ThemeMetrics{TotalMentions: len(insights)}

	inSet := make(map[uuid.UUID]struct{}, len(insights))
	for _, ins := range insights {
		inSet[ins.ID] = struct{}{}
	}

	customers := make(map[uuid.UUID]struct{})
	for _, imp := range impacts {
		if _, ok := inSet[imp.InsightID]; !ok {
			continue
		}
		m.TotalACV += imp.ACVImpact
		customers[imp.CustomerID] = struct{}{}
	}
	m.UniqueCustomers = len(customers)
	return m
}

// GroupThemeMetrics fans insight metrics out to every linked theme: an
// insight linked to N themes contributes once to each of the N roll-ups.
// Links referencing a missing insight are skipped and counted.
func GroupThemeMetrics(
	links []*types.ThemeInsight,
	insightsByID map[uuid.UUID]*types.Insight,
	impactsByInsight map[uuid.UUID][]*types.CustomerImpact,
) (map[uuid.UUID]*types.ThemeMetrics, int) {
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

	out := make(map[uuid.UUID]*types.ThemeMetrics, len(perTheme))
	for themeID, insights := range perTheme {
		var impacts []*types.CustomerImpact
		for _, ins := range insights {
			impacts = append(impacts, impactsByInsight[ins.ID]...)
		}
		m := AggregateMetrics(insights, impacts)
		m.ThemeID = themeID
		out[themeID] = &m
	}
	return out, skipped
}

// DashboardMetrics is the all-themes roll-up plus the malformed-link counter
// kept for observability.
type DashboardMetrics struct {
	PerTheme     map[uuid.UUID]*types.ThemeMetrics `json:"per_theme"`
	SkippedLinks int                               `json:"skipped_links"`
}

type MetricsService interface {
	ThemeMetrics(ctx context.Context, themeID uuid.UUID) (*types.ThemeMetrics, error)
	AllThemeMetrics(ctx context.Context) (*DashboardMetrics, error)
}

type metricsService struct {
	db          *gorm.DB
	log         *logger.Logger
	insightRepo repos.InsightRepo
	linkRepo    repos.ThemeInsightRepo
	impactRepo  repos.CustomerImpactRepo
}

func NewMetricsService(
	db *gorm.DB,
	baseLog *logger.Logger,
	insightRepo repos.InsightRepo,
	linkRepo repos.ThemeInsightRepo,
	impactRepo repos.CustomerImpactRepo,
) MetricsService {
	return &metricsService{
		db:          db,
		log:         baseLog.With("service", "MetricsService"),
		insightRepo: insightRepo,
		linkRepo:    linkRepo,
		impactRepo:  impactRepo,
	}
}

func (s *metricsService) ThemeMetrics(ctx context.Context, themeID uuid.UUID) (*types.ThemeMetrics, error) {
	links, err := s.linkRepo.GetByThemeIDs(ctx, nil, []uuid.UUID{themeID})
	if err != nil {
		return nil, fmt.Errorf("%w: fetch theme links: %v", ErrQueryFailed, err)
	}

	insightIDs := make([]uuid.UUID, 0, len(links))
	for _, link := range links {
		insightIDs = append(insightIDs, link.InsightID)
	}

	insights, err := s.insightRepo.GetByIDs(ctx, nil, insightIDs)
	if err != nil {
		return nil, fmt.Errorf("%w: fetch insights: %v", ErrQueryFailed, err)
	}
	impacts, err := s.impactRepo.GetByInsightIDs(ctx, nil, insightIDs)
	if err != nil {
		return nil, fmt.Errorf("%w: fetch customer impacts: %v", ErrQueryFailed, err)
	}

	if skipped := len(links) - len(insights); skipped > 0 {
		s.log.Warn("skipped dangling theme links", "theme_id", themeID, "count", skipped)
	}

	m := AggregateMetrics(insights, impacts)
	m.ThemeID = themeID
	return &m, nil
}

func (s *metricsService) AllThemeMetrics(ctx context.Context) (*DashboardMetrics, error) {
	var (
		links    []*types.ThemeInsight
		insights []*types.Insight
		impacts  []*types.CustomerImpact
	)

	g, gctx := errgroup.WithContext(ctx)
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
	impactsByInsight := make(map[uuid.UUID][]*types.CustomerImpact, len(insights))
	for _, imp := range impacts {
		impactsByInsight[imp.InsightID] = append(impactsByInsight[imp.InsightID], imp)
	}

	perTheme, skipped := GroupThemeMetrics(links, insightsByID, impactsByInsight)
	if skipped > 0 {
		s.log.Warn("skipped dangling theme links", "count", skipped)
	}
	return &DashboardMetrics{PerTheme: perTheme, SkippedLinks: skipped}, nil
}
