package app

import (
	"gorm.io/gorm"

	redisclient "github.com/harborview/insightdeck-backend/internal/clients/redis"
	"github.com/harborview/insightdeck-backend/internal/logger"
	"github.com/harborview/insightdeck-backend/internal/services"
)

type Services struct {
	Metrics    services.MetricsService
	Trend      services.TrendService
	Lifecycle  services.LifecycleService
	Importance services.ImportanceService
	Theme      services.ThemeService
	Insight    services.InsightService
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, reposet Repos, store redisclient.ImportanceStore) Services {
	log.Info("Wiring services...")

	metrics := services.NewMetricsService(db, log, reposet.Insight, reposet.ThemeInsight, reposet.CustomerImpact)
	trend := services.NewTrendService(db, log, cfg.Trend, reposet.Theme, reposet.Insight, reposet.ThemeInsight, reposet.CustomerImpact)
	lifecycle := services.NewLifecycleService(db, log, reposet.Insight, reposet.Workspace, reposet.WorkspaceInsight)
	importance := services.NewImportanceService(db, log, store, reposet.Insight, lifecycle)
	theme := services.NewThemeService(db, log, reposet.Theme, reposet.ThemeInsight, reposet.Insight)
	insight := services.NewInsightService(db, log, reposet.Insight, importance)

	return Services{
		Metrics:    metrics,
		Trend:      trend,
		Lifecycle:  lifecycle,
		Importance: importance,
		Theme:      theme,
		Insight:    insight,
	}
}
