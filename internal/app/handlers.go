package app

import (
	"gorm.io/gorm"

	"github.com/harborview/insightdeck-backend/internal/handlers"
	"github.com/harborview/insightdeck-backend/internal/logger"
)

type Handlers struct {
	Insight    *handlers.InsightHandler
	Theme      *handlers.ThemeHandler
	Dashboard  *handlers.DashboardHandler
	Importance *handlers.ImportanceHandler
	Workspace  *handlers.WorkspaceHandler
}

func wireHandlers(db *gorm.DB, log *logger.Logger, services Services, reposet Repos) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Insight:    handlers.NewInsightHandler(services.Insight, services.Lifecycle),
		Theme:      handlers.NewThemeHandler(services.Theme, services.Metrics),
		Dashboard:  handlers.NewDashboardHandler(services.Metrics, services.Trend),
		Importance: handlers.NewImportanceHandler(services.Importance),
		Workspace:  handlers.NewWorkspaceHandler(db, reposet.Workspace, reposet.WorkspaceInsight),
	}
}
