package app

import (
	"gorm.io/gorm"

	"github.com/harborview/insightdeck-backend/internal/logger"
	"github.com/harborview/insightdeck-backend/internal/repos"
)

type Repos struct {
	Insight          repos.InsightRepo
	Theme            repos.ThemeRepo
	ThemeInsight     repos.ThemeInsightRepo
	CustomerImpact   repos.CustomerImpactRepo
	Workspace        repos.WorkspaceRepo
	WorkspaceInsight repos.WorkspaceInsightRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Insight:          repos.NewInsightRepo(db, log),
		Theme:            repos.NewThemeRepo(db, log),
		ThemeInsight:     repos.NewThemeInsightRepo(db, log),
		CustomerImpact:   repos.NewCustomerImpactRepo(db, log),
		Workspace:        repos.NewWorkspaceRepo(db, log),
		WorkspaceInsight: repos.NewWorkspaceInsightRepo(db, log),
	}
}
