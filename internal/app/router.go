package app

import (
	"github.com/gin-gonic/gin"

	"github.com/harborview/insightdeck-backend/internal/logger"
	"github.com/harborview/insightdeck-backend/internal/server"
)

func wireRouter(log *logger.Logger, handlers Handlers) *gin.Engine {
	return server.NewRouter(server.RouterConfig{
		Log:               log,
		InsightHandler:    handlers.Insight,
		ThemeHandler:      handlers.Theme,
		DashboardHandler:  handlers.Dashboard,
		ImportanceHandler: handlers.Importance,
		WorkspaceHandler:  handlers.Workspace,
	})
}
