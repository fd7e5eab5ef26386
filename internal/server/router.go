package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/harborview/insightdeck-backend/internal/handlers"
	"github.com/harborview/insightdeck-backend/internal/logger"
	"github.com/harborview/insightdeck-backend/internal/middleware"
)

type RouterConfig struct {
	Log               *logger.Logger
	InsightHandler    *handlers.InsightHandler
	ThemeHandler      *handlers.ThemeHandler
	DashboardHandler  *handlers.DashboardHandler
	ImportanceHandler *handlers.ImportanceHandler
	WorkspaceHandler  *handlers.WorkspaceHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(otelgin.Middleware("insightdeck"))
	router.Use(middleware.RequestLogger(cfg.Log))

	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"http://localhost:80",
			"http://localhost:3000",
			"http://localhost:5174",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	router.GET("/healthcheck", handlers.HealthCheck)

	api := router.Group("/api")
	{
		// Insights
		api.GET("/insights", cfg.InsightHandler.List)
		api.GET("/insights/important", cfg.ImportanceHandler.List)
		api.GET("/insights/:id", cfg.InsightHandler.Get)
		api.POST("/insights/:id/open", cfg.InsightHandler.Open)
		api.PUT("/insights/:id/status", cfg.InsightHandler.SetStatus)
		api.POST("/insights/:id/share", cfg.InsightHandler.Share)
		api.PUT("/insights/:id/important", cfg.ImportanceHandler.Mark)
		api.DELETE("/insights/:id/important", cfg.ImportanceHandler.Unmark)
		api.GET("/insights/:id/trend", cfg.DashboardHandler.InsightTrend)

		// Themes
		api.GET("/themes", cfg.ThemeHandler.List)
		api.POST("/themes", cfg.ThemeHandler.Create)
		api.PATCH("/themes/:id", cfg.ThemeHandler.Update)
		api.DELETE("/themes/:id", cfg.ThemeHandler.Delete)
		api.POST("/themes/:id/archive", cfg.ThemeHandler.Archive)
		api.POST("/themes/:id/critical", cfg.ThemeHandler.TagAsCritical)
		api.POST("/themes/:id/insights", cfg.ThemeHandler.LinkInsight)
		api.DELETE("/themes/:id/insights/:insightID", cfg.ThemeHandler.UnlinkInsight)
		api.GET("/themes/:id/metrics", cfg.ThemeHandler.Metrics)

		// Dashboard roll-ups
		api.GET("/dashboard/metrics", cfg.DashboardHandler.AllThemeMetrics)
		api.GET("/dashboard/trends", cfg.DashboardHandler.ThemeTrends)

		// Workspaces
		api.GET("/workspaces", cfg.WorkspaceHandler.List)
		api.POST("/workspaces", cfg.WorkspaceHandler.Create)
		api.GET("/workspaces/:id/insights", cfg.WorkspaceHandler.Shares)
	}

	return router
}
