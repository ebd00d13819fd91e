package app

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/madhuri-perumalla/CareerValidAI/docs"
	"github.com/madhuri-perumalla/CareerValidAI/pkg/monitoring"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	api := router.Group("/api")
	{
		api.GET("/health", c.health.HealthCheck)

		api.POST("/session", c.session.InitSession)
		api.GET("/session/:sessionId", c.session.GetSession)
		api.GET("/session/:sessionId/export", c.session.ExportSession)

		api.POST("/analyze/github", c.analysis.AnalyzeGitHub)
		api.POST("/analyze/resume", c.analysis.AnalyzeResume)
		api.POST("/analyze/portfolio", c.analysis.AnalyzePortfolio)

		api.POST("/skills/add", c.skill.AddSkill)
		api.POST("/resume/build", c.builder.BuildResume)
		api.POST("/chat", c.chat.Chat)
	}
}
