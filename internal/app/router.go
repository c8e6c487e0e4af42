package app

import (
	"shona_dict_backend/internal/config"
	"shona_dict_backend/internal/middleware"
	"shona_dict_backend/internal/model"
	"shona_dict_backend/pkg/monitoring"

	"shona_dict_backend/docs"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", monitoring.PrometheusHandler())

	api := router.Group("/api")
	{
		api.GET("/health", c.health.HealthCheck)
		api.POST("/login", c.auth.Login)

		api.GET("/daily-challenge", c.challenge.GetDailyChallenge)
		api.POST("/challenge/complete", c.challenge.RecordCompletion)

		api.GET("/words", c.word.SearchWords)
		api.GET("/words/:id", c.word.GetWord)

		api.POST("/suggestions", c.suggestion.Submit)

		api.POST("/translate", c.translation.Translate)
		api.POST("/translate/examples", c.translation.GenerateExamples)
	}

	admin := router.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(cfg), middleware.RoleMiddleware(model.Admin, model.Editor))
	{
		admin.GET("/profile", c.auth.GetProfile)

		admin.POST("/challenges", c.challengeAdmin.CreateChallenge)
		admin.GET("/challenges", c.challengeAdmin.ListChallenges)
		admin.GET("/challenges/:id", c.challengeAdmin.GetChallenge)
		admin.PUT("/challenges/:id", c.challengeAdmin.UpdateChallenge)
		admin.DELETE("/challenges/:id", c.challengeAdmin.DeleteChallenge)
		admin.GET("/challenges/:id/usage", c.challengeAdmin.GetChallengeUsage)

		admin.GET("/daily-challenges", c.challengeAdmin.ListDailyChallenges)
		admin.POST("/daily-challenges", c.challengeAdmin.AssignDailyChallenge)
		admin.PATCH("/daily-challenges/:date/status", c.challengeAdmin.UpdateDailyChallengeStatus)

		admin.GET("/completions", c.challengeAdmin.ListCompletions)
		admin.GET("/completions/summary", c.challengeAdmin.SummarizeCompletions)

		admin.POST("/words", c.word.CreateWord)
		admin.PUT("/words/:id", c.word.UpdateWord)
		admin.DELETE("/words/:id", c.word.DeleteWord)
		admin.POST("/words/:id/audio", c.word.UploadAudio)

		admin.GET("/suggestions", c.suggestion.List)
		admin.POST("/suggestions/:id/approve", c.suggestion.Approve)
		admin.POST("/suggestions/:id/reject", c.suggestion.Reject)
	}
}
