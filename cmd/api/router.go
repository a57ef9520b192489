package api

import (
	"net/http"

	contentDelivery "contentiq-backend/internal/content/delivery"
	contentUsecase "contentiq-backend/internal/content/usecase"
	"contentiq-backend/pkg/ai"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, contentUc contentUsecase.ContentUsecase, aiService ai.AIService) {
	contentHandler := contentDelivery.NewContentHandler(contentUc)

	api := r.Group("/api")
	{
		// Health check
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Backend is running"})
		})

		// Content routes
		api.POST("/analyze", contentHandler.Analyze)
		api.POST("/recommend", contentHandler.Recommend)
		api.GET("/content", contentHandler.GetContent)
		api.GET("/history", contentHandler.GetHistory)

		// Settings routes - Runtime configuration
		settings := api.Group("/settings")
		{
			settings.GET("/ai", GetAISettings)
			settings.PUT("/ai", UpdateAISettings)
			settings.POST("/ai/test", TestAIConnection(aiService))
		}
	}
}
