package api

import (
	contentUsecasePkg "contentiq-backend/internal/content/usecase"
	"contentiq-backend/pkg/ai"
	"contentiq-backend/pkg/config"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	contentUsecase contentUsecasePkg.ContentUsecase
	aiService      ai.AIService
	config         *config.Config
}

func NewHandler(contentUc contentUsecasePkg.ContentUsecase, aiService ai.AIService, cfg *config.Config) *Handler {
	return &Handler{
		contentUsecase: contentUc,
		aiService:      aiService,
		config:         cfg,
	}
}

func (h *Handler) Start(addr string) error {
	r := gin.Default()
	gin.SetMode(gin.ReleaseMode)

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Setup routes
	SetupRoutes(r, h.contentUsecase, h.aiService)

	return r.Run(addr)
}
