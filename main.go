package main

import (
	"log"

	api "contentiq-backend/cmd/api"
	"contentiq-backend/internal/content/domain"
	contentRepo "contentiq-backend/internal/content/repository"
	contentUsecase "contentiq-backend/internal/content/usecase"
	"contentiq-backend/pkg/ai"
	"contentiq-backend/pkg/config"
	"contentiq-backend/pkg/database"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(&domain.Analysis{}, &domain.QueryLog{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize repositories (dependency injection)
	analysisRepo := contentRepo.NewAnalysisRepository(db)
	queryLogRepo := contentRepo.NewQueryLogRepository(db)

	// Initialize runtime config for the settings API
	api.InitRuntimeConfig(cfg.AIServiceURL)

	// The AI client reads its base URL through the runtime config so
	// settings updates take effect without a restart
	aiClient := ai.NewClient(api.GetRuntimeAIBaseURL, cfg.AITimeout)

	// Initialize use case (dependency injection)
	contentUc := contentUsecase.NewContentUsecase(analysisRepo, queryLogRepo, aiClient)

	// Initialize HTTP handler
	handler := api.NewHandler(contentUc, aiClient, cfg)

	log.Printf("Server starting on port %s", cfg.Port)
	log.Printf("AI service expected at %s", cfg.AIServiceURL)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
