package usecase

import (
	"context"
	"encoding/json"

	"contentiq-backend/internal/content/domain"
)

// ContentUsecase defines the interface for content analysis use cases
type ContentUsecase interface {
	// AnalyzeURL returns the analysis for url, serving it from the store
	// when present and calling the AI service otherwise. The bool reports
	// whether the result came from the store.
	AnalyzeURL(ctx context.Context, url string) (*domain.Analysis, bool, error)
	// Recommend fetches recommendations for url, appends a history entry
	// and returns the AI service payload verbatim.
	Recommend(ctx context.Context, url string) (json.RawMessage, error)
	ListContent() ([]*domain.Analysis, error)
	ListHistory() ([]*domain.QueryLog, error)
}
