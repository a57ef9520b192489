package dto

import "contentiq-backend/internal/content/domain"

// AnalyzeRequest is the body of POST /api/analyze and POST /api/recommend.
type AnalyzeRequest struct {
	URL string `json:"url" binding:"required"`
}

// AnalyzeResponse wraps an analysis with its cache provenance.
type AnalyzeResponse struct {
	Cached bool             `json:"cached"`
	Data   *domain.Analysis `json:"data"`
}
