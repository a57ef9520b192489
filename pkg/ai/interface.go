package ai

import (
	"context"
	"encoding/json"
)

// Extraction is the analyzer's result for a URL.
type Extraction struct {
	Title    string `json:"title"`
	Text     string `json:"text"`
	Summary  string `json:"summary"`
	Category string `json:"category"`
}

// AIService is the interface for the external content-analysis service.
// The gateway treats it as an opaque collaborator: both calls take only a
// URL, and the recommendation payload is passed through without reshaping.
type AIService interface {
	ExtractContent(ctx context.Context, url string) (*Extraction, error)
	RecommendContent(ctx context.Context, url string) (json.RawMessage, error)
	Ping(ctx context.Context, baseURL string) error
}
