package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"contentiq-backend/internal/content/domain"
	"contentiq-backend/internal/content/repository"
	"contentiq-backend/pkg/ai"
	"contentiq-backend/pkg/apperr"

	"github.com/m-mizutani/goerr/v2"
	"gorm.io/datatypes"
)

// Result caps for the list endpoints
const (
	maxContentResults = 50
	maxHistoryResults = 20
)

// contentUsecase implements ContentUsecase
type contentUsecase struct {
	analysisRepo repository.AnalysisRepository
	queryLogRepo repository.QueryLogRepository
	aiService    ai.AIService
}

// NewContentUsecase creates a new ContentUsecase
func NewContentUsecase(analysisRepo repository.AnalysisRepository, queryLogRepo repository.QueryLogRepository, aiService ai.AIService) ContentUsecase {
	return &contentUsecase{
		analysisRepo: analysisRepo,
		queryLogRepo: queryLogRepo,
		aiService:    aiService,
	}
}

// AnalyzeURL implements the cache-aside read path: the store is the cache,
// and the AI service is only called for URLs that were never analyzed.
func (u *contentUsecase) AnalyzeURL(ctx context.Context, url string) (*domain.Analysis, bool, error) {
	// The extraction costs money once started and the insert must not be
	// lost mid-flight, so a dropped client connection cancels neither. The
	// AI client enforces its own deadline.
	ctx = context.WithoutCancel(ctx)

	existing, err := u.analysisRepo.FindByURL(url)
	if err != nil {
		return nil, false, goerr.Wrap(err, "failed to look up analysis", goerr.T(apperr.TagStorage), goerr.V("url", url))
	}
	if existing != nil {
		log.Printf("URL found in database (cached): %s", url)
		return existing, true, nil
	}

	log.Printf("Sending to AI service for processing: %s", url)
	extraction, err := u.aiService.ExtractContent(ctx, url)
	if err != nil {
		return nil, false, goerr.Wrap(err, "AI service extraction failed", goerr.T(apperr.TagUpstream), goerr.V("url", url))
	}

	analysis := &domain.Analysis{
		URL:           url,
		Title:         extraction.Title,
		ExtractedText: extraction.Text,
		Summary:       extraction.Summary,
		Category:      extraction.Category,
	}

	if err := u.analysisRepo.Create(analysis); err != nil {
		if errors.Is(err, repository.ErrDuplicateURL) {
			// A concurrent request analyzed the same URL first. Its record
			// is the cached one; serve that instead of failing.
			winner, findErr := u.analysisRepo.FindByURL(url)
			if findErr != nil || winner == nil {
				return nil, false, goerr.Wrap(err, "failed to re-read analysis after duplicate insert", goerr.T(apperr.TagStorage), goerr.V("url", url))
			}
			log.Printf("Lost insert race for %s, serving existing record", url)
			return winner, true, nil
		}
		// Returned implies persisted: the computed result is dropped
		// rather than handed out unsaved.
		return nil, false, goerr.Wrap(err, "failed to save analysis", goerr.T(apperr.TagStorage), goerr.V("url", url))
	}

	log.Printf("Content saved to database: %s", url)
	return analysis, false, nil
}

// Recommend has no cache: every call reaches the AI service, and every
// successful call appends exactly one history entry.
func (u *contentUsecase) Recommend(ctx context.Context, url string) (json.RawMessage, error) {
	ctx = context.WithoutCancel(ctx)

	payload, err := u.aiService.RecommendContent(ctx, url)
	if err != nil {
		return nil, goerr.Wrap(err, "AI service recommendation failed", goerr.T(apperr.TagUpstream), goerr.V("url", url))
	}

	entry := &domain.QueryLog{
		URL:             url,
		Recommendations: datatypes.JSON(recommendationsField(payload)),
	}
	if err := u.queryLogRepo.Append(entry); err != nil {
		return nil, goerr.Wrap(err, "failed to record query history", goerr.T(apperr.TagStorage), goerr.V("url", url))
	}

	return payload, nil
}

// recommendationsField pulls the "recommendations" field out of the AI
// service payload for the history log. The shape is not validated; when the
// field is missing the whole payload is logged instead.
func recommendationsField(payload json.RawMessage) json.RawMessage {
	var envelope struct {
		Recommendations json.RawMessage `json:"recommendations"`
	}
	if err := json.Unmarshal(payload, &envelope); err != nil || len(envelope.Recommendations) == 0 {
		return payload
	}
	return envelope.Recommendations
}

func (u *contentUsecase) ListContent() ([]*domain.Analysis, error) {
	analyses, err := u.analysisRepo.ListRecent(maxContentResults)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to fetch content", goerr.T(apperr.TagStorage))
	}
	return analyses, nil
}

func (u *contentUsecase) ListHistory() ([]*domain.QueryLog, error) {
	entries, err := u.queryLogRepo.ListRecent(maxHistoryResults)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to fetch history", goerr.T(apperr.TagStorage))
	}
	return entries, nil
}
