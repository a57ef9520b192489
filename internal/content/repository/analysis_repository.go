package repository

import (
	"errors"
	"time"

	"contentiq-backend/internal/content/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrDuplicateURL is returned by Create when an analysis already exists for
// the URL. Two concurrent first requests for the same URL can both miss the
// cache; the unique index makes the second insert fail with this error.
var ErrDuplicateURL = errors.New("analysis already exists for url")

// AnalysisRepository defines persistence operations for analyses. The model
// is write-once, so there is no update or delete.
type AnalysisRepository interface {
	// FindByURL retrieves the analysis for a URL, or nil if none exists
	FindByURL(url string) (*domain.Analysis, error)
	// Create inserts a new analysis, filling ID and CreatedAt
	Create(analysis *domain.Analysis) error
	// ListRecent returns the newest analyses, up to limit
	ListRecent(limit int) ([]*domain.Analysis, error)
}

// analysisRepository implements AnalysisRepository using GORM
type analysisRepository struct {
	db *gorm.DB
}

// NewAnalysisRepository creates a new instance of analysisRepository
func NewAnalysisRepository(db *gorm.DB) AnalysisRepository {
	return &analysisRepository{db: db}
}

func (r *analysisRepository) FindByURL(url string) (*domain.Analysis, error) {
	var analysis domain.Analysis
	err := r.db.Where("url = ?", url).First(&analysis).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &analysis, nil
}

func (r *analysisRepository) Create(analysis *domain.Analysis) error {
	if analysis.ID == "" {
		analysis.ID = uuid.New().String()
	}
	if analysis.CreatedAt.IsZero() {
		analysis.CreatedAt = time.Now()
	}
	err := r.db.Create(analysis).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateURL
	}
	return err
}

func (r *analysisRepository) ListRecent(limit int) ([]*domain.Analysis, error) {
	var analyses []*domain.Analysis
	err := r.db.Order("created_at DESC").Limit(limit).Find(&analyses).Error
	return analyses, err
}
