package repository

import (
	"time"

	"contentiq-backend/internal/content/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// QueryLogRepository defines persistence operations for the recommendation
// query history. Append-only: entries are never updated or deleted.
type QueryLogRepository interface {
	// Append inserts a new history entry, filling ID and Timestamp
	Append(entry *domain.QueryLog) error
	// ListRecent returns the newest entries, up to limit
	ListRecent(limit int) ([]*domain.QueryLog, error)
}

// queryLogRepository implements QueryLogRepository using GORM
type queryLogRepository struct {
	db *gorm.DB
}

// NewQueryLogRepository creates a new instance of queryLogRepository
func NewQueryLogRepository(db *gorm.DB) QueryLogRepository {
	return &queryLogRepository{db: db}
}

func (r *queryLogRepository) Append(entry *domain.QueryLog) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}
	return r.db.Create(entry).Error
}

func (r *queryLogRepository) ListRecent(limit int) ([]*domain.QueryLog, error) {
	var entries []*domain.QueryLog
	err := r.db.Order("timestamp DESC").Limit(limit).Find(&entries).Error
	return entries, err
}
