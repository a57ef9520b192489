package domain

import "time"

// Analysis stores the analyzed content for one URL. The URL is the cache
// key: the gateway never analyzes the same URL twice, and the unique index
// is the backstop when two first requests for a URL race.
//
// Records are write-once. There is no refresh, update or delete anywhere in
// the system, so CreatedAt is immutable after insert.
type Analysis struct {
	ID            string    `json:"id" gorm:"primaryKey"`
	URL           string    `json:"url" gorm:"uniqueIndex;not null"`
	Title         string    `json:"title"`
	ExtractedText string    `json:"extractedText" gorm:"type:text"`
	Summary       string    `json:"summary" gorm:"type:text"`
	Category      string    `json:"category"`
	CreatedAt     time.Time `json:"createdAt"`
}

// TableName specifies the table name for GORM
func (Analysis) TableName() string {
	return "analyses"
}
