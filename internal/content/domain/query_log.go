package domain

import (
	"time"

	"gorm.io/datatypes"
)

// QueryLog records one recommendation request, for history purposes only.
// The same URL may appear many times. The recommendations payload is opaque
// to the gateway and stored as-is.
type QueryLog struct {
	ID              string         `json:"id" gorm:"primaryKey"`
	URL             string         `json:"url" gorm:"index"`
	Recommendations datatypes.JSON `json:"recommendations"`
	Timestamp       time.Time      `json:"timestamp" gorm:"index"`
}

// TableName specifies the table name for GORM
func (QueryLog) TableName() string {
	return "query_logs"
}
