package database

import (
	"contentiq-backend/pkg/config"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// NewPostgresConnection opens the gateway's Postgres database.
// TranslateError is on so unique violations surface as
// gorm.ErrDuplicatedKey instead of a driver-specific error.
func NewPostgresConnection(cfg *config.Config) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		TranslateError: true,
	})
}
