package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("AI_SERVICE_URL", "")
	t.Setenv("AI_TIMEOUT", "")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "http://localhost:8000", cfg.AIServiceURL)
	assert.Equal(t, 90*time.Second, cfg.AITimeout)
	assert.Contains(t, cfg.DatabaseURL, "postgres://")
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DATABASE_URL", "postgres://app:secret@db:5432/gateway")
	t.Setenv("AI_SERVICE_URL", "http://ai:8000")
	t.Setenv("AI_TIMEOUT", "15s")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "postgres://app:secret@db:5432/gateway", cfg.DatabaseURL)
	assert.Equal(t, "http://ai:8000", cfg.AIServiceURL)
	assert.Equal(t, 15*time.Second, cfg.AITimeout)
}

func TestLoadInvalidTimeoutFallsBack(t *testing.T) {
	t.Setenv("AI_TIMEOUT", "not-a-duration")

	cfg := Load()

	assert.Equal(t, 90*time.Second, cfg.AITimeout)
}
