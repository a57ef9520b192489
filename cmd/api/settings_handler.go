package api

import (
	"net/http"
	"sync"

	"contentiq-backend/pkg/ai"

	"github.com/gin-gonic/gin"
)

// RuntimeConfig holds runtime-configurable settings
type RuntimeConfig struct {
	AIBaseURL string `json:"ai_base_url"`
}

var (
	runtimeConfig     RuntimeConfig
	runtimeConfigLock sync.RWMutex
)

// InitRuntimeConfig initializes runtime config from static config
func InitRuntimeConfig(aiBaseURL string) {
	runtimeConfigLock.Lock()
	defer runtimeConfigLock.Unlock()
	runtimeConfig = RuntimeConfig{AIBaseURL: aiBaseURL}
}

// GetRuntimeAIBaseURL returns the current runtime AI service base URL
func GetRuntimeAIBaseURL() string {
	runtimeConfigLock.RLock()
	defer runtimeConfigLock.RUnlock()
	return runtimeConfig.AIBaseURL
}

// UpdateAISettingsRequest represents the request body for updating AI service settings
type UpdateAISettingsRequest struct {
	AIBaseURL string `json:"ai_base_url" binding:"required"`
}

// GetAISettings returns the current AI service configuration
// GET /api/settings/ai
func GetAISettings(c *gin.Context) {
	runtimeConfigLock.RLock()
	defer runtimeConfigLock.RUnlock()

	c.JSON(http.StatusOK, gin.H{
		"ai_base_url": runtimeConfig.AIBaseURL,
	})
}

// UpdateAISettings updates the AI service configuration at runtime
// PUT /api/settings/ai
func UpdateAISettings(c *gin.Context) {
	var req UpdateAISettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	runtimeConfigLock.Lock()
	runtimeConfig.AIBaseURL = req.AIBaseURL
	runtimeConfigLock.Unlock()

	c.JSON(http.StatusOK, gin.H{
		"message":     "AI service settings updated successfully",
		"ai_base_url": req.AIBaseURL,
	})
}

// TestAIConnection tests if the AI service is reachable
// POST /api/settings/ai/test
func TestAIConnection(aiService ai.AIService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			AIBaseURL string `json:"ai_base_url"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			// If no body provided, use current config
			req.AIBaseURL = GetRuntimeAIBaseURL()
		}
		if req.AIBaseURL == "" {
			req.AIBaseURL = GetRuntimeAIBaseURL()
		}

		if err := aiService.Ping(c.Request.Context(), req.AIBaseURL); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"connected": false,
				"error":     err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"connected":   true,
			"ai_base_url": req.AIBaseURL,
		})
	}
}
