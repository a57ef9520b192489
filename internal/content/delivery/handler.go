package delivery

import (
	"log"
	"net/http"

	"contentiq-backend/internal/content/domain"
	"contentiq-backend/internal/content/dto"
	"contentiq-backend/internal/content/usecase"
	"contentiq-backend/pkg/apperr"

	"github.com/gin-gonic/gin"
)

// ContentHandler handles content analysis HTTP requests
type ContentHandler struct {
	contentUsecase usecase.ContentUsecase
}

// NewContentHandler creates a new ContentHandler
func NewContentHandler(contentUsecase usecase.ContentUsecase) *ContentHandler {
	return &ContentHandler{
		contentUsecase: contentUsecase,
	}
}

// Analyze analyzes a URL, serving the stored result when one exists
// POST /api/analyze
func (h *ContentHandler) Analyze(c *gin.Context) {
	var req dto.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "URL is required"})
		return
	}

	log.Printf("Analyzing URL: %s", req.URL)

	analysis, cached, err := h.contentUsecase.AnalyzeURL(c.Request.Context(), req.URL)
	if err != nil {
		log.Printf("Error analyzing URL: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to analyze URL",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, dto.AnalyzeResponse{Cached: cached, Data: analysis})
}

// Recommend fetches recommendations for a URL and records the query
// POST /api/recommend
func (h *ContentHandler) Recommend(c *gin.Context) {
	var req dto.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "URL is required"})
		return
	}

	log.Printf("Finding recommendations for: %s", req.URL)

	payload, err := h.contentUsecase.Recommend(c.Request.Context(), req.URL)
	if err != nil {
		log.Printf("Error getting recommendations: %v", err)
		summary := "Failed to get recommendations"
		if apperr.IsStorage(err) {
			// The recommender succeeded but the history write did not;
			// say so instead of blaming the AI service.
			summary = "Failed to record query history"
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   summary,
			"details": err.Error(),
		})
		return
	}

	// Pass the AI service payload through untouched
	c.Data(http.StatusOK, "application/json; charset=utf-8", payload)
}

// GetContent returns the most recent analyses, newest first
// GET /api/content
func (h *ContentHandler) GetContent(c *gin.Context) {
	analyses, err := h.contentUsecase.ListContent()
	if err != nil {
		log.Printf("Error fetching content: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch content"})
		return
	}
	if analyses == nil {
		analyses = []*domain.Analysis{}
	}
	c.JSON(http.StatusOK, analyses)
}

// GetHistory returns the most recent recommendation queries, newest first
// GET /api/history
func (h *ContentHandler) GetHistory(c *gin.Context) {
	entries, err := h.contentUsecase.ListHistory()
	if err != nil {
		log.Printf("Error fetching history: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch history"})
		return
	}
	if entries == nil {
		entries = []*domain.QueryLog{}
	}
	c.JSON(http.StatusOK, entries)
}
