package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ressKim-io/sentiment-service/internal/usecase"
)

// SentimentHandler handles classification requests
type SentimentHandler struct {
	sentimentUC usecase.SentimentUsecase
	logger      *zap.Logger
}

// NewSentimentHandler creates a new sentiment handler
func NewSentimentHandler(sentimentUC usecase.SentimentUsecase, logger *zap.Logger) *SentimentHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SentimentHandler{
		sentimentUC: sentimentUC,
		logger:      logger,
	}
}

// Analyze handles POST /analyze/
//
// Every outcome, failures included, is answered with 200 and a single
// "sentiment" field.
func (h *SentimentHandler) Analyze(c *gin.Context) {
	text, err := ExtractText(c)
	if err != nil {
		h.logger.Warn("Unreadable analyze request, treating as blank",
			zap.String("request_id", c.GetString(requestIDKey)),
			zap.Error(err),
		)
		text = ""
	}

	result := h.sentimentUC.Analyze(c.Request.Context(), text)

	c.JSON(http.StatusOK, usecase.AnalyzeOutput{Sentiment: result.Sentiment})
}
