package handler

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
)

// AnalyzeRequest is the inbound classification request. The form field is
// the primary contract; a JSON body with the same key is accepted too.
type AnalyzeRequest struct {
	Text string `form:"text" json:"text"`
}

// ExtractText reads the text to classify from the request body.
// A missing field yields an empty string, not an error.
func ExtractText(c *gin.Context) (string, error) {
	var req AnalyzeRequest
	if err := c.ShouldBind(&req); err != nil {
		return "", fmt.Errorf("invalid analyze request: %w", err)
	}
	return req.Text, nil
}

// modelInstalled reports whether model is among names. A bare name matches
// its ":latest" tag.
func modelInstalled(model string, names []string) bool {
	want := strings.TrimSuffix(model, ":latest")
	for _, name := range names {
		if strings.TrimSuffix(name, ":latest") == want {
			return true
		}
	}
	return false
}
