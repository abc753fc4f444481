package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLabeledResult(t *testing.T) {
	result := NewLabeledResult(LabelNeutral, "phi")

	assert.Equal(t, "Neutral", result.Sentiment)
	assert.Equal(t, LabelNeutral, result.Label)
	assert.Equal(t, OutcomeLabeled, result.Outcome)
	assert.Equal(t, "phi", result.Model)
	assert.True(t, result.IsLabeled())
}

func TestNewFailedResult(t *testing.T) {
	result := NewFailedResult(OutcomeUnparseable, MsgUnableToAnalyze, "phi")

	assert.Equal(t, MsgUnableToAnalyze, result.Sentiment)
	assert.Empty(t, result.Label)
	assert.Equal(t, OutcomeUnparseable, result.Outcome)
	assert.False(t, result.IsLabeled())
}

func TestModelNotFoundMessage(t *testing.T) {
	assert.Equal(t,
		"Error: Model not found. Run 'ollama pull tinyllama' in a terminal",
		ModelNotFoundMessage("tinyllama"),
	)
}
