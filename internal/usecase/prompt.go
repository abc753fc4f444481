package usecase

import "fmt"

const promptTemplate = `Analyze the sentiment of the following text and respond with EXACTLY ONE WORD (Positive, Negative, or Neutral).
Text: %s
Sentiment:`

// BuildPrompt returns the one-word sentiment instruction for text
func BuildPrompt(text string) string {
	return fmt.Sprintf(promptTemplate, text)
}
