package entity

import "fmt"

// Outcome describes how a classification request ended
type Outcome string

const (
	OutcomeLabeled        Outcome = "labeled"
	OutcomeEmptyInput     Outcome = "empty_input"
	OutcomeUnreachable    Outcome = "unreachable"
	OutcomeTransportError Outcome = "transport_error"
	OutcomeModelNotFound  Outcome = "model_not_found"
	OutcomeUnparseable    Outcome = "unparseable"
	OutcomeUnexpected     Outcome = "unexpected_error"
)

// Indicator strings returned in place of a label. The presentation layer
// matches on the "Error" prefix, so keep it.
const (
	MsgEmptyInput         = "Please provide some text to analyze"
	MsgServiceNotRunning  = "Error: Cannot connect to Ollama. Run 'ollama serve' in a terminal"
	MsgTransportError     = "Error connecting to Ollama API"
	MsgUnableToAnalyze    = "Error: Unable to analyze sentiment"
	MsgUnexpectedError    = "Unexpected error occurred"
	modelNotFoundTemplate = "Error: Model not found. Run 'ollama pull %s' in a terminal"
)

// ModelNotFoundMessage returns the indicator for a model missing on the server
func ModelNotFoundMessage(model string) string {
	return fmt.Sprintf(modelNotFoundTemplate, model)
}

// Result is the transient outcome of one classification request
type Result struct {
	Sentiment string
	Label     Label
	Outcome   Outcome
	Model     string
}

// NewLabeledResult creates a Result carrying a sentiment label
func NewLabeledResult(label Label, model string) *Result {
	return &Result{
		Sentiment: string(label),
		Label:     label,
		Outcome:   OutcomeLabeled,
		Model:     model,
	}
}

// NewFailedResult creates a Result carrying an indicator string instead of a label
func NewFailedResult(outcome Outcome, message, model string) *Result {
	return &Result{
		Sentiment: message,
		Outcome:   outcome,
		Model:     model,
	}
}

// IsLabeled reports whether the result holds one of the sentiment labels
func (r *Result) IsLabeled() bool {
	return r.Outcome == OutcomeLabeled
}
