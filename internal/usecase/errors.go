package usecase

import (
	"errors"

	"github.com/ressKim-io/sentiment-service/internal/domain/entity"
	"github.com/ressKim-io/sentiment-service/internal/domain/service"
)

// Failure pairs an outcome with the indicator shown to the caller
type Failure struct {
	Outcome entity.Outcome
	Message string
}

// MapInferenceError maps a generator error to the indicator returned in
// place of a label. Every error maps to something; nothing is propagated.
func MapInferenceError(err error, model string) Failure {
	switch {
	case errors.Is(err, service.ErrServiceUnavailable):
		return Failure{Outcome: entity.OutcomeUnreachable, Message: entity.MsgServiceNotRunning}
	case errors.Is(err, service.ErrModelNotFound):
		return Failure{Outcome: entity.OutcomeModelNotFound, Message: entity.ModelNotFoundMessage(model)}
	case errors.Is(err, service.ErrTimeout), errors.Is(err, service.ErrTransport):
		return Failure{Outcome: entity.OutcomeTransportError, Message: entity.MsgTransportError}
	case errors.Is(err, service.ErrEmptyCompletion):
		return Failure{Outcome: entity.OutcomeUnparseable, Message: entity.MsgUnableToAnalyze}
	default:
		return Failure{Outcome: entity.OutcomeUnexpected, Message: entity.MsgUnexpectedError}
	}
}
