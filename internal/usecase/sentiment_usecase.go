package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ressKim-io/sentiment-service/internal/domain/entity"
	"github.com/ressKim-io/sentiment-service/internal/domain/service"
	"github.com/ressKim-io/sentiment-service/internal/infrastructure/metrics"
)

// AnalyzeOutput represents the reply for a classification request
type AnalyzeOutput struct {
	Sentiment string `json:"sentiment"`
}

// SentimentOptions controls model selection
type SentimentOptions struct {
	Model           string
	AutoSelectModel bool
	PreferredModels []string
	ProbeTimeout    time.Duration
}

// SentimentUsecase defines the interface for sentiment classification
type SentimentUsecase interface {
	// Analyze classifies text. It never fails: errors become indicator strings.
	Analyze(ctx context.Context, text string) *entity.Result

	// Model returns the configured default model
	Model() string
}

type sentimentUsecase struct {
	generator service.TextGenerator
	opts      SentimentOptions
	logger    *zap.Logger
}

// NewSentimentUsecase creates a new sentiment usecase
func NewSentimentUsecase(generator service.TextGenerator, opts SentimentOptions, logger *zap.Logger) SentimentUsecase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &sentimentUsecase{
		generator: generator,
		opts:      opts,
		logger:    logger,
	}
}

func (u *sentimentUsecase) Model() string {
	return u.opts.Model
}

func (u *sentimentUsecase) Analyze(ctx context.Context, text string) (result *entity.Result) {
	start := time.Now()
	model := u.opts.Model

	defer func() {
		if r := recover(); r != nil {
			u.logger.Error("Unexpected panic during classification",
				zap.String("panic", fmt.Sprint(r)),
				zap.String("model", model),
			)
			result = entity.NewFailedResult(entity.OutcomeUnexpected, entity.MsgUnexpectedError, model)
		}
		metrics.ClassificationsTotal.WithLabelValues(string(result.Outcome), string(result.Label)).Inc()
		u.logger.Info("Classification finished",
			zap.String("outcome", string(result.Outcome)),
			zap.String("sentiment", result.Sentiment),
			zap.String("model", result.Model),
			zap.Duration("latency", time.Since(start)),
		)
	}()

	if entity.IsBlank(text) {
		return entity.NewFailedResult(entity.OutcomeEmptyInput, entity.MsgEmptyInput, model)
	}

	if u.opts.AutoSelectModel {
		selected, err := u.selectModel(ctx)
		if err != nil {
			u.logger.Error("Could not list models on inference server", zap.Error(err))
			return entity.NewFailedResult(entity.OutcomeUnreachable, entity.MsgServiceNotRunning, model)
		}
		model = selected
	}

	reply, err := u.generate(ctx, model, BuildPrompt(text))
	if err != nil {
		failure := MapInferenceError(err, model)
		u.logger.Warn("Inference request failed",
			zap.String("outcome", string(failure.Outcome)),
			zap.String("model", model),
			zap.Error(err),
		)
		return entity.NewFailedResult(failure.Outcome, failure.Message, model)
	}

	label, ok := entity.ExtractLabel(reply)
	if !ok {
		u.logger.Warn("No sentiment label in model reply",
			zap.String("model", model),
			zap.String("reply", truncate(reply, 50)),
		)
		return entity.NewFailedResult(entity.OutcomeUnparseable, entity.MsgUnableToAnalyze, model)
	}

	return entity.NewLabeledResult(label, model)
}

func (u *sentimentUsecase) generate(ctx context.Context, model, prompt string) (string, error) {
	start := time.Now()
	u.logger.Debug("Sending prompt to inference server",
		zap.String("provider", u.generator.Name()),
		zap.String("model", model),
	)

	reply, err := u.generator.Generate(ctx, model, prompt)

	outcome := entity.OutcomeLabeled
	if err != nil {
		outcome = MapInferenceError(err, model).Outcome
	}
	metrics.InferenceDuration.WithLabelValues(u.generator.Name(), string(outcome)).Observe(time.Since(start).Seconds())

	return reply, err
}

// selectModel picks the first preferred model installed on the server,
// falling back to the configured model. It keeps no state between calls.
func (u *sentimentUsecase) selectModel(ctx context.Context) (string, error) {
	probeCtx := ctx
	if u.opts.ProbeTimeout > 0 {
		var cancel context.CancelFunc
		probeCtx, cancel = context.WithTimeout(ctx, u.opts.ProbeTimeout)
		defer cancel()
	}

	available, err := u.generator.ListModels(probeCtx)
	if err != nil {
		return "", err
	}
	u.logger.Debug("Available models", zap.Strings("models", available))

	installed := make(map[string]struct{}, len(available))
	for _, name := range available {
		installed[name] = struct{}{}
		// Ollama reports untagged pulls as "<name>:latest"
		installed[strings.TrimSuffix(name, ":latest")] = struct{}{}
	}

	for _, candidate := range u.opts.PreferredModels {
		if _, ok := installed[candidate]; ok {
			return candidate, nil
		}
	}

	return u.opts.Model, nil
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
