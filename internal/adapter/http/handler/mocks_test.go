package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/ressKim-io/sentiment-service/internal/domain/entity"
)

// MockTextGenerator is a mock implementation of service.TextGenerator
type MockTextGenerator struct {
	mock.Mock
}

func (m *MockTextGenerator) Generate(ctx context.Context, model, prompt string) (string, error) {
	args := m.Called(ctx, model, prompt)
	return args.String(0), args.Error(1)
}

func (m *MockTextGenerator) ListModels(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockTextGenerator) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTextGenerator) Name() string {
	return "mock"
}

// MockSentimentUsecase is a mock implementation of usecase.SentimentUsecase
type MockSentimentUsecase struct {
	mock.Mock
}

func (m *MockSentimentUsecase) Analyze(ctx context.Context, text string) *entity.Result {
	args := m.Called(ctx, text)
	return args.Get(0).(*entity.Result)
}

func (m *MockSentimentUsecase) Model() string {
	args := m.Called()
	return args.String(0)
}
