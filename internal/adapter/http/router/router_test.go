package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/ressKim-io/sentiment-service/internal/infrastructure/config"
	"github.com/ressKim-io/sentiment-service/internal/usecase"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubGenerator struct {
	mock.Mock
}

func (m *stubGenerator) Generate(ctx context.Context, model, prompt string) (string, error) {
	args := m.Called(ctx, model, prompt)
	return args.String(0), args.Error(1)
}

func (m *stubGenerator) ListModels(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	return args.Get(0).([]string), args.Error(1)
}

func (m *stubGenerator) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *stubGenerator) Name() string {
	return "stub"
}

func newTestRouter(gen *stubGenerator) *gin.Engine {
	cfg := &config.Config{
		Server: config.ServerConfig{AllowedOrigins: []string{"*"}},
		Inference: config.InferenceConfig{
			Model:        "phi",
			ProbeTimeout: time.Second,
		},
	}
	uc := usecase.NewSentimentUsecase(gen, usecase.SentimentOptions{Model: "phi"}, zap.NewNop())
	return Setup(uc, gen, cfg, zap.NewNop())
}

func TestSetup_Analyze(t *testing.T) {
	gen := new(stubGenerator)
	gen.On("Generate", mock.Anything, "phi", mock.MatchedBy(func(prompt string) bool {
		return strings.Contains(prompt, "Text: What a great day")
	})).Return("The sentiment is POSITIVE.", nil)
	router := newTestRouter(gen)

	form := url.Values{"text": {"What a great day"}}
	req, _ := http.NewRequest("POST", "/analyze/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"sentiment":"Positive"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	gen.AssertExpectations(t)
}

func TestSetup_AnalyzeBlank(t *testing.T) {
	gen := new(stubGenerator)
	router := newTestRouter(gen)

	form := url.Values{"text": {"   "}}
	req, _ := http.NewRequest("POST", "/analyze/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"sentiment":"Please provide some text to analyze"}`, w.Body.String())
	gen.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything, mock.Anything)
}

func TestSetup_Routes(t *testing.T) {
	gen := new(stubGenerator)
	gen.On("Ping", mock.Anything).Return(nil)
	gen.On("ListModels", mock.Anything).Return([]string{"phi:latest"}, nil)
	router := newTestRouter(gen)

	tests := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
		expectedBody   string
	}{
		{name: "root", method: "GET", path: "/", expectedStatus: http.StatusOK, expectedBody: `"model":"phi"`},
		{name: "health", method: "GET", path: "/health", expectedStatus: http.StatusOK, expectedBody: "healthy"},
		{name: "ready", method: "GET", path: "/ready", expectedStatus: http.StatusOK, expectedBody: "ready"},
		{name: "models", method: "GET", path: "/models", expectedStatus: http.StatusOK, expectedBody: "phi:latest"},
		{name: "metrics", method: "GET", path: "/metrics", expectedStatus: http.StatusOK, expectedBody: "http_requests_total"},
		{name: "unknown route", method: "GET", path: "/nope", expectedStatus: http.StatusNotFound, expectedBody: "NOT_FOUND"},
		{name: "wrong method", method: "GET", path: "/analyze/", expectedStatus: http.StatusMethodNotAllowed, expectedBody: "METHOD_NOT_ALLOWED"},
		{name: "preflight", method: "OPTIONS", path: "/analyze/", expectedStatus: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, _ := http.NewRequest(tt.method, tt.path, http.NoBody)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, w.Body.String(), tt.expectedBody)
			}
		})
	}
}
