package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/ressKim-io/sentiment-service/internal/domain/service"
)

// defaultAPIKey is sent when none is configured; Ollama's OpenAI-compatible
// endpoint requires the header but ignores its value.
const defaultAPIKey = "ollama"

// OpenAIClient talks to any OpenAI-compatible chat completion server
type OpenAIClient struct {
	client *openai.Client
}

// NewOpenAIClient creates a new OpenAI-compatible client.
// baseURL may be given with or without the trailing /v1.
func NewOpenAIClient(baseURL, apiKey string, timeout time.Duration) *OpenAIClient {
	if apiKey == "" {
		apiKey = defaultAPIKey
	}

	cfg := openai.DefaultConfig(apiKey)
	baseURL = strings.TrimRight(baseURL, "/")
	if !strings.HasSuffix(baseURL, "/v1") {
		baseURL += "/v1"
	}
	cfg.BaseURL = baseURL
	cfg.HTTPClient = &http.Client{Timeout: timeout}

	return &OpenAIClient{client: openai.NewClientWithConfig(cfg)}
}

// Name returns the backend name
func (c *OpenAIClient) Name() string {
	return "openai"
}

// Generate sends the prompt as a single user message and returns the reply
func (c *OpenAIClient) Generate(ctx context.Context, model, prompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		Stream: false,
	})
	if err != nil {
		return "", mapOpenAIError(err, model)
	}

	if len(resp.Choices) == 0 {
		return "", service.ErrEmptyCompletion
	}

	return resp.Choices[0].Message.Content, nil
}

// ListModels returns the model ids served by the endpoint
func (c *OpenAIClient) ListModels(ctx context.Context) ([]string, error) {
	resp, err := c.client.ListModels(ctx)
	if err != nil {
		return nil, mapOpenAIError(err, "")
	}

	names := make([]string, 0, len(resp.Models))
	for _, m := range resp.Models {
		names = append(names, m.ID)
	}

	return names, nil
}

// Ping checks that the endpoint answers a model listing
func (c *OpenAIClient) Ping(ctx context.Context) error {
	_, err := c.ListModels(ctx)
	return err
}

func mapOpenAIError(err error, model string) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		if apiErr.HTTPStatusCode == http.StatusNotFound {
			return fmt.Errorf("%w: %s: %s", service.ErrModelNotFound, model, apiErr.Message)
		}
		return fmt.Errorf("%w: server returned status %d: %s", service.ErrTransport, apiErr.HTTPStatusCode, apiErr.Message)
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		if reqErr.HTTPStatusCode == http.StatusNotFound {
			return fmt.Errorf("%w: %s", service.ErrModelNotFound, model)
		}
		return fmt.Errorf("%w: server returned status %d", service.ErrTransport, reqErr.HTTPStatusCode)
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return fmt.Errorf("%w: %w", service.ErrMalformedResponse, err)
	}

	return wrapRequestError(err)
}
