package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ressKim-io/sentiment-service/internal/domain/service"
)

// GenerateRequest represents a request to the Ollama generate endpoint
type GenerateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

// GenerateResponse represents a non-streaming reply from the generate endpoint.
// Response is a pointer so a missing field can be told apart from an empty one.
type GenerateResponse struct {
	Model     string  `json:"model"`
	CreatedAt string  `json:"created_at"`
	Response  *string `json:"response"`
	Done      bool    `json:"done"`
}

// ModelInfo describes one installed model
type ModelInfo struct {
	Name       string `json:"name"`
	Model      string `json:"model"`
	Size       int64  `json:"size"`
	ModifiedAt string `json:"modified_at"`
}

// TagsResponse represents the model list returned by /api/tags
type TagsResponse struct {
	Models []ModelInfo `json:"models"`
}

// VersionResponse represents the /api/version response
type VersionResponse struct {
	Version string `json:"version"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// OllamaClient is an HTTP client for a local Ollama server
type OllamaClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewOllamaClient creates a new Ollama client
func NewOllamaClient(baseURL string, timeout time.Duration) *OllamaClient {
	return &OllamaClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Name returns the backend name
func (c *OllamaClient) Name() string {
	return "ollama"
}

// Generate sends a prompt with streaming disabled and returns the completion text
func (c *OllamaClient) Generate(ctx context.Context, model, prompt string) (string, error) {
	reqBody := GenerateRequest{
		Model:  model,
		Prompt: prompt,
		Stream: false,
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", wrapRequestError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", statusError(resp, model)
	}

	var result GenerateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", wrapDecodeError(err)
	}

	if result.Response == nil {
		return "", service.ErrEmptyCompletion
	}

	return *result.Response, nil
}

// ListModels returns the names of the installed models
func (c *OllamaClient) ListModels(ctx context.Context) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/tags", http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, wrapRequestError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, statusError(resp, "")
	}

	var result TagsResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, wrapDecodeError(err)
	}

	names := make([]string, 0, len(result.Models))
	for _, m := range result.Models {
		names = append(names, m.Name)
	}

	return names, nil
}

// Ping checks that the Ollama server answers
func (c *OllamaClient) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/version", http.NoBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return wrapRequestError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return statusError(resp, "")
	}

	return nil
}

// statusError turns a non-200 reply into an error. Ollama answers 404 with
// {"error": "model 'x' not found"} when the model has not been pulled.
func statusError(resp *http.Response, model string) error {
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: Ollama returned status %d", service.ErrTransport, resp.StatusCode)
	}

	message := strings.TrimSpace(string(respBody))
	var errResp errorResponse
	if json.Unmarshal(respBody, &errResp) == nil && errResp.Error != "" {
		message = errResp.Error
	}

	if resp.StatusCode == http.StatusNotFound && strings.Contains(strings.ToLower(message), "not found") {
		return fmt.Errorf("%w: %s: %s", service.ErrModelNotFound, model, message)
	}

	return fmt.Errorf("%w: Ollama returned status %d: %s", service.ErrTransport, resp.StatusCode, message)
}
