package service

import "context"

// TextGenerator defines the interface for a text-generation backend
type TextGenerator interface {
	// Generate sends a single non-streaming prompt and returns the completion text
	Generate(ctx context.Context, model, prompt string) (string, error)

	// ListModels returns the names of the models installed on the server
	ListModels(ctx context.Context) ([]string, error)

	// Ping checks that the server is reachable
	Ping(ctx context.Context) error

	// Name identifies the backend in logs and metrics
	Name() string
}
