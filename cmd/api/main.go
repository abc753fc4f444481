package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ressKim-io/sentiment-service/internal/adapter/client"
	"github.com/ressKim-io/sentiment-service/internal/adapter/http/router"
	"github.com/ressKim-io/sentiment-service/internal/infrastructure/config"
	"github.com/ressKim-io/sentiment-service/internal/infrastructure/logger"
	"github.com/ressKim-io/sentiment-service/internal/usecase"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		model      string
	)

	cmd := &cobra.Command{
		Use:   "sentiment-service",
		Short: "Classify text sentiment with a locally hosted language model",
		Long: `sentiment-service relays text to an Ollama (or OpenAI-compatible) server,
asks for a one-word sentiment and answers POST /analyze/ with Positive,
Negative, Neutral or an error message.

Settings come from defaults, an optional YAML file, .env and SENTIMENT_*
environment variables.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath, model)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to a YAML config file")
	cmd.Flags().StringVarP(&model, "model", "m", "", "Model name (overrides inference.model)")

	return cmd
}

func loadConfig(path, model string) (*config.Config, error) {
	cfg, err := config.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if model != "" {
		cfg.Inference.Model = model
	}
	return cfg, nil
}

// newServer wires the inference backend, usecase and router into an HTTP server
func newServer(cfg *config.Config, log *zap.Logger) (*http.Server, error) {
	generator, err := client.NewTextGenerator(&cfg.Inference)
	if err != nil {
		return nil, fmt.Errorf("failed to create inference client: %w", err)
	}

	sentimentUC := usecase.NewSentimentUsecase(generator, usecase.SentimentOptions{
		Model:           cfg.Inference.Model,
		AutoSelectModel: cfg.Inference.AutoSelectModel,
		PreferredModels: cfg.Inference.PreferredModels,
		ProbeTimeout:    cfg.Inference.ProbeTimeout,
	}, log)

	r := router.Setup(sentimentUC, generator, cfg, log)

	return &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}, nil
}

func run(ctx context.Context, cfg *config.Config) error {
	// Initialize logger
	log, err := logger.NewLogger(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	// Set Gin mode
	gin.SetMode(cfg.Server.Mode)

	srv, err := newServer(cfg, log)
	if err != nil {
		log.Error("Failed to build server", zap.Error(err))
		return err
	}

	log.Info("Inference backend configured",
		zap.String("provider", cfg.Inference.Provider),
		zap.String("base_url", cfg.Inference.BaseURL),
		zap.String("model", cfg.Inference.Model),
		zap.Duration("timeout", cfg.Inference.Timeout),
		zap.Bool("auto_select_model", cfg.Inference.AutoSelectModel),
	)

	// Start server in goroutine
	serverErr := make(chan error, 1)
	go func() {
		log.Info("Starting server", zap.String("address", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Wait for interrupt signal
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-serverErr:
		log.Error("Server failed", zap.Error(err))
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	log.Info("Shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited")
	return nil
}
