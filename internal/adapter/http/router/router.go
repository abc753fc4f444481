package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/ressKim-io/sentiment-service/internal/adapter/http/handler"
	"github.com/ressKim-io/sentiment-service/internal/adapter/http/middleware"
	"github.com/ressKim-io/sentiment-service/internal/domain/service"
	"github.com/ressKim-io/sentiment-service/internal/infrastructure/config"
	"github.com/ressKim-io/sentiment-service/internal/usecase"
)

// Setup creates and configures the Gin router
func Setup(
	sentimentUC usecase.SentimentUsecase,
	generator service.TextGenerator,
	cfg *config.Config,
	logger *zap.Logger,
) *gin.Engine {
	router := gin.New()
	router.HandleMethodNotAllowed = true

	// Middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.CORS(cfg.Server.AllowedOrigins...))
	router.Use(middleware.Metrics())

	// Health endpoints
	healthHandler := handler.NewHealthHandler(generator, sentimentUC.Model(), cfg.Inference.ProbeTimeout)
	router.GET("/", healthHandler.Root)
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)
	router.GET("/models", healthHandler.Models)

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Classification
	sentimentHandler := handler.NewSentimentHandler(sentimentUC, logger)
	router.POST("/analyze/", sentimentHandler.Analyze)

	router.NoRoute(handler.NotFound)
	router.NoMethod(handler.MethodNotAllowed)

	return router
}
