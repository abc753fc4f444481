package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ressKim-io/sentiment-service/internal/domain/service"
)

const defaultProbeTimeout = 5 * time.Second

// HealthHandler handles health check endpoints
type HealthHandler struct {
	generator service.TextGenerator
	model     string
	timeout   time.Duration
}

// NewHealthHandler creates a new health handler. A non-positive timeout
// falls back to five seconds.
func NewHealthHandler(generator service.TextGenerator, model string, timeout time.Duration) *HealthHandler {
	if timeout <= 0 {
		timeout = defaultProbeTimeout
	}
	return &HealthHandler{
		generator: generator,
		model:     model,
		timeout:   timeout,
	}
}

// HealthStatus represents the health check response
type HealthStatus struct {
	Status     string            `json:"status"`
	Components map[string]string `json:"components"`
}

// RootStatus represents the GET / response
type RootStatus struct {
	Status string `json:"status"`
	Model  string `json:"model"`
}

// ModelList represents the GET /models response data
type ModelList struct {
	Provider  string   `json:"provider"`
	Default   string   `json:"default"`
	Installed bool     `json:"installed"`
	Models    []string `json:"models"`
}

// Root handles GET /
func (h *HealthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, RootStatus{Status: "ok", Model: h.model})
}

// Health handles GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	components := make(map[string]string)
	healthy := true

	if h.generator == nil {
		components["inference"] = "not configured"
		components["model"] = "unknown"
		healthy = false
	} else if err := h.generator.Ping(ctx); err != nil {
		components["inference"] = "error: " + err.Error()
		components["model"] = "unknown"
		healthy = false
	} else {
		components["inference"] = "ok"

		// Check model
		names, err := h.generator.ListModels(ctx)
		switch {
		case err != nil:
			components["model"] = "unknown"
		case modelInstalled(h.model, names):
			components["model"] = "available"
		default:
			components["model"] = "missing"
			healthy = false
		}
	}

	status := "healthy"
	httpStatus := http.StatusOK
	if !healthy {
		status = "unhealthy"
		httpStatus = http.StatusServiceUnavailable
	}

	c.JSON(httpStatus, HealthStatus{
		Status:     status,
		Components: components,
	})
}

// Ready handles GET /ready
func (h *HealthHandler) Ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	if h.generator == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready", "reason": "inference not configured"})
		return
	}
	if err := h.generator.Ping(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready", "reason": "inference server unreachable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}

// Models handles GET /models
func (h *HealthHandler) Models(c *gin.Context) {
	if h.generator == nil {
		respondError(c, http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "inference not configured")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	names, err := h.generator.ListModels(ctx)
	if err != nil {
		HandleGeneratorError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, ModelList{
		Provider:  h.generator.Name(),
		Default:   h.model,
		Installed: modelInstalled(h.model, names),
		Models:    names,
	})
}
