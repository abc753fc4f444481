package main

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Run("model flag overrides file", func(t *testing.T) {
		path := writeConfig(t, "inference:\n  model: llama2\n")

		cfg, err := loadConfig(path, "tinyllama")

		require.NoError(t, err)
		assert.Equal(t, "tinyllama", cfg.Inference.Model)
	})

	t.Run("file model kept without flag", func(t *testing.T) {
		path := writeConfig(t, "inference:\n  model: llama2\n")

		cfg, err := loadConfig(path, "")

		require.NoError(t, err)
		assert.Equal(t, "llama2", cfg.Inference.Model)
	})

	t.Run("invalid config", func(t *testing.T) {
		path := writeConfig(t, "inference:\n  provider: bard\n")

		_, err := loadConfig(path, "")

		assert.Error(t, err)
	})
}

func TestRootCmd_RejectsArgs(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"extra"})

	assert.Error(t, cmd.Execute())
}

func TestNewServer(t *testing.T) {
	ollama := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/generate", r.URL.Path)
		_, _ = w.Write([]byte(`{"model":"phi","response":"neutral.","done":true}`))
	}))
	defer ollama.Close()

	path := writeConfig(t, "server:\n  port: 9090\ninference:\n  base_url: "+ollama.URL+"\n  timeout: 2s\n")
	cfg, err := loadConfig(path, "")
	require.NoError(t, err)

	srv, err := newServer(cfg, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:9090", srv.Addr)
	assert.Equal(t, 30*time.Second, srv.ReadTimeout)

	form := url.Values{"text": {"It is a Tuesday."}}
	req, _ := http.NewRequest("POST", "/analyze/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	srv.Handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"sentiment":"Neutral"}`, w.Body.String())
}

func TestNewServer_UnknownProvider(t *testing.T) {
	path := writeConfig(t, "inference:\n  model: phi\n")
	cfg, err := loadConfig(path, "")
	require.NoError(t, err)
	cfg.Inference.Provider = "bard"

	_, err = newServer(cfg, zap.NewNop())

	assert.Error(t, err)
}
