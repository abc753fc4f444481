package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable the service reads
const EnvPrefix = "SENTIMENT"

// Config holds all service configuration
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Inference InferenceConfig `mapstructure:"inference"`
	Log       LogConfig       `mapstructure:"log"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	Mode            string        `mapstructure:"mode"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	AllowedOrigins  []string      `mapstructure:"allowed_origins"`
}

// Address returns the host:port the server listens on
func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// InferenceConfig holds model server settings
type InferenceConfig struct {
	Provider        string        `mapstructure:"provider"`
	BaseURL         string        `mapstructure:"base_url"`
	APIKey          string        `mapstructure:"api_key"`
	Model           string        `mapstructure:"model"`
	Timeout         time.Duration `mapstructure:"timeout"`
	ProbeTimeout    time.Duration `mapstructure:"probe_timeout"`
	AutoSelectModel bool          `mapstructure:"auto_select_model"`
	PreferredModels []string      `mapstructure:"preferred_models"`
}

// LogConfig holds logger settings
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from .env, SENTIMENT_* variables and defaults
func Load() (*Config, error) {
	return LoadFile("")
}

// LoadFile is like Load but also reads the given YAML file when path is set.
// Environment variables override file values.
func LoadFile(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// MODEL_NAME is the override name the original deployment scripts export
	if err := v.BindEnv("inference.model", EnvPrefix+"_INFERENCE_MODEL", "MODEL_NAME"); err != nil {
		return nil, fmt.Errorf("failed to bind model env: %w", err)
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.read_timeout", 30*time.Second)
	v.SetDefault("server.write_timeout", 30*time.Second)
	v.SetDefault("server.idle_timeout", 60*time.Second)
	v.SetDefault("server.shutdown_timeout", 30*time.Second)
	v.SetDefault("server.allowed_origins", []string{"*"})

	v.SetDefault("inference.provider", "ollama")
	v.SetDefault("inference.base_url", "http://localhost:11434")
	v.SetDefault("inference.api_key", "")
	v.SetDefault("inference.model", "phi")
	v.SetDefault("inference.timeout", 15*time.Second)
	v.SetDefault("inference.probe_timeout", 3*time.Second)
	v.SetDefault("inference.auto_select_model", false)
	v.SetDefault("inference.preferred_models", []string{"phi", "tinyllama", "gemma:2b", "llama2"})

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
}

// Validate checks the configuration for values the service cannot run with
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}

	switch c.Inference.Provider {
	case "ollama", "openai":
	default:
		return fmt.Errorf("inference.provider must be ollama or openai, got %q", c.Inference.Provider)
	}

	if strings.TrimSpace(c.Inference.BaseURL) == "" {
		return errors.New("inference.base_url is required")
	}
	if strings.TrimSpace(c.Inference.Model) == "" {
		return errors.New("inference.model is required")
	}
	if c.Inference.Timeout <= 0 {
		return errors.New("inference.timeout must be positive")
	}
	if c.Inference.AutoSelectModel && c.Inference.ProbeTimeout <= 0 {
		return errors.New("inference.probe_timeout must be positive when auto_select_model is enabled")
	}

	return nil
}
