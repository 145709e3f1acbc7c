package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	CORS   CORSConfig
	Upload UploadConfig
	OpenAI OpenAIConfig
	Claims ClaimsConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// UploadConfig holds upload limits. A MaxFileSizeMB of zero or less
// disables the size cap.
type UploadConfig struct {
	MaxFileSizeMB int64 `mapstructure:"max_file_size_mb"`
}

// OpenAIConfig holds settings for the LLM reconciliation client. An empty
// APIKey leaves the service running but makes every reconcile call fail
// with 503.
type OpenAIConfig struct {
	APIKey      string `mapstructure:"api_key"`
	Model       string `mapstructure:"model"`
	Endpoint    string `mapstructure:"endpoint"`
	TimeoutSecs int    `mapstructure:"timeout_secs"`
}

// ClaimsConfig holds settings for the claims API client. Missing
// credentials disable claim forwarding only.
type ClaimsConfig struct {
	APIKey      string `mapstructure:"api_key"`
	BaseURL     string `mapstructure:"base_url"`
	Environment string `mapstructure:"environment"`
	TimeoutSecs int    `mapstructure:"timeout_secs"`
}

// Known claims API endpoints per deployment environment.
const (
	claimsSandboxURL    = "https://api.playground.curacel.co"
	claimsProductionURL = "https://api.health.curacel.co"
)

// ResolveBaseURL returns the claims API base URL: an explicit base_url wins,
// otherwise the environment flag selects a known endpoint.
func (c *ClaimsConfig) ResolveBaseURL() string {
	if c.BaseURL != "" {
		return c.BaseURL
	}
	switch c.Environment {
	case "production":
		return claimsProductionURL
	case "sandbox":
		return claimsSandboxURL
	default:
		return ""
	}
}

// Load reads configuration from environment variables with the
// INVOICEMATCH_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("INVOICEMATCH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "180s")
	v.SetDefault("server.environment", "development")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Upload defaults
	v.SetDefault("upload.max_file_size_mb", 20)

	// OpenAI defaults
	v.SetDefault("openai.api_key", "")
	v.SetDefault("openai.model", "gpt-4-turbo-preview")
	v.SetDefault("openai.endpoint", "")
	v.SetDefault("openai.timeout_secs", 120)

	// Claims API defaults
	v.SetDefault("claims.api_key", "")
	v.SetDefault("claims.base_url", "")
	v.SetDefault("claims.environment", "sandbox")
	v.SetDefault("claims.timeout_secs", 30)

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":             "INVOICEMATCH_SERVER_PORT",
		"server.read_timeout":     "INVOICEMATCH_SERVER_READ_TIMEOUT",
		"server.write_timeout":    "INVOICEMATCH_SERVER_WRITE_TIMEOUT",
		"server.environment":      "INVOICEMATCH_SERVER_ENVIRONMENT",
		"cors.allowed_origins":    "INVOICEMATCH_CORS_ALLOWED_ORIGINS",
		"upload.max_file_size_mb": "INVOICEMATCH_UPLOAD_MAX_FILE_SIZE_MB",
		"openai.api_key":          "INVOICEMATCH_OPENAI_API_KEY",
		"openai.model":            "INVOICEMATCH_OPENAI_MODEL",
		"openai.endpoint":         "INVOICEMATCH_OPENAI_ENDPOINT",
		"openai.timeout_secs":     "INVOICEMATCH_OPENAI_TIMEOUT_SECS",
		"claims.api_key":          "INVOICEMATCH_CLAIMS_API_KEY",
		"claims.base_url":         "INVOICEMATCH_CLAIMS_BASE_URL",
		"claims.environment":      "INVOICEMATCH_CLAIMS_ENVIRONMENT",
		"claims.timeout_secs":     "INVOICEMATCH_CLAIMS_TIMEOUT_SECS",
	}
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
