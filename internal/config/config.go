package config

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	Log    LogConfig
	CORS   CORSConfig
	Model  ModelConfig
	Upload UploadConfig
	Image  ImageConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// ModelProviderConfig holds settings for a single generative model provider.
type ModelProviderConfig struct {
	Provider     string `mapstructure:"provider"`
	APIKey       string `mapstructure:"api_key"`
	DefaultModel string `mapstructure:"default_model"`
	MaxRetries   int    `mapstructure:"max_retries"`
	TimeoutSecs  int    `mapstructure:"timeout_secs"`
}

// ModelConfig holds generative model settings with multi-provider fallback.
type ModelConfig struct {
	Primary   ModelProviderConfig `mapstructure:"primary"`
	Secondary ModelProviderConfig `mapstructure:"secondary"`
	Tertiary  ModelProviderConfig `mapstructure:"tertiary"`
}

// PrimaryConfig returns the primary model provider config.
func (m *ModelConfig) PrimaryConfig() *ModelProviderConfig {
	return &m.Primary
}

// SecondaryConfig returns the secondary model provider config, or nil if not configured.
func (m *ModelConfig) SecondaryConfig() *ModelProviderConfig {
	if m.Secondary.Provider != "" {
		return &m.Secondary
	}
	return nil
}

// TertiaryConfig returns the tertiary model provider config, or nil if not configured.
func (m *ModelConfig) TertiaryConfig() *ModelProviderConfig {
	if m.Tertiary.Provider != "" {
		return &m.Tertiary
	}
	return nil
}

// UploadConfig holds upload validation settings.
type UploadConfig struct {
	MaxFileSizeMB  int64 `mapstructure:"max_file_size_mb"`
	MaxImageSizeMB int64 `mapstructure:"max_image_size_mb"`
}

// ImageConfig holds image recompression settings.
type ImageConfig struct {
	MaxDimension int `mapstructure:"max_dimension"`
	JPEGQuality  int `mapstructure:"jpeg_quality"`
}

// Load reads configuration from environment variables with the INVOTAB_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("INVOTAB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "120s")
	v.SetDefault("server.environment", "development")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Model provider defaults: Gemini primary, no fallbacks unless configured
	v.SetDefault("model.primary.provider", "gemini")
	v.SetDefault("model.primary.api_key", "")
	v.SetDefault("model.primary.default_model", "gemini-2.0-flash")
	v.SetDefault("model.primary.max_retries", 2)
	v.SetDefault("model.primary.timeout_secs", 120)
	v.SetDefault("model.secondary.provider", "")
	v.SetDefault("model.secondary.api_key", "")
	v.SetDefault("model.secondary.default_model", "")
	v.SetDefault("model.secondary.max_retries", 2)
	v.SetDefault("model.secondary.timeout_secs", 120)
	v.SetDefault("model.tertiary.provider", "")
	v.SetDefault("model.tertiary.api_key", "")
	v.SetDefault("model.tertiary.default_model", "")
	v.SetDefault("model.tertiary.max_retries", 2)
	v.SetDefault("model.tertiary.timeout_secs", 120)

	// Upload defaults
	v.SetDefault("upload.max_file_size_mb", 25)
	v.SetDefault("upload.max_image_size_mb", 10)

	// Image defaults
	v.SetDefault("image.max_dimension", 1024)
	v.SetDefault("image.jpeg_quality", 80)

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":                   "INVOTAB_SERVER_PORT",
		"server.read_timeout":           "INVOTAB_SERVER_READ_TIMEOUT",
		"server.write_timeout":          "INVOTAB_SERVER_WRITE_TIMEOUT",
		"server.environment":            "INVOTAB_SERVER_ENVIRONMENT",
		"log.level":                     "INVOTAB_LOG_LEVEL",
		"log.format":                    "INVOTAB_LOG_FORMAT",
		"cors.allowed_origins":          "INVOTAB_CORS_ALLOWED_ORIGINS",
		"model.primary.provider":        "INVOTAB_MODEL_PRIMARY_PROVIDER",
		"model.primary.api_key":         "INVOTAB_MODEL_PRIMARY_API_KEY",
		"model.primary.default_model":   "INVOTAB_MODEL_PRIMARY_DEFAULT_MODEL",
		"model.primary.max_retries":     "INVOTAB_MODEL_PRIMARY_MAX_RETRIES",
		"model.primary.timeout_secs":    "INVOTAB_MODEL_PRIMARY_TIMEOUT_SECS",
		"model.secondary.provider":      "INVOTAB_MODEL_SECONDARY_PROVIDER",
		"model.secondary.api_key":       "INVOTAB_MODEL_SECONDARY_API_KEY",
		"model.secondary.default_model": "INVOTAB_MODEL_SECONDARY_DEFAULT_MODEL",
		"model.secondary.max_retries":   "INVOTAB_MODEL_SECONDARY_MAX_RETRIES",
		"model.secondary.timeout_secs":  "INVOTAB_MODEL_SECONDARY_TIMEOUT_SECS",
		"model.tertiary.provider":       "INVOTAB_MODEL_TERTIARY_PROVIDER",
		"model.tertiary.api_key":        "INVOTAB_MODEL_TERTIARY_API_KEY",
		"model.tertiary.default_model":  "INVOTAB_MODEL_TERTIARY_DEFAULT_MODEL",
		"model.tertiary.max_retries":    "INVOTAB_MODEL_TERTIARY_MAX_RETRIES",
		"model.tertiary.timeout_secs":   "INVOTAB_MODEL_TERTIARY_TIMEOUT_SECS",
		"upload.max_file_size_mb":       "INVOTAB_UPLOAD_MAX_FILE_SIZE_MB",
		"upload.max_image_size_mb":      "INVOTAB_UPLOAD_MAX_IMAGE_SIZE_MB",
		"image.max_dimension":           "INVOTAB_IMAGE_MAX_DIMENSION",
		"image.jpeg_quality":            "INVOTAB_IMAGE_JPEG_QUALITY",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if INVOTAB_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("INVOTAB_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}

	cfg.Model = ModelConfig{
		Primary: ModelProviderConfig{
			Provider:     v.GetString("model.primary.provider"),
			APIKey:       v.GetString("model.primary.api_key"),
			DefaultModel: v.GetString("model.primary.default_model"),
			MaxRetries:   v.GetInt("model.primary.max_retries"),
			TimeoutSecs:  v.GetInt("model.primary.timeout_secs"),
		},
		Secondary: ModelProviderConfig{
			Provider:     v.GetString("model.secondary.provider"),
			APIKey:       v.GetString("model.secondary.api_key"),
			DefaultModel: v.GetString("model.secondary.default_model"),
			MaxRetries:   v.GetInt("model.secondary.max_retries"),
			TimeoutSecs:  v.GetInt("model.secondary.timeout_secs"),
		},
		Tertiary: ModelProviderConfig{
			Provider:     v.GetString("model.tertiary.provider"),
			APIKey:       v.GetString("model.tertiary.api_key"),
			DefaultModel: v.GetString("model.tertiary.default_model"),
			MaxRetries:   v.GetInt("model.tertiary.max_retries"),
			TimeoutSecs:  v.GetInt("model.tertiary.timeout_secs"),
		},
	}

	cfg.Upload = UploadConfig{
		MaxFileSizeMB:  v.GetInt64("upload.max_file_size_mb"),
		MaxImageSizeMB: v.GetInt64("upload.max_image_size_mb"),
	}

	cfg.Image = ImageConfig{
		MaxDimension: v.GetInt("image.max_dimension"),
		JPEGQuality:  v.GetInt("image.jpeg_quality"),
	}

	return cfg, nil
}
