package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invotab/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Port)
	assert.Equal(t, "gemini", cfg.Model.Primary.Provider)
	assert.Equal(t, "gemini-2.0-flash", cfg.Model.Primary.DefaultModel)
	assert.Equal(t, int64(25), cfg.Upload.MaxFileSizeMB)
	assert.Equal(t, int64(10), cfg.Upload.MaxImageSizeMB)
	assert.Equal(t, 1024, cfg.Image.MaxDimension)
	assert.Equal(t, 80, cfg.Image.JPEGQuality)
	assert.Contains(t, cfg.CORS.AllowedOrigins, "http://localhost:3000")
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("INVOTAB_SERVER_PORT", ":9999")
	t.Setenv("INVOTAB_MODEL_PRIMARY_PROVIDER", "claude")
	t.Setenv("INVOTAB_MODEL_PRIMARY_API_KEY", "sk-test")
	t.Setenv("INVOTAB_MODEL_SECONDARY_PROVIDER", "openai")
	t.Setenv("INVOTAB_UPLOAD_MAX_FILE_SIZE_MB", "5")
	t.Setenv("INVOTAB_CORS_ALLOWED_ORIGINS", "https://app.example.com, https://staging.example.com")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":9999", cfg.Server.Port)
	assert.Equal(t, "claude", cfg.Model.Primary.Provider)
	assert.Equal(t, "sk-test", cfg.Model.Primary.APIKey)
	assert.Equal(t, "openai", cfg.Model.Secondary.Provider)
	assert.Equal(t, int64(5), cfg.Upload.MaxFileSizeMB)
	assert.Equal(t, []string{"https://app.example.com", "https://staging.example.com"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_PlatformPortFallback(t *testing.T) {
	t.Setenv("PORT", "7777")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, ":7777", cfg.Server.Port)
}

func TestLoad_ExplicitPortBeatsPlatformPort(t *testing.T) {
	t.Setenv("PORT", "7777")
	t.Setenv("INVOTAB_SERVER_PORT", ":8081")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, ":8081", cfg.Server.Port)
}

func TestModelConfig_SecondaryConfig(t *testing.T) {
	cfg := config.ModelConfig{
		Primary: config.ModelProviderConfig{Provider: "gemini"},
	}
	assert.Nil(t, cfg.SecondaryConfig())
	assert.Nil(t, cfg.TertiaryConfig())

	cfg.Secondary = config.ModelProviderConfig{Provider: "claude", APIKey: "sk-2"}
	secondary := cfg.SecondaryConfig()
	require.NotNil(t, secondary)
	assert.Equal(t, "claude", secondary.Provider)

	cfg.Tertiary = config.ModelProviderConfig{Provider: "openai"}
	tertiary := cfg.TertiaryConfig()
	require.NotNil(t, tertiary)
	assert.Equal(t, "openai", tertiary.Provider)
}
