package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "dev", cfg.LogMode)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, 0.6, cfg.Engine.EligibilityThreshold)
	assert.Equal(t, 20*time.Second, cfg.Engine.AdapterBudget)
	assert.Equal(t, 90*time.Minute, cfg.SessionWindow)
	assert.Empty(t, cfg.Tracing.Mode)
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("MASTERYFORGE_DB", "/tmp/mf.db")
	t.Setenv("MASTERYFORGE_LOG_MODE", "prod")
	t.Setenv("MASTERYFORGE_HTTP_ADDR", "127.0.0.1:9000")
	t.Setenv("MASTERYFORGE_CORS_ORIGINS", "http://a.test, http://b.test,")
	t.Setenv("MASTERYFORGE_TRACING", "otlp")
	t.Setenv("MASTERYFORGE_OTLP_ENDPOINT", "collector:4318")
	t.Setenv("MASTERYFORGE_OTLP_HEADERS", "x-api-key=secret")
	t.Setenv("MASTERYFORGE_FRUSTRATION_PIVOT", "0.8")
	t.Setenv("MASTERYFORGE_STUCK_ATTEMPTS", "5")
	t.Setenv("MASTERYFORGE_ADAPTER_BUDGET", "5s")
	t.Setenv("MASTERYFORGE_SESSION_WINDOW", "45m")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/mf.db", cfg.DBPath)
	assert.Equal(t, "prod", cfg.LogMode)
	assert.Equal(t, "127.0.0.1:9000", cfg.HTTPAddr)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins)
	assert.Equal(t, "otlp", cfg.Tracing.Mode)
	assert.Equal(t, "collector:4318", cfg.Tracing.Endpoint)
	assert.Equal(t, map[string]string{"x-api-key": "secret"}, cfg.Tracing.Headers)
	assert.Equal(t, 0.8, cfg.Engine.FrustrationPivot)
	assert.Equal(t, 5, cfg.Engine.StuckAttempts)
	assert.Equal(t, 5*time.Second, cfg.Engine.AdapterBudget)
	assert.Equal(t, 45*time.Minute, cfg.SessionWindow)
}

func TestFromEnv_InvalidValues(t *testing.T) {
	t.Setenv("MASTERYFORGE_ELIGIBILITY_THRESHOLD", "1.5")
	t.Setenv("MASTERYFORGE_ADAPTER_BUDGET", "soon")
	t.Setenv("MASTERYFORGE_LOG_MODE", "loud")

	_, err := FromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ELIGIBILITY_THRESHOLD")
	assert.Contains(t, err.Error(), "ADAPTER_BUDGET")
	assert.Contains(t, err.Error(), "LOG_MODE")
}

func TestLoad_DotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("MASTERYFORGE_HTTP_ADDR=:7070\nMASTERYFORGE_LOG_LEVEL=debug\n"), 0o600))
	t.Setenv("MASTERYFORGE_LOG_LEVEL", "warn")
	t.Cleanup(func() { os.Unsetenv("MASTERYFORGE_HTTP_ADDR") })

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.HTTPAddr)
	assert.Equal(t, "warn", cfg.LogLevel, "environment wins over .env")
}

func TestLoad_MissingFileIsFine(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
}

func TestIsSet(t *testing.T) {
	t.Setenv("MASTERYFORGE_LLM_PROVIDER", "  ")
	assert.False(t, IsSet("LLM_PROVIDER"))

	t.Setenv("MASTERYFORGE_LLM_PROVIDER", "gemini")
	assert.True(t, IsSet("LLM_PROVIDER"))
}
