package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func clearLoadEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "DATABASE_URL", "JWT_SECRET", "JWT_ALGORITHM",
		"ACCESS_TOKEN_EXPIRE_MINUTES", "OLLAMA_MODEL", "OLLAMA_API_BASE",
		"OLLAMA_API_TOKEN", "SYSTEM_PROMPT", "SES_EMAIL", "AWS_REGION",
		"ADMIN_USER", "ADMIN_EMAIL", "ADMIN_PASSWORD",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearLoadEnv(t)

	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "HS256", cfg.JWTAlgorithm)
	assert.Equal(t, 24*time.Hour, cfg.TokenExpiry)
	assert.Equal(t, "llama3.2:1b", cfg.OllamaModel)
	assert.Equal(t, "http://localhost:11434", cfg.OllamaAPIBase)
	assert.Equal(t, "You are a helpful assistant.", cfg.SystemPrompt)
	assert.Empty(t, cfg.JWTSecret)
	assert.Empty(t, cfg.DatabaseURL)
}

func TestLoad_ReadsEnvironment(t *testing.T) {
	clearLoadEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("JWT_SECRET", "supersecret")
	t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "60")
	t.Setenv("OLLAMA_MODEL", "llama3.2:3b")
	t.Setenv("OLLAMA_API_TOKEN", "sk-abc")
	t.Setenv("ADMIN_USER", "admin")

	cfg := Load()
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "supersecret", cfg.JWTSecret)
	assert.Equal(t, time.Hour, cfg.TokenExpiry)
	assert.Equal(t, "llama3.2:3b", cfg.OllamaModel)
	assert.Equal(t, "sk-abc", cfg.OllamaAPIToken)
	assert.Equal(t, "admin", cfg.AdminUser)
}

func TestLoad_BadExpiryFallsBack(t *testing.T) {
	clearLoadEnv(t)

	for _, v := range []string{"abc", "-5", "0"} {
		t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", v)
		cfg := Load()
		assert.Equal(t, 24*time.Hour, cfg.TokenExpiry, "value %q", v)
	}
}
