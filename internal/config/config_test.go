package config

import (
	"testing"
	"time"
)

func TestLoadDevelopmentWithoutGeminiKey(t *testing.T) {
	t.Setenv("ENV", "development")
	t.Setenv("GEMINI_API_KEY", "")

	cfg := Load()

	if cfg.Env != "development" {
		t.Errorf("env = %q, want development", cfg.Env)
	}
	if cfg.GeminiAPIKey != "" {
		t.Errorf("gemini key = %q, want empty", cfg.GeminiAPIKey)
	}
}

func TestGetDurationFallback(t *testing.T) {
	t.Setenv("JWT_EXPIRY", "not-a-duration")

	if d := getDuration("JWT_EXPIRY", time.Hour); d != time.Hour {
		t.Errorf("duration = %v, want fallback %v", d, time.Hour)
	}
}

func TestGetDurationParse(t *testing.T) {
	t.Setenv("LLM_TIMEOUT", "90s")

	if d := getDuration("LLM_TIMEOUT", 30*time.Second); d != 90*time.Second {
		t.Errorf("duration = %v, want 90s", d)
	}
}
