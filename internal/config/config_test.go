package config

import (
	"testing"
)

func TestFromEnvRequiresAPIKey(t *testing.T) {
	t.Setenv(EnvAPIKey, "")

	if _, err := FromEnv(); err == nil {
		t.Fatal("expected error when API key is unset")
	}
}

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv(EnvAPIKey, "sk-test")
	t.Setenv(EnvBaseURL, "")
	t.Setenv(EnvModel, "")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.APIKey != "sk-test" {
		t.Errorf("unexpected api key %q", cfg.APIKey)
	}
	if cfg.Model == "" {
		t.Error("expected a default model")
	}
	if cfg.Timeout != DefaultTimeout {
		t.Errorf("expected default timeout, got %v", cfg.Timeout)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv(EnvAPIKey, "sk-test")
	t.Setenv(EnvBaseURL, "http://localhost:9999/v1")
	t.Setenv(EnvModel, "custom-model")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.BaseURL != "http://localhost:9999/v1" {
		t.Errorf("unexpected base url %q", cfg.BaseURL)
	}
	if cfg.Model != "custom-model" {
		t.Errorf("unexpected model %q", cfg.Model)
	}
}
