package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Server.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Scribe.Provider != ProviderElevenLabs {
		t.Errorf("expected default provider %q, got %q", ProviderElevenLabs, cfg.Scribe.Provider)
	}
	if cfg.Scribe.ModelID != "scribe_v1" {
		t.Errorf("expected default model_id scribe_v1, got %q", cfg.Scribe.ModelID)
	}
	if cfg.Line.APIBaseURL != "https://api.line.me" {
		t.Errorf("unexpected default api_base_url %q", cfg.Line.APIBaseURL)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got: %v", err)
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yamabiko.yml")

	original := DefaultConfig()
	original.Server.Port = 9000
	original.Scribe.Provider = ProviderWhisper
	original.Line.TimeoutSeconds = 15
	original.Log.Format = "json"

	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.Server.Port != 9000 {
		t.Errorf("port: got %d, want 9000", loaded.Server.Port)
	}
	if loaded.Scribe.Provider != ProviderWhisper {
		t.Errorf("provider: got %q, want %q", loaded.Scribe.Provider, ProviderWhisper)
	}
	if loaded.Line.TimeoutSeconds != 15 {
		t.Errorf("timeout_seconds: got %d, want 15", loaded.Line.TimeoutSeconds)
	}
	if loaded.Log.Format != "json" {
		t.Errorf("log format: got %q, want json", loaded.Log.Format)
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent.yml")

	// Loading a missing file should return defaults, not an error.
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load of missing file should succeed with defaults, got: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("expected default port, got %d", cfg.Server.Port)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "missing.yml")

	t.Setenv("YAMABIKO_LOG__LEVEL", "debug")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("expected env override log level debug, got %q", cfg.Log.Level)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero port", func(c *Config) { c.Server.Port = 0 }},
		{"huge port", func(c *Config) { c.Server.Port = 70000 }},
		{"unknown provider", func(c *Config) { c.Scribe.Provider = "parakeet" }},
		{"empty api base url", func(c *Config) { c.Line.APIBaseURL = "" }},
		{"empty scribe base url", func(c *Config) { c.Scribe.BaseURL = "" }},
		{"zero line timeout", func(c *Config) { c.Line.TimeoutSeconds = 0 }},
		{"zero scribe timeout", func(c *Config) { c.Scribe.TimeoutSeconds = 0 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestLoadSecretsFromEnv(t *testing.T) {
	t.Setenv(EnvChannelSecret, "s1")
	t.Setenv(EnvChannelAccessToken, "t1")
	t.Setenv(EnvTranscriptionAPIKey, "k1")

	s := LoadSecrets()
	if s.ChannelSecret != "s1" || s.ChannelAccessToken != "t1" || s.TranscriptionAPIKey != "k1" {
		t.Errorf("secrets not loaded from environment: %+v", s)
	}
	if err := s.Validate(); err != nil {
		t.Errorf("complete secrets should validate, got: %v", err)
	}
}

func TestSecretsValidateMissing(t *testing.T) {
	cases := []struct {
		name string
		s    Secrets
	}{
		{"missing channel secret", Secrets{ChannelAccessToken: "t", TranscriptionAPIKey: "k"}},
		{"missing access token", Secrets{ChannelSecret: "s", TranscriptionAPIKey: "k"}},
		{"missing transcription key", Secrets{ChannelSecret: "s", ChannelAccessToken: "t"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.s.Validate(); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}
