package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.LLM.Provider != "openai" {
		t.Errorf("expected default provider openai, got %s", cfg.LLM.Provider)
	}
	if cfg.LLM.Model != "gpt-4o-mini" {
		t.Errorf("expected default model gpt-4o-mini, got %s", cfg.LLM.Model)
	}
	if cfg.LLM.Temperature != 0.7 {
		t.Errorf("expected default temperature 0.7, got %f", cfg.LLM.Temperature)
	}
	if cfg.LLM.MaxTokens != 1000 {
		t.Errorf("expected default max tokens 1000, got %d", cfg.LLM.MaxTokens)
	}
	if cfg.LLM.Timeout != 60*time.Second {
		t.Errorf("expected default timeout 60s, got %s", cfg.LLM.Timeout)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid default config",
			modify:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "missing provider",
			modify:  func(c *Config) { c.LLM.Provider = "" },
			wantErr: true,
		},
		{
			name:    "missing model",
			modify:  func(c *Config) { c.LLM.Model = "" },
			wantErr: true,
		},
		{
			name:    "temperature too low",
			modify:  func(c *Config) { c.LLM.Temperature = -0.1 },
			wantErr: true,
		},
		{
			name:    "temperature too high",
			modify:  func(c *Config) { c.LLM.Temperature = 2.1 },
			wantErr: true,
		},
		{
			name:    "negative max tokens",
			modify:  func(c *Config) { c.LLM.MaxTokens = -1 },
			wantErr: true,
		},
		{
			name:    "negative timeout",
			modify:  func(c *Config) { c.LLM.Timeout = -time.Second },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)

			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	content := []byte(`
llm:
  provider: mock
  model: mock-model
  temperature: 0.3
  timeout: 30s
`)
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("write config file: %v", err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}

	if cfg.LLM.Provider != "mock" {
		t.Errorf("expected provider mock, got %s", cfg.LLM.Provider)
	}
	if cfg.LLM.Temperature != 0.3 {
		t.Errorf("expected temperature 0.3, got %f", cfg.LLM.Temperature)
	}
	if cfg.LLM.Timeout != 30*time.Second {
		t.Errorf("expected timeout 30s, got %s", cfg.LLM.Timeout)
	}
	// Unspecified fields keep their defaults.
	if cfg.LLM.MaxTokens != 1000 {
		t.Errorf("expected default max tokens 1000, got %d", cfg.LLM.MaxTokens)
	}
}

func TestLoadFromFile_Missing(t *testing.T) {
	if _, err := LoadFromFile("/nonexistent/config.yaml"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestConfigMerge(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Merge(&Config{LLM: LLMConfig{
		Provider: "mock",
		APIKey:   "secret",
	}})

	if cfg.LLM.Provider != "mock" {
		t.Errorf("expected merged provider mock, got %s", cfg.LLM.Provider)
	}
	if cfg.LLM.APIKey != "secret" {
		t.Errorf("expected merged api key, got %s", cfg.LLM.APIKey)
	}
	// Zero values in other don't clobber existing settings.
	if cfg.LLM.Model != "gpt-4o-mini" {
		t.Errorf("expected model preserved, got %s", cfg.LLM.Model)
	}

	cfg.Merge(nil) // no-op
	if cfg.LLM.Provider != "mock" {
		t.Error("nil merge should not change config")
	}
}

func TestSaveToFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.yaml")

	cfg := DefaultConfig()
	if err := cfg.SaveToFile(path); err != nil {
		t.Fatalf("SaveToFile: %v", err)
	}

	loaded, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile after save: %v", err)
	}
	if loaded.LLM.Provider != cfg.LLM.Provider {
		t.Errorf("round trip changed provider: %s != %s", loaded.LLM.Provider, cfg.LLM.Provider)
	}
}
