package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Provider != ProviderAnthropic {
		t.Errorf("default provider = %q, want %q", cfg.Provider, ProviderAnthropic)
	}
	if cfg.Port != 3000 {
		t.Errorf("default port = %d, want 3000", cfg.Port)
	}
	if cfg.DatabasePath != "reefscout.db" {
		t.Errorf("default database_path = %q, want reefscout.db", cfg.DatabasePath)
	}
	if cfg.HistoryLimit != 10 {
		t.Errorf("default history_limit = %d, want 10", cfg.HistoryLimit)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig should validate, got: %v", err)
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reefscout.yml")

	original := DefaultConfig()
	original.Provider = ProviderOpenAI
	original.Model = "gpt-4o"
	original.Port = 8080
	original.DatabasePath = "data/scouting.db"
	original.RateLimitRPM = 12

	if err := original.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if loaded.Provider != original.Provider {
		t.Errorf("provider = %q, want %q", loaded.Provider, original.Provider)
	}
	if loaded.Model != original.Model {
		t.Errorf("model = %q, want %q", loaded.Model, original.Model)
	}
	if loaded.Port != original.Port {
		t.Errorf("port = %d, want %d", loaded.Port, original.Port)
	}
	if loaded.DatabasePath != original.DatabasePath {
		t.Errorf("database_path = %q, want %q", loaded.DatabasePath, original.DatabasePath)
	}
	if loaded.RateLimitRPM != original.RateLimitRPM {
		t.Errorf("rate_limit_rpm = %d, want %d", loaded.RateLimitRPM, original.RateLimitRPM)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nonexistent.yml")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if cfg.Provider != ProviderAnthropic {
		t.Errorf("provider = %q, want default", cfg.Provider)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reefscout.yml")
	if err := DefaultConfig().Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	t.Setenv("REEFSCOUT_PROVIDER", "ollama")
	t.Setenv("REEFSCOUT_PORT", "9090")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Provider != ProviderOllama {
		t.Errorf("provider = %q, want ollama from env", loaded.Provider)
	}
	if loaded.Port != 9090 {
		t.Errorf("port = %d, want 9090 from env", loaded.Port)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad port", func(c *Config) { c.Port = 0 }},
		{"missing database path", func(c *Config) { c.DatabasePath = "" }},
		{"empty provider", func(c *Config) { c.Provider = "" }},
		{"unknown provider", func(c *Config) { c.Provider = "skynet" }},
		{"missing model", func(c *Config) { c.Model = "" }},
		{"unknown quality", func(c *Config) { c.Quality = "ultra" }},
		{"negative rpm", func(c *Config) { c.RateLimitRPM = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestGetPreset(t *testing.T) {
	if p := GetPreset(ProviderOpenAI, QualityLite); p.Model != "gpt-4o-mini" {
		t.Errorf("preset model = %q, want gpt-4o-mini", p.Model)
	}
	// Unknown combinations fall back to the normal anthropic preset.
	if p := GetPreset("skynet", QualityMax); p.Model != "claude-sonnet-4-5-20250929" {
		t.Errorf("fallback model = %q", p.Model)
	}
}

func TestAddr(t *testing.T) {
	cfg := &Config{Host: "127.0.0.1", Port: 3000}
	if cfg.Addr() != "127.0.0.1:3000" {
		t.Errorf("Addr() = %q", cfg.Addr())
	}
}
