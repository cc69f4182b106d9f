package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Extraction.FallbackProvider != "openai" {
		t.Errorf("unexpected fallback provider: %q", cfg.Extraction.FallbackProvider)
	}
	if cfg.Extraction.CoverageThreshold != 0.90 {
		t.Errorf("unexpected coverage threshold: %v", cfg.Extraction.CoverageThreshold)
	}
	if cfg.Extraction.MaxTextChars != 120000 {
		t.Errorf("unexpected max text chars: %d", cfg.Extraction.MaxTextChars)
	}
	if cfg.Batch.Workers <= 0 {
		t.Errorf("batch workers must be positive, got %d", cfg.Batch.Workers)
	}

	for _, name := range []string{"openai", "gemini"} {
		p, ok := cfg.Providers[name]
		if !ok {
			t.Errorf("missing provider %q", name)
			continue
		}
		if p.Model == "" {
			t.Errorf("provider %q has no default model", name)
		}
		if p.APIKey == "" {
			t.Errorf("provider %q has no API key reference", name)
		}
	}
}

func TestResolveEnvVars(t *testing.T) {
	t.Setenv("PRECEDENT_TEST_KEY", "sk-secret")

	tests := []struct {
		input string
		want  string
	}{
		{"${PRECEDENT_TEST_KEY}", "sk-secret"},
		{"prefix-${PRECEDENT_TEST_KEY}", "prefix-sk-secret"},
		{"plain-value", "plain-value"},
		{"${PRECEDENT_UNSET_VAR}", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := ResolveEnvVars(tt.input); got != tt.want {
			t.Errorf("ResolveEnvVars(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestToProviderSettings(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg := DefaultConfig()
	settings := cfg.ToProviderSettings()

	if settings.Provider != "openai" {
		t.Errorf("unexpected provider: %q", settings.Provider)
	}
	if settings.APIKey != "sk-test" {
		t.Errorf("API key not resolved: %q", settings.APIKey)
	}
	if settings.Model != "gpt-4o-mini" {
		t.Errorf("unexpected model: %q", settings.Model)
	}
	if settings.Timeout != 120*time.Second {
		t.Errorf("unexpected timeout: %v", settings.Timeout)
	}
}

func TestToProviderSettingsDisabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Extraction.FallbackProvider = "none"

	settings := cfg.ToProviderSettings()
	if settings.Provider != "none" {
		t.Errorf("unexpected provider: %q", settings.Provider)
	}
	if settings.APIKey != "" {
		t.Errorf("expected empty API key for disabled fallback, got %q", settings.APIKey)
	}
}

func TestWriteDefaultAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	if err := WriteDefault(path); err != nil {
		t.Fatalf("WriteDefault failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading written config: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("written config is empty")
	}

	cm, err := NewManager(path)
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}

	cfg := cm.Get()
	if cfg.Extraction.CoverageThreshold != 0.90 {
		t.Errorf("round-tripped threshold: %v", cfg.Extraction.CoverageThreshold)
	}
	if cfg.Extraction.FallbackProvider != "openai" {
		t.Errorf("round-tripped provider: %q", cfg.Extraction.FallbackProvider)
	}
}
