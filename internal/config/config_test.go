package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.DocspellURL != "http://localhost:7880" {
		t.Errorf("Default().DocspellURL = %q, want %q", cfg.DocspellURL, "http://localhost:7880")
	}
	if cfg.DefaultFormat != "tabular" {
		t.Errorf("Default().DefaultFormat = %q, want %q", cfg.DefaultFormat, "tabular")
	}
	if cfg.DefaultSourceID != "" {
		t.Errorf("Default().DefaultSourceID = %q, want empty", cfg.DefaultSourceID)
	}
}

func TestLoadFromFile_ValidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `docspell_url = "https://docs.example.com"
default_source_id = "abc123"
default_format = "json"
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile() returned error: %v", err)
	}

	if cfg.DocspellURL != "https://docs.example.com" {
		t.Errorf("DocspellURL = %q, want %q", cfg.DocspellURL, "https://docs.example.com")
	}
	if cfg.DefaultSourceID != "abc123" {
		t.Errorf("DefaultSourceID = %q, want %q", cfg.DefaultSourceID, "abc123")
	}
	if cfg.DefaultFormat != "json" {
		t.Errorf("DefaultFormat = %q, want %q", cfg.DefaultFormat, "json")
	}
}

func TestLoadFromFile_PartialConfigKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`docspell_url = "https://docs.example.com"`), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile() returned error: %v", err)
	}
	if cfg.DefaultFormat != "tabular" {
		t.Errorf("DefaultFormat = %q, want built-in default %q", cfg.DefaultFormat, "tabular")
	}
}

func TestLoadFromFile_Missing(t *testing.T) {
	if _, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("LoadFromFile() of missing file succeeded, want error")
	}
}

func TestLoadFromFile_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("docspell_url = ["), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	if _, err := LoadFromFile(path); err == nil {
		t.Error("LoadFromFile() of malformed file succeeded, want error")
	}
}

func TestLoad_ExplicitPathWinsOverEnv(t *testing.T) {
	dir := t.TempDir()

	flagPath := filepath.Join(dir, "flag.toml")
	if err := os.WriteFile(flagPath, []byte(`docspell_url = "https://flag.example.com"`), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	envPath := filepath.Join(dir, "env.toml")
	if err := os.WriteFile(envPath, []byte(`docspell_url = "https://env.example.com"`), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	t.Setenv(EnvConfigFile, envPath)

	cfg, err := Load(flagPath)
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if cfg.DocspellURL != "https://flag.example.com" {
		t.Errorf("DocspellURL = %q, want flag path to win", cfg.DocspellURL)
	}
}

func TestLoad_EnvPathUsed(t *testing.T) {
	envPath := filepath.Join(t.TempDir(), "env.toml")
	if err := os.WriteFile(envPath, []byte(`docspell_url = "https://env.example.com"`), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	t.Setenv(EnvConfigFile, envPath)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if cfg.DocspellURL != "https://env.example.com" {
		t.Errorf("DocspellURL = %q, want env path config", cfg.DocspellURL)
	}
}
