package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Version != 1 {
		t.Errorf("Version = %d, want 1", cfg.Version)
	}
	if cfg.Migration.TypedOutput {
		t.Error("TypedOutput should be off by default")
	}
	if !cfg.History.Enabled {
		t.Error("History should be enabled by default")
	}
	if cfg.History.DBPath != filepath.Join(".testmig", "testmig.db") {
		t.Errorf("DBPath = %q", cfg.History.DBPath)
	}
	if cfg.PageObjects.OutDir != "pages" {
		t.Errorf("PageObjects.OutDir = %q, want %q", cfg.PageObjects.OutDir, "pages")
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "info")
	}
	if cfg.Logging.MaxSizeMB <= 0 {
		t.Error("Logging.MaxSizeMB should be positive")
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid default", func(c *Config) {}, false},
		{"bad version", func(c *Config) { c.Version = 2 }, true},
		{"bad level", func(c *Config) { c.Logging.Level = "verbose" }, true},
		{"bad format", func(c *Config) { c.Logging.Format = "xml" }, true},
		{"json format", func(c *Config) { c.Logging.Format = "json" }, false},
		{"empty level", func(c *Config) { c.Logging.Level = "" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadConfig_Missing(t *testing.T) {
	dir := t.TempDir()

	cfg, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Version != 1 {
		t.Errorf("Version = %d, want default 1", cfg.Version)
	}
	if !cfg.History.Enabled {
		t.Error("missing config should fall back to defaults")
	}
}

func TestLoadConfig_FromFile(t *testing.T) {
	dir := t.TempDir()
	cfgDir := filepath.Join(dir, ".testmig")
	if err := os.MkdirAll(cfgDir, 0755); err != nil {
		t.Fatal(err)
	}

	content := `{
  "version": 1,
  "migration": { "typedOutput": true, "mappingsFile": "extra.yaml" },
  "logging": { "level": "debug" }
}`
	if err := os.WriteFile(filepath.Join(cfgDir, "config.json"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if !cfg.Migration.TypedOutput {
		t.Error("TypedOutput should be read from file")
	}
	if cfg.Migration.MappingsFile != "extra.yaml" {
		t.Errorf("MappingsFile = %q", cfg.Migration.MappingsFile)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "debug")
	}
	// untouched keys keep their defaults
	if !cfg.History.Enabled {
		t.Error("History.Enabled default should survive partial config")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()

	cfg := DefaultConfig()
	cfg.Migration.TypedOutput = true
	if err := cfg.Save(dir); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if !loaded.Migration.TypedOutput {
		t.Error("saved TypedOutput not read back")
	}
}
