package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config represents the complete testmig configuration (v1 schema)
type Config struct {
	Version int `json:"version" mapstructure:"version"`

	Migration   MigrationConfig   `json:"migration" mapstructure:"migration"`
	PageObjects PageObjectsConfig `json:"pageObjects" mapstructure:"pageObjects"`
	History     HistoryConfig     `json:"history" mapstructure:"history"`
	Logging     LoggingConfig     `json:"logging" mapstructure:"logging"`
}

// MigrationConfig controls how test sources are rewritten
type MigrationConfig struct {
	TypedOutput  bool   `json:"typedOutput" mapstructure:"typedOutput"`
	MappingsFile string `json:"mappingsFile" mapstructure:"mappingsFile"`
	OutDir       string `json:"outDir" mapstructure:"outDir"`
}

// PageObjectsConfig controls page object synthesis
type PageObjectsConfig struct {
	Enabled bool   `json:"enabled" mapstructure:"enabled"`
	OutDir  string `json:"outDir" mapstructure:"outDir"`
}

// HistoryConfig controls the migration history database
type HistoryConfig struct {
	Enabled bool   `json:"enabled" mapstructure:"enabled"`
	DBPath  string `json:"dbPath" mapstructure:"dbPath"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Format     string `json:"format" mapstructure:"format"`
	Level      string `json:"level" mapstructure:"level"`
	File       string `json:"file" mapstructure:"file"`
	MaxSizeMB  int    `json:"maxSizeMb" mapstructure:"maxSizeMb"`
	MaxBackups int    `json:"maxBackups" mapstructure:"maxBackups"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Migration: MigrationConfig{
			TypedOutput:  false,
			MappingsFile: "",
			OutDir:       "",
		},
		PageObjects: PageObjectsConfig{
			Enabled: false,
			OutDir:  "pages",
		},
		History: HistoryConfig{
			Enabled: true,
			DBPath:  filepath.Join(".testmig", "testmig.db"),
		},
		Logging: LoggingConfig{
			Format:     "human",
			Level:      "info",
			File:       "",
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
	}
}

// LoadConfig loads configuration from .testmig/config.json
func LoadConfig(repoRoot string) (*Config, error) {
	v := viper.New()

	v.SetDefault("version", 1)
	v.SetDefault("history.enabled", true)
	v.SetDefault("history.dbPath", filepath.Join(".testmig", "testmig.db"))
	v.SetDefault("pageObjects.outDir", "pages")
	v.SetDefault("logging.format", "human")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.maxSizeMb", 10)
	v.SetDefault("logging.maxBackups", 3)

	v.SetConfigName("config")
	v.SetConfigType("json")
	v.AddConfigPath(filepath.Join(repoRoot, ".testmig"))

	if err := v.ReadInConfig(); err != nil {
		// If config doesn't exist, return default config
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes the configuration to .testmig/config.json
func (c *Config) Save(repoRoot string) error {
	dir := filepath.Join(repoRoot, ".testmig")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(dir, "config.json"), data, 0644)
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Version != 1 {
		return &ConfigError{Field: "version", Message: "unsupported config version"}
	}
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return &ConfigError{Field: "logging.level", Message: "unknown log level"}
	}
	switch c.Logging.Format {
	case "", "human", "json":
	default:
		return &ConfigError{Field: "logging.format", Message: "unknown log format"}
	}
	return nil
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error in field '" + e.Field + "': " + e.Message
}
