package main

import (
	"fmt"
	"os"
	"sync"

	"github.com/lucad87/mcp-server-tests-migration/internal/config"
	"github.com/lucad87/mcp-server-tests-migration/internal/logging"
	"github.com/lucad87/mcp-server-tests-migration/internal/mapping"
	"github.com/lucad87/mcp-server-tests-migration/internal/rewrite"
)

var (
	configOnce   sync.Once
	sharedConfig *config.Config
)

// getConfig loads .testmig/config.json once, falling back to defaults
func getConfig(logger *logging.Logger) *config.Config {
	configOnce.Do(func() {
		repoRoot := mustGetRepoRoot()
		cfg, err := config.LoadConfig(repoRoot)
		if err != nil {
			logger.Warn("Failed to load config, using defaults", map[string]interface{}{
				"error": err.Error(),
			})
			cfg = config.DefaultConfig()
		}
		sharedConfig = cfg
	})
	return sharedConfig
}

// defaultLogger is the bootstrap logger used before config is loaded
func defaultLogger() *logging.Logger {
	return logging.NewLogger(logging.Config{
		Format: logging.HumanFormat,
		Level:  logging.InfoLevel,
	})
}

// newLogger builds a logger from config, honouring the rotating file sink
func newLogger(cfg *config.Config) *logging.Logger {
	return logging.NewLogger(logging.Config{
		Format:     logging.Format(cfg.Logging.Format),
		Level:      logging.LogLevel(cfg.Logging.Level),
		File:       cfg.Logging.File,
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
	})
}

// newEngine builds a rewrite engine with the seed mapping table plus any
// custom mappings file named by config or flag (flag wins).
func newEngine(cfg *config.Config, mappingsFlag string, logger *logging.Logger) (*rewrite.Engine, error) {
	registry := mapping.NewRegistry()

	mappingsFile := cfg.Migration.MappingsFile
	if mappingsFlag != "" {
		mappingsFile = mappingsFlag
	}
	if mappingsFile != "" {
		added, err := registry.LoadFile(mappingsFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load mappings file: %w", err)
		}
		logger.Info("Loaded custom mappings", map[string]interface{}{
			"file":  mappingsFile,
			"added": added,
		})
	}

	return rewrite.NewEngine(registry), nil
}

// getRepoRoot returns the repository root directory
func getRepoRoot() (string, error) {
	return os.Getwd()
}

// mustGetRepoRoot returns the repository root or exits on error
func mustGetRepoRoot() string {
	repoRoot, err := getRepoRoot()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return repoRoot
}
