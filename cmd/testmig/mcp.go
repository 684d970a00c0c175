package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/lucad87/mcp-server-tests-migration/internal/logging"
	"github.com/lucad87/mcp-server-tests-migration/internal/mcp"
	"github.com/lucad87/mcp-server-tests-migration/internal/storage"
	"github.com/lucad87/mcp-server-tests-migration/internal/version"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol (MCP) server.

The server communicates over stdio using JSON-RPC 2.0 and exposes the
migration engine to MCP clients.

The server exposes the following tools:
  - migrateTest: Migrate a WebdriverIO test source to Playwright
  - analyzeTest: Inspect a test source without changing it
  - generatePageObject: Synthesize a page-object skeleton
  - migrateConfig: Translate wdio.conf.js to playwright.config.ts
  - registerMapping: Register a custom command mapping
  - getMigrationDocs: Documentation pointers per topic
  - migrationReport: Session migration report
  - getStatus: Server status

This command is typically invoked by MCP clients and not directly by
users.`,
	RunE: runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, args []string) error {
	// Logs go to stderr (or the configured file); stdout carries the protocol
	cfg := getConfig(defaultLogger())
	logger := logging.NewLogger(logging.Config{
		Format:     logging.JSONFormat,
		Level:      logging.LogLevel(cfg.Logging.Level),
		Output:     os.Stderr,
		File:       cfg.Logging.File,
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
	})

	logger.Info("Starting MCP server", map[string]interface{}{
		"version": version.Version,
	})

	engine, err := newEngine(cfg, "", logger)
	if err != nil {
		return err
	}

	server := mcp.NewMCPServer(version.Version, engine, logger)
	server.SetTypedOutput(cfg.Migration.TypedOutput)

	if cfg.History.Enabled {
		if db, err := storage.Open(mustGetRepoRoot(), logger); err != nil {
			logger.Warn("History unavailable", map[string]interface{}{
				"error": err.Error(),
			})
		} else {
			defer db.Close()
			if history, err := storage.NewHistory(db); err == nil {
				server.SetHistory(history)
			}
		}
	}

	if err := server.Start(); err != nil {
		logger.Error("MCP server error", map[string]interface{}{
			"error": err.Error(),
		})
		return err
	}

	return nil
}
