package main

import (
	"github.com/lucad87/mcp-server-tests-migration/internal/version"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "testmig",
	Short: "testmig - WebdriverIO to Playwright test migration",
	Long: `testmig rewrites WebdriverIO browser test suites into Playwright.

It parses test sources, classifies the framework in use, migrates selectors,
commands, hooks and tags to their Playwright equivalents, and can synthesize
page-object skeletons and translate wdio.conf.js files. The same engine is
available over stdio as an MCP server for editor and agent integration.`,
	Version: version.Version,
}

func init() {
	rootCmd.SetVersionTemplate("testmig version {{.Version}}\n")
}
