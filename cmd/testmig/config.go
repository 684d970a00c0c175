package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lucad87/mcp-server-tests-migration/internal/config"
	"github.com/lucad87/mcp-server-tests-migration/internal/confmig"
)

var configOut string

var configCmd = &cobra.Command{
	Use:   "config <wdio.conf.js>",
	Short: "Translate a WebdriverIO config into a Playwright one",
	Long: `Translate a wdio.conf.js into a playwright.config.ts.

Carries over baseUrl, spec globs and capability browser names; everything
else falls back to Playwright defaults and is left to manual review.

Examples:
  testmig config wdio.conf.js
  testmig config wdio.conf.js -o playwright.config.ts`,
	Args: cobra.ExactArgs(1),
	RunE: runConfig,
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default .testmig/config.json",
	Args:  cobra.NoArgs,
	RunE:  runInit,
}

func init() {
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(initCmd)
	configCmd.Flags().StringVarP(&configOut, "out", "o", "", "Write the translated config to this path instead of stdout")
}

func runConfig(cmd *cobra.Command, args []string) error {
	file := args[0]

	source, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", file, err)
	}

	translated, extracted := confmig.Translate(string(source))

	if configOut == "" {
		fmt.Print(translated)
		return nil
	}

	if err := writeFile(configOut, translated); err != nil {
		return fmt.Errorf("failed to write %s: %w", configOut, err)
	}

	fmt.Printf("Written to %s", configOut)
	if extracted.BaseURL != "" {
		fmt.Printf(" (baseURL %s)", extracted.BaseURL)
	}
	fmt.Println()
	return nil
}

func runInit(cmd *cobra.Command, args []string) error {
	repoRoot := mustGetRepoRoot()

	cfg := config.DefaultConfig()
	if err := cfg.Save(repoRoot); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	fmt.Println("Wrote .testmig/config.json")
	return nil
}
