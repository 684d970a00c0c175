package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/lucad87/mcp-server-tests-migration/internal/pageobject"
)

var pageObjectOutDir string

var pageObjectCmd = &cobra.Command{
	Use:   "pageobject <file>",
	Short: "Synthesize a page-object skeleton from a migrated test",
	Long: `Synthesize a page-object class skeleton from a migrated Playwright test.

Collects the navigation URLs, locators and actions the test uses into a
class named after the file, e.g. login.spec.js -> LoginPage in
login.page.js.

Examples:
  testmig pageobject test/specs/login.spec.js
  testmig pageobject login.spec.ts --out-dir pages`,
	Args: cobra.ExactArgs(1),
	RunE: runPageObject,
}

func init() {
	rootCmd.AddCommand(pageObjectCmd)
	pageObjectCmd.Flags().StringVar(&pageObjectOutDir, "out-dir", "", "Directory to write the page object into (default: alongside the test)")
}

func runPageObject(cmd *cobra.Command, args []string) error {
	file := args[0]

	source, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", file, err)
	}

	class, info, err := pageobject.Synthesize(context.Background(), string(source), file)
	if err != nil {
		return err
	}

	dir := pageObjectOutDir
	if dir == "" {
		cfg := getConfig(defaultLogger())
		if cfg.PageObjects.OutDir != "" && cfg.PageObjects.Enabled {
			dir = cfg.PageObjects.OutDir
		} else {
			dir = filepath.Dir(file)
		}
	}

	target := filepath.Join(dir, class.FileName)
	if err := writeFile(target, class.SourceText); err != nil {
		return fmt.Errorf("failed to write %s: %w", target, err)
	}

	fmt.Printf("%s: %d locator(s), %d action(s), %d assertion site(s)\n",
		class.ClassName, len(info.Locators), len(info.Actions), info.AssertionSites)
	fmt.Printf("Written to %s\n", target)
	return nil
}
