package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lucad87/mcp-server-tests-migration/internal/config"
	"github.com/lucad87/mcp-server-tests-migration/internal/jsparse"
	"github.com/lucad87/mcp-server-tests-migration/internal/logging"
	"github.com/lucad87/mcp-server-tests-migration/internal/pageobject"
	"github.com/lucad87/mcp-server-tests-migration/internal/report"
	"github.com/lucad87/mcp-server-tests-migration/internal/rewrite"
	"github.com/lucad87/mcp-server-tests-migration/internal/storage"
)

var (
	migrateTyped      bool
	migratePageObject bool
	migrateOutDir     string
	migrateReportPath string
	migrateMappings   string
	migrateDryRun     bool
)

var migrateCmd = &cobra.Command{
	Use:   "migrate <file|glob>...",
	Short: "Migrate WebdriverIO test files to Playwright",
	Long: `Migrate WebdriverIO test files to Playwright.

Each file is parsed, classified and rewritten. Files that already use
Playwright are left untouched. Migrated sources are written back in place
unless --out-dir is given.

Examples:
  testmig migrate test/specs/login.spec.js
  testmig migrate 'test/specs/*.spec.js' --typed
  testmig migrate test/specs/*.js --page-object --report report.md
  testmig migrate login.spec.js --dry-run`,
	Args: cobra.MinimumNArgs(1),
	RunE: runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.Flags().BoolVar(&migrateTyped, "typed", false, "Annotate injected page parameters with the Page type")
	migrateCmd.Flags().BoolVar(&migratePageObject, "page-object", false, "Also synthesize a page-object skeleton per migrated file")
	migrateCmd.Flags().StringVar(&migrateOutDir, "out-dir", "", "Write outputs under this directory instead of back in place")
	migrateCmd.Flags().StringVar(&migrateReportPath, "report", "", "Write a markdown migration report to this path")
	migrateCmd.Flags().StringVar(&migrateMappings, "mappings", "", "YAML file with custom command mappings")
	migrateCmd.Flags().BoolVar(&migrateDryRun, "dry-run", false, "Report what would change without writing any files")
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg := getConfig(defaultLogger())
	logger := newLogger(cfg)

	engine, err := newEngine(cfg, migrateMappings, logger)
	if err != nil {
		return err
	}

	files, err := expandArgs(args)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no files matched %v", args)
	}

	typed := migrateTyped || cfg.Migration.TypedOutput
	outDir := migrateOutDir
	if outDir == "" {
		outDir = cfg.Migration.OutDir
	}

	history := openHistory(cfg, logger)

	rep := report.New()
	ctx := context.Background()

	for _, file := range files {
		migrateOne(ctx, engine, rep, history, logger, file, typed, outDir)
	}

	summary := rep.Summary()
	fmt.Printf("%d file(s): %d migrated, %d skipped, %d failed, %d change(s)\n",
		summary.Files, summary.Migrated, summary.Skipped, summary.Failed, summary.Changes)

	if migrateReportPath != "" && !migrateDryRun {
		if err := os.WriteFile(migrateReportPath, []byte(rep.Markdown()), 0644); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		fmt.Printf("Report written to %s\n", migrateReportPath)
	}

	if summary.Failed > 0 {
		return fmt.Errorf("%d file(s) failed to migrate", summary.Failed)
	}
	return nil
}

// migrateOne processes a single file; failures are recorded, not returned,
// so one broken file never stops the batch.
func migrateOne(ctx context.Context, engine *rewrite.Engine, rep *report.Report,
	history *storage.History, logger *logging.Logger, file string, typed bool, outDir string) {

	source, err := os.ReadFile(file)
	if err != nil {
		logger.Error("Failed to read file", map[string]interface{}{
			"file":  file,
			"error": err.Error(),
		})
		rep.Add(file, report.StatusFailed, 0, []string{err.Error()}, nil)
		return
	}

	result, err := engine.Migrate(ctx, string(source), rewrite.Options{
		Dialect:     jsparse.DialectFromPath(file),
		TypedOutput: typed,
	})
	if err != nil {
		logger.Error("Migration failed", map[string]interface{}{
			"file":  file,
			"error": err.Error(),
		})
		rep.Add(file, report.StatusFailed, 0, []string{err.Error()}, nil)
		recordHistory(history, logger, file, string(report.StatusFailed), 0, nil, nil, string(source), "")
		return
	}

	status := report.StatusMigrated
	if len(result.ChangeLog) == 0 {
		status = report.StatusSkipped
	}
	rep.Add(file, status, len(result.ChangeLog), result.Notes, result.TagsMigrated)
	recordHistory(history, logger, file, string(status), len(result.ChangeLog),
		result.TagsMigrated, result.Notes, string(source), result.Code)

	if migrateDryRun {
		fmt.Printf("%s: %s, %d change(s)\n", file, status, len(result.ChangeLog))
		for _, note := range result.Notes {
			fmt.Printf("  note: %s\n", note)
		}
		return
	}

	if status == report.StatusMigrated {
		target := outPath(file, outDir)
		if err := writeFile(target, result.Code); err != nil {
			logger.Error("Failed to write output", map[string]interface{}{
				"file":  target,
				"error": err.Error(),
			})
			return
		}
		fmt.Printf("%s -> %s (%d changes)\n", file, target, len(result.ChangeLog))
	} else {
		fmt.Printf("%s: %s\n", file, status)
	}

	if migratePageObject && status == report.StatusMigrated {
		writePageObject(ctx, logger, file, result.Code, outDir)
	}
}

// writePageObject synthesizes and writes the page-object skeleton for one
// migrated file.
func writePageObject(ctx context.Context, logger *logging.Logger, file, code, outDir string) {
	class, _, err := pageobject.Synthesize(ctx, code, file)
	if err != nil {
		logger.Warn("Page object synthesis failed", map[string]interface{}{
			"file":  file,
			"error": err.Error(),
		})
		return
	}

	target := filepath.Join(filepath.Dir(outPath(file, outDir)), class.FileName)
	if err := writeFile(target, class.SourceText); err != nil {
		logger.Error("Failed to write page object", map[string]interface{}{
			"file":  target,
			"error": err.Error(),
		})
		return
	}
	fmt.Printf("%s -> %s (page object %s)\n", file, target, class.ClassName)
}

// openHistory opens the history store when enabled; failures degrade to a
// nil store with a warning.
func openHistory(cfg *config.Config, logger *logging.Logger) *storage.History {
	if !cfg.History.Enabled || migrateDryRun {
		return nil
	}

	db, err := storage.Open(mustGetRepoRoot(), logger)
	if err != nil {
		logger.Warn("History unavailable", map[string]interface{}{
			"error": err.Error(),
		})
		return nil
	}

	history, err := storage.NewHistory(db)
	if err != nil {
		db.Close()
		logger.Warn("History unavailable", map[string]interface{}{
			"error": err.Error(),
		})
		return nil
	}
	return history
}

func recordHistory(history *storage.History, logger *logging.Logger,
	file, status string, changes int, tags, notes []string, input, output string) {
	if history == nil {
		return
	}
	_, err := history.Record(storage.HistoryEntry{
		File:    file,
		Status:  status,
		Changes: changes,
		Tags:    tags,
		Notes:   notes,
	}, input, output)
	if err != nil {
		logger.Warn("Failed to record history", map[string]interface{}{
			"file":  file,
			"error": err.Error(),
		})
	}
}

// expandArgs resolves globs and plain paths into a file list
func expandArgs(args []string) ([]string, error) {
	var files []string
	seen := make(map[string]bool)
	for _, arg := range args {
		if strings.ContainsAny(arg, "*?[") {
			matches, err := filepath.Glob(arg)
			if err != nil {
				return nil, fmt.Errorf("bad pattern %q: %w", arg, err)
			}
			for _, m := range matches {
				if !seen[m] {
					seen[m] = true
					files = append(files, m)
				}
			}
			continue
		}
		if !seen[arg] {
			seen[arg] = true
			files = append(files, arg)
		}
	}
	return files, nil
}

// outPath maps a source path into the output directory, or returns it
// unchanged when writing in place
func outPath(file, outDir string) string {
	if outDir == "" {
		return file
	}
	return filepath.Join(outDir, filepath.Base(file))
}

func writeFile(path, content string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, []byte(content), 0644)
}
