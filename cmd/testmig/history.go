package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lucad87/mcp-server-tests-migration/internal/storage"
)

var (
	historyFile  string
	historyLimit int
	historyShow  string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show past migration runs",
	Long: `Show past migration runs recorded in the history database.

Every non-dry-run migration is recorded with its outcome and compressed
before/after snapshots. Use --show with a record id to print the snapshots.

Examples:
  testmig history
  testmig history --file test/specs/login.spec.js
  testmig history --show 6f1c2a...`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().StringVar(&historyFile, "file", "", "Only show runs for this file")
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum number of runs to show (0 for all)")
	historyCmd.Flags().StringVar(&historyShow, "show", "", "Print the input and output snapshots for a record id")
}

func runHistory(cmd *cobra.Command, args []string) error {
	logger := defaultLogger()
	cfg := getConfig(logger)
	if !cfg.History.Enabled {
		return fmt.Errorf("history is disabled in .testmig/config.json")
	}

	db, err := storage.Open(mustGetRepoRoot(), newLogger(cfg))
	if err != nil {
		return fmt.Errorf("failed to open history database: %w", err)
	}
	defer db.Close()

	history, err := storage.NewHistory(db)
	if err != nil {
		return err
	}

	if historyShow != "" {
		input, output, err := history.Snapshots(historyShow)
		if err != nil {
			return err
		}
		fmt.Printf("--- input ---\n%s\n--- output ---\n%s\n", input, output)
		return nil
	}

	var entries []storage.HistoryEntry
	if historyFile != "" {
		entries, err = history.ForFile(historyFile)
	} else {
		entries, err = history.List(historyLimit)
	}
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Println("No migration history.")
		return nil
	}

	for _, e := range entries {
		line := fmt.Sprintf("%s  %-8s  %-40s  %d change(s)",
			e.CreatedAt.Format("2006-01-02 15:04:05"), e.Status, e.File, e.Changes)
		if len(e.Tags) > 0 {
			line += "  [" + strings.Join(e.Tags, ", ") + "]"
		}
		fmt.Println(line)
		fmt.Printf("    id: %s\n", e.ID)
	}
	return nil
}
