package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lucad87/mcp-server-tests-migration/internal/docs"
)

var docsCmd = &cobra.Command{
	Use:   "docs [topic]",
	Short: "Playwright documentation pointers for migration topics",
	Long: `Look up Playwright documentation pointers for a migration topic.

Without a topic, lists the available topics.

Examples:
  testmig docs
  testmig docs selectors
  testmig docs tags`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDocs,
}

func init() {
	rootCmd.AddCommand(docsCmd)
}

func runDocs(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		for _, topic := range docs.Topics() {
			entry, _ := docs.Lookup(topic)
			fmt.Printf("%-14s %s\n", topic, entry.Title)
		}
		return nil
	}

	entry, ok := docs.Lookup(args[0])
	if !ok {
		return fmt.Errorf("unknown topic %q; run 'testmig docs' to list topics", args[0])
	}

	fmt.Printf("%s\n\n%s\n\n%s\n", entry.Title, entry.Summary, entry.URL)
	return nil
}
