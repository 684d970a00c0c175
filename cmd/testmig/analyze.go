package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lucad87/mcp-server-tests-migration/internal/facts"
	"github.com/lucad87/mcp-server-tests-migration/internal/framework"
	"github.com/lucad87/mcp-server-tests-migration/internal/jsparse"
)

var analyzeJSON bool

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>",
	Short: "Inspect a test file without changing it",
	Long: `Inspect a test file without changing it.

Reports the detected framework plus the file's test structure: groups,
cases, hooks, selectors, commands, assertions and tags.

Examples:
  testmig analyze test/specs/login.spec.js
  testmig analyze login.spec.js --json`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Emit the full fact inventory as JSON")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	file := args[0]

	source, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", file, err)
	}

	tree, err := jsparse.Parse(context.Background(), source, jsparse.DialectFromPath(file))
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", file, err)
	}

	verdict := framework.Classify(tree)
	extracted := facts.Extract(tree)

	if analyzeJSON {
		out := map[string]interface{}{
			"file":      file,
			"framework": verdict.String(),
			"facts":     extracted,
		}
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Printf("%s\n", file)
	fmt.Printf("  framework:  %s\n", verdict.String())
	fmt.Printf("  groups:     %d\n", len(extracted.TestGroups))
	fmt.Printf("  cases:      %d\n", len(extracted.TestCases))
	fmt.Printf("  hooks:      %d\n", len(extracted.Hooks))
	fmt.Printf("  selectors:  %d\n", len(extracted.Selectors))
	fmt.Printf("  commands:   %d\n", len(extracted.Commands))
	fmt.Printf("  assertions: %d\n", len(extracted.Assertions))
	if len(extracted.Tags) > 0 {
		fmt.Printf("  tags:       %v\n", extracted.Tags)
	}
	if len(extracted.PageObjectRefs) > 0 {
		fmt.Printf("  page objects:\n")
		for _, ref := range extracted.PageObjectRefs {
			fmt.Printf("    %s (line %d)\n", ref.ClassName, ref.Span.StartLine)
		}
	}
	return nil
}
