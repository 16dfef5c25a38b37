// Package cli — list.go implements the "clonebench list" command.
//
// The list command displays every generator in the registry, sorted by
// name, as a text table or JSON array depending on the --json flag.
package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/clonebench/internal/generator"
)

// NewListCommand creates the "list" cobra command.
func NewListCommand(reg *generator.Registry) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List registered generators",
		Long: `List every generator that can be passed to "clonebench run".

Examples:
  clonebench list
  clonebench list --json`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return printListResult(cmd.OutOrStdout(), reg.Entries())
		},
	}

	return cmd
}

// printListResult outputs the generators in text or JSON format,
// depending on the global --json flag.
func printListResult(w io.Writer, entries []generator.Entry) error {
	if IsJSONOutput() {
		return printListResultJSON(w, entries)
	}
	printListResultText(w, entries)
	return nil
}

// listGeneratorJSON is the JSON output structure for one generator.
type listGeneratorJSON struct {
	Name    string `json:"name"`
	Summary string `json:"summary"`
}

func printListResultJSON(w io.Writer, entries []generator.Entry) error {
	type resultJSON struct {
		Generators []listGeneratorJSON `json:"generators"`
	}

	// An empty slice keeps the output as [] rather than null.
	result := resultJSON{Generators: make([]listGeneratorJSON, 0, len(entries))}
	for _, e := range entries {
		result.Generators = append(result.Generators, listGeneratorJSON{Name: e.Name, Summary: e.Summary})
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode generator list: %w", err)
	}
	fmt.Fprintln(w, string(data))
	return nil
}

// printListResultText outputs the generators as an aligned table:
//
//	NAME                 SUMMARY
//	clone-bench          time repeated deep clones of a vocabulary constellation
func printListResultText(w io.Writer, entries []generator.Entry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No generators registered.")
		return
	}

	fmt.Fprintf(w, "%-20s %s\n", "NAME", "SUMMARY")
	for _, e := range entries {
		fmt.Fprintf(w, "%-20s %s\n", e.Name, e.Summary)
	}
}
