// Package cli — inspect.go implements the "clonebench inspect" command.
//
// The inspect command loads a vocabulary file and prints a summary of each
// vocabulary it contains: declared types and the size of the constellation
// that run would clone. The vocabulary run would pick is marked primary.
package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/clonebench/internal/vocabulary"
)

// NewInspectCommand creates the "inspect" cobra command.
func NewInspectCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <vocabulary-file>",
		Short: "Summarize a vocabulary file",
		Long: `Load a vocabulary file and summarize its contents.

Examples:
  clonebench inspect orders.yaml
  clonebench inspect --json workspace.toml`,

		Args: cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd.OutOrStdout(), args[0])
		},
	}

	return cmd
}

// vocabularySummary is the per-vocabulary inspect output.
type vocabularySummary struct {
	Name        string `json:"name"`
	Primary     bool   `json:"primary"`
	ObjectTypes int    `json:"objectTypes"`
	FactTypes   int    `json:"factTypes"`
	Instances   int    `json:"instances"`
	Links       int    `json:"links"`
}

func runInspect(w io.Writer, path string) error {
	doc, err := vocabulary.Load(path)
	if err != nil {
		return err
	}

	var vocabs []*vocabulary.Vocabulary
	switch d := doc.(type) {
	case *vocabulary.Workspace:
		vocabs = d.Vocabularies
	case *vocabulary.Vocabulary:
		vocabs = []*vocabulary.Vocabulary{d}
	}
	VerboseLog("Loaded %d vocabularies from %s", len(vocabs), path)

	primary, err := doc.Primary()
	if err != nil {
		return err
	}

	summaries := make([]vocabularySummary, 0, len(vocabs))
	for _, v := range vocabs {
		s := vocabularySummary{
			Name:        v.Name,
			Primary:     v == primary,
			ObjectTypes: len(v.ObjectTypes),
			FactTypes:   len(v.FactTypes),
		}
		if c := v.Constellation(); c != nil {
			s.Instances = c.Len()
			s.Links = c.LinkCount()
		}
		summaries = append(summaries, s)
	}

	if IsJSONOutput() {
		data, err := json.MarshalIndent(map[string]interface{}{"vocabularies": summaries}, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode vocabulary summary: %w", err)
		}
		fmt.Fprintln(w, string(data))
		return nil
	}

	fmt.Fprintf(w, "%-20s %-8s %-12s %-10s %-10s %s\n",
		"NAME", "PRIMARY", "OBJECTTYPES", "FACTTYPES", "INSTANCES", "LINKS")
	for _, s := range summaries {
		mark := ""
		if s.Primary {
			mark = "*"
		}
		fmt.Fprintf(w, "%-20s %-8s %-12d %-10d %-10d %d\n",
			s.Name, mark, s.ObjectTypes, s.FactTypes, s.Instances, s.Links)
	}
	return nil
}
