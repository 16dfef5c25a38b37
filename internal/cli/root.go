// Package cli implements the cobra-based CLI commands for clonebench.
//
// Each subcommand (run, list, inspect) is defined in its own file within
// this package. This file defines the root command that serves as the
// parent for all subcommands and handles global flags.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/shinji-kodama/clonebench/internal/clonebench"
	"github.com/shinji-kodama/clonebench/internal/generator"
	"github.com/shinji-kodama/clonebench/internal/model"
)

// Global flag variables shared across all subcommands.
// These are bound to cobra persistent flags on the root command.
var (
	// jsonOutput controls whether list/inspect output and errors are JSON.
	jsonOutput bool

	// verbose enables debug logging on stderr.
	verbose bool
)

// logger backs VerboseLog. It stays at info level unless --verbose is set,
// so debug messages are dropped by default.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "clonebench",
})

// version, commit, and date are set at build time via ldflags.
// They are injected from the main package to display version information.
var (
	// Version is the semantic version of the binary (e.g., "1.0.0").
	Version = "dev"

	// Commit is the Git commit hash the binary was built from.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// NewRootCommand creates and configures the root cobra command with every
// built-in generator registered.
func NewRootCommand() *cobra.Command {
	reg := generator.NewRegistry()
	if err := clonebench.Register(reg); err != nil {
		// Registration only fails on a duplicate name, which is a programming error.
		panic(err)
	}
	return newRootCommand(reg)
}

// newRootCommand builds the command tree around an explicit registry.
func newRootCommand(reg *generator.Registry) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "clonebench",
		Short: "Measure how long it takes to clone a vocabulary constellation",
		Long: `clonebench runs output generators against a vocabulary.

The built-in clone-bench generator duplicates the vocabulary's in-memory
constellation repeatedly and prints the cumulative elapsed time after each
clone, which makes it a quick way to measure object graph copy performance.`,

		// SilenceUsage prevents cobra from printing usage on every error.
		SilenceUsage: true,

		// SilenceErrors prevents cobra from printing errors automatically.
		// We format errors ourselves (text or JSON based on --json flag).
		SilenceErrors: true,

		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),

		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.SetOutput(cmd.ErrOrStderr())
			if verbose {
				logger.SetLevel(log.DebugLevel)
			} else {
				logger.SetLevel(log.InfoLevel)
			}
		},
	}

	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	rootCmd.AddCommand(NewRunCommand(reg))
	rootCmd.AddCommand(NewListCommand(reg))
	rootCmd.AddCommand(NewInspectCommand())

	return rootCmd
}

// Execute runs the root command and handles exit codes.
// This is the main entry point called from main.go.
func Execute(rootCmd *cobra.Command) {
	if err := rootCmd.Execute(); err != nil {
		printError(os.Stderr, err)
		os.Exit(int(exitCodeFor(err)))
	}
}

// exitCodeFor maps an error to a process exit code. CLIError values anywhere
// in the chain carry their own code; everything else is a general error.
func exitCodeFor(err error) model.ExitCode {
	var cliErr *model.CLIError
	if errors.As(err, &cliErr) {
		return cliErr.Code
	}
	return model.ExitGeneralError
}

// printError outputs an error message in the appropriate format
// (JSON or text) based on the --json global flag.
func printError(w io.Writer, err error) {
	message, detail := err.Error(), ""
	var cliErr *model.CLIError
	if errors.As(err, &cliErr) {
		message = cliErr.Message
		if cliErr.Err != nil {
			detail = cliErr.Err.Error()
		}
	}

	if jsonOutput {
		errObj := map[string]interface{}{
			"message": message,
		}
		if detail != "" {
			errObj["detail"] = detail
		}
		data, _ := json.MarshalIndent(map[string]interface{}{"error": errObj}, "", "  ")
		fmt.Fprintln(w, string(data))
		return
	}

	if detail != "" {
		fmt.Fprintf(w, "Error: %s: %s\n", message, detail)
	} else {
		fmt.Fprintf(w, "Error: %s\n", message)
	}
}

// VerboseLog prints a debug message to stderr when verbose mode is enabled.
func VerboseLog(format string, args ...interface{}) {
	logger.Debugf(format, args...)
}

// IsJSONOutput returns whether the --json flag is set.
// Subcommands use this to decide their output format.
func IsJSONOutput() bool {
	return jsonOutput
}
