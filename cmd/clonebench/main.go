// Package main is the entry point for the clonebench CLI.
//
// It delegates all functionality to the internal/cli package, which
// defines the cobra commands. Build-time variables (version, commit, date)
// are injected via ldflags and default to "dev", "none", and "unknown".
package main

import (
	"github.com/shinji-kodama/clonebench/internal/cli"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.Version = version
	cli.Commit = commit
	cli.Date = date

	rootCmd := cli.NewRootCommand()
	cli.Execute(rootCmd)
}
