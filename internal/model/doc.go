// Package model defines the shared value types for the clonebench CLI.
//
// This package contains pure data structures with no external dependencies:
// the lifecycle state of a benchmark run (RunState), the object kinds a
// vocabulary can declare (ObjectKind), and the on-disk vocabulary formats
// (VocabularyFormat).
//
// The package also defines exit codes (ExitCode) and a custom error type
// (CLIError) that carries exit codes for proper OS process exit handling.
package model
