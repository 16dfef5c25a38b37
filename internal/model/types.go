package model

import (
	"fmt"
	"path/filepath"
	"strings"
)

// RunState represents the lifecycle state of a generator run.
// The state transitions are:
//
//	Idle → Running → Done
//	Idle → Done            (help mode, nothing is executed)
type RunState string

const (
	// StateIdle indicates the runner has been constructed but not run yet.
	StateIdle RunState = "idle"

	// StateRunning indicates the runner is inside its clone loop.
	StateRunning RunState = "running"

	// StateDone indicates the run has finished, either normally, after a
	// failed clone, or because the runner was built in help mode.
	StateDone RunState = "done"
)

// String returns the string representation of RunState.
func (s RunState) String() string {
	return string(s)
}

// ObjectKind classifies an object type declared by a vocabulary.
//
// Entity types are identified by a reference scheme made of one or more
// roles; value types are identified by their own lexical value.
type ObjectKind string

const (
	// KindEntity is an object type whose instances are identified by roles.
	KindEntity ObjectKind = "entity"

	// KindValue is an object type whose instances are self-identifying values
	// (strings, numbers, dates).
	KindValue ObjectKind = "value"
)

// String returns the string representation of ObjectKind.
func (k ObjectKind) String() string {
	return string(k)
}

// IsValid checks whether the ObjectKind value is one of the predefined kinds.
func (k ObjectKind) IsValid() bool {
	return k == KindEntity || k == KindValue
}

// ParseObjectKind converts a string to an ObjectKind. An empty string
// defaults to KindEntity because most declared types are entities.
func ParseObjectKind(s string) (ObjectKind, error) {
	if s == "" {
		return KindEntity, nil
	}
	kind := ObjectKind(strings.ToLower(s))
	if !kind.IsValid() {
		return "", fmt.Errorf("invalid object kind: %q (valid: entity, value)", s)
	}
	return kind, nil
}

// VocabularyFormat identifies the serialization format of a vocabulary file.
type VocabularyFormat string

const (
	// FormatYAML is a YAML document (.yaml, .yml).
	FormatYAML VocabularyFormat = "yaml"

	// FormatJSON is a JSON document; comments and trailing commas are
	// tolerated (.json, .jsonc).
	FormatJSON VocabularyFormat = "json"

	// FormatTOML is a TOML document (.toml).
	FormatTOML VocabularyFormat = "toml"
)

// FormatFromPath picks the vocabulary format from a file extension.
// The match is case-insensitive.
func FormatFromPath(path string) (VocabularyFormat, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json", ".jsonc":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("unsupported vocabulary file extension %q (valid: .yaml, .yml, .json, .jsonc, .toml)", filepath.Ext(path))
	}
}

// ExitCode defines the CLI exit codes. These codes allow scripts to tell a
// misconfigured invocation apart from a clone failure.
type ExitCode int

const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError ExitCode = 1

	// ExitVocabularyNotFound indicates the vocabulary file could not be read
	// or did not contain any vocabulary.
	ExitVocabularyNotFound ExitCode = 2

	// ExitInvalidOption indicates a generator option token was malformed
	// (for example "count=abc").
	ExitInvalidOption ExitCode = 3

	// ExitCloneFailed indicates the clone operation failed mid-run.
	ExitCloneFailed ExitCode = 4

	// ExitGeneratorNotFound indicates no generator is registered under the
	// requested name.
	ExitGeneratorNotFound ExitCode = 5
)

// CLIError is a custom error type that carries an exit code.
// This allows the CLI layer to translate domain errors into
// appropriate process exit codes.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}
