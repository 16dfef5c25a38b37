// Package vocabulary holds the in-memory domain model that clonebench
// measures: a Vocabulary declaring object and fact types, and the
// Constellation object graph populated from it.
//
// Vocabularies are read from YAML, JSON (with comments), or TOML files.
// A file holds either a single vocabulary or a workspace listing several
// of them; Resolve unwraps both shapes to the one vocabulary a generator
// works on.
//
// Constellation.Clone is the operation being timed. It produces a fully
// independent copy of the graph while preserving instance identity:
// an instance reachable through several links is copied exactly once.
package vocabulary
