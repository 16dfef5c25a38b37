package generator

import (
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/shinji-kodama/clonebench/internal/model"
)

// Generator produces output for one invocation. Generate writes results to
// out and transient progress to progress; either may be the same stream.
type Generator interface {
	Generate(out, progress io.Writer) error
}

// Factory builds a generator from a caller-supplied source (a vocabulary or
// a container of vocabularies) and the raw option tokens from the command
// line. Usage text, if any, goes to stderr.
type Factory func(src any, opts []string, stderr io.Writer) (Generator, error)

// Entry describes one registered generator.
type Entry struct {
	Name    string
	Summary string
	Factory Factory
}

// Registry maps generator names to factories. It is safe for concurrent use,
// although registration normally happens once at startup.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]Entry)}
}

// Register adds a generator. Names must be non-empty and unique.
func (r *Registry) Register(name, summary string, factory Factory) error {
	if name == "" {
		return fmt.Errorf("generator name must not be empty")
	}
	if factory == nil {
		return fmt.Errorf("generator %q: factory must not be nil", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[name]; exists {
		return fmt.Errorf("generator %q is already registered", name)
	}
	r.entries[name] = Entry{Name: name, Summary: summary, Factory: factory}
	return nil
}

// Lookup returns the entry registered under name. A missing name yields a
// CLIError with ExitGeneratorNotFound.
func (r *Registry) Lookup(name string) (Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[name]
	if !ok {
		return Entry{}, model.NewCLIError(model.ExitGeneratorNotFound,
			fmt.Sprintf("no generator registered as %q", name))
	}
	return entry, nil
}

// Entries returns all registered generators sorted by name.
func (r *Registry) Entries() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Entry, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out
}
