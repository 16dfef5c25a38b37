package clonebench

import (
	"io"

	"github.com/shinji-kodama/clonebench/internal/generator"
	"github.com/shinji-kodama/clonebench/internal/vocabulary"
)

// Name is the generator slot the clone benchmark is registered under.
const Name = "clone-bench"

var _ generator.Generator = (*Runner[*vocabulary.Constellation])(nil)

// Register adds the clone benchmark to reg.
func Register(reg *generator.Registry) error {
	return reg.Register(Name, "time repeated deep clones of a vocabulary constellation", newGenerator)
}

// newGenerator is the registry factory. It unwraps a workspace to its first
// vocabulary before building the runner.
func newGenerator(src any, opts []string, stderr io.Writer) (generator.Generator, error) {
	vocab, err := vocabulary.Resolve(src)
	if err != nil {
		return nil, err
	}
	r, err := New[*vocabulary.Constellation](vocab, opts, stderr)
	if err != nil {
		return nil, err
	}
	return r, nil
}
