package generator

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shinji-kodama/clonebench/internal/model"
)

type nopGenerator struct{}

func (nopGenerator) Generate(out, progress io.Writer) error { return nil }

func nopFactory(src any, opts []string, stderr io.Writer) (Generator, error) {
	return nopGenerator{}, nil
}

func TestRegistry_RegisterAndLookup(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register("zeta", "last", nopFactory))
	require.NoError(t, r.Register("alpha", "first", nopFactory))

	entry, err := r.Lookup("alpha")
	require.NoError(t, err)
	assert.Equal(t, "alpha", entry.Name)
	assert.Equal(t, "first", entry.Summary)

	g, err := entry.Factory(nil, nil, io.Discard)
	require.NoError(t, err)
	assert.NoError(t, g.Generate(io.Discard, io.Discard))

	entries := r.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "alpha", entries[0].Name)
	assert.Equal(t, "zeta", entries[1].Name)
}

func TestRegistry_RegisterErrors(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register("dup", "", nopFactory))

	assert.Error(t, r.Register("dup", "", nopFactory))
	assert.Error(t, r.Register("", "", nopFactory))
	assert.Error(t, r.Register("nil-factory", "", nil))
}

func TestRegistry_LookupMissing(t *testing.T) {
	_, err := NewRegistry().Lookup("nope")
	require.Error(t, err)

	var cliErr *model.CLIError
	require.True(t, errors.As(err, &cliErr))
	assert.Equal(t, model.ExitGeneratorNotFound, cliErr.Code)
}
