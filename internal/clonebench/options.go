package clonebench

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shinji-kodama/clonebench/internal/model"
)

// DefaultCount is the number of clones made when no count= option is given.
const DefaultCount = 10

// countPrefix introduces the iteration count option.
const countPrefix = "count="

// Usage is written to the error stream when the help option is present.
const Usage = `Usage: clone-bench [count=N] [keep] [help]

Clones the vocabulary's constellation repeatedly and prints the
cumulative elapsed seconds after each clone.

Options:
  count=N   number of clones to make (default 10)
  keep      keep every clone alive until the run ends (default off)
  help      print this message and skip the run
`

// Config is the parsed, immutable run configuration.
type Config struct {
	// Count is the number of clone operations to perform.
	Count int

	// Keep retains every clone until the run ends.
	Keep bool

	// Help suppresses the run; usage is printed instead.
	Help bool
}

// ParseOptions reads option tokens left to right in a single pass. The
// input slice is not modified.
//
// Recognized tokens are "help", "keep" and "count=<N>"; the last count=
// wins and anything else is ignored. A count that is not a non-negative
// integer is rejected with ExitInvalidOption, unless help is also present,
// in which case nothing will run and the count does not matter.
func ParseOptions(opts []string) (Config, error) {
	cfg := Config{Count: DefaultCount}
	var countErr error

	for _, tok := range opts {
		switch {
		case tok == "help":
			cfg.Help = true
		case tok == "keep":
			cfg.Keep = true
		case strings.HasPrefix(tok, countPrefix):
			n, err := parseCount(strings.TrimPrefix(tok, countPrefix))
			if err != nil {
				countErr = model.WrapCLIError(model.ExitInvalidOption,
					fmt.Sprintf("invalid option %q", tok), err)
				continue
			}
			countErr = nil
			cfg.Count = n
		}
	}

	if countErr != nil && !cfg.Help {
		return Config{}, countErr
	}
	return cfg, nil
}

func parseCount(raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("count must be an integer")
	}
	if n < 0 {
		return 0, fmt.Errorf("count must not be negative")
	}
	return n, nil
}
