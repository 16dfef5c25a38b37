package clonebench

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/shinji-kodama/clonebench/internal/model"
)

// ErrAlreadyRun is returned by Generate when the runner has already
// completed a run. Each runner measures exactly one run.
var ErrAlreadyRun = errors.New("clone runner has already run")

// Cloner is a graph that can produce an independent copy of itself.
type Cloner[C any] interface {
	Clone() (C, error)
}

// Source exposes the graph to benchmark. It is implemented by
// *vocabulary.Vocabulary; containers must be unwrapped before a Runner is
// built.
type Source[C any] interface {
	Constellation() C
}

// flusher is implemented by buffered writers such as *bufio.Writer.
type flusher interface {
	Flush() error
}

// Runner times Config.Count clone operations against one source.
// A Runner is single-use and not safe for concurrent use.
type Runner[C Cloner[C]] struct {
	src      Source[C]
	cfg      Config
	now      func() time.Time
	retained []C
	state    model.RunState
}

// New parses opts and returns an idle runner for src. When opts request
// help, the usage text is written to stderr immediately and the returned
// runner will not do any work. A nil stderr discards the usage text.
func New[C Cloner[C]](src Source[C], opts []string, stderr io.Writer) (*Runner[C], error) {
	cfg, err := ParseOptions(opts)
	if err != nil {
		return nil, err
	}

	if cfg.Help {
		if stderr == nil {
			stderr = io.Discard
		}
		if _, err := io.WriteString(stderr, Usage); err != nil {
			return nil, fmt.Errorf("failed to write usage: %w", err)
		}
	}

	return &Runner[C]{
		src:   src,
		cfg:   cfg,
		now:   time.Now,
		state: model.StateIdle,
	}, nil
}

// Config returns the parsed configuration.
func (r *Runner[C]) Config() Config {
	return r.cfg
}

// State returns the current lifecycle state.
func (r *Runner[C]) State() model.RunState {
	return r.state
}

// Retained returns the clones kept by a keep run, in creation order.
// It is nil when keep is off.
func (r *Runner[C]) Retained() []C {
	return r.retained
}

// Generate performs the run. For each iteration i (1-based) it writes
// "i:\t" to progress, flushes out if it is buffered, clones the
// constellation, optionally retains the clone, and writes the cumulative
// elapsed seconds as a line to out.
//
// A failed clone aborts the run with ExitCloneFailed; lines already
// written stay written. In help mode Generate returns nil without output.
// A nil out or progress discards what would have been written to it.
func (r *Runner[C]) Generate(out, progress io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	if progress == nil {
		progress = io.Discard
	}
	if r.cfg.Help {
		r.state = model.StateDone
		return nil
	}
	if r.state != model.StateIdle {
		return ErrAlreadyRun
	}
	if r.src == nil {
		r.state = model.StateDone
		return model.NewCLIError(model.ExitVocabularyNotFound, "clone runner has no vocabulary")
	}

	r.state = model.StateRunning
	defer func() { r.state = model.StateDone }()

	if r.cfg.Keep {
		// Grown by append; count is user input and may be far larger than
		// what could be reserved up front.
		r.retained = []C{}
	}

	start := r.now()
	for i := 1; i <= r.cfg.Count; i++ {
		if _, err := fmt.Fprintf(progress, "%d:\t", i); err != nil {
			return fmt.Errorf("failed to write progress: %w", err)
		}
		if f, ok := out.(flusher); ok {
			if err := f.Flush(); err != nil {
				return fmt.Errorf("failed to flush output: %w", err)
			}
		}

		cp, err := r.src.Constellation().Clone()
		if err != nil {
			return model.WrapCLIError(model.ExitCloneFailed,
				fmt.Sprintf("clone %d of %d failed", i, r.cfg.Count), err)
		}
		if r.cfg.Keep {
			r.retained = append(r.retained, cp)
		}

		elapsed := r.now().Sub(start)
		if _, err := io.WriteString(out, formatSeconds(elapsed)+"\n"); err != nil {
			return fmt.Errorf("failed to write elapsed time: %w", err)
		}
	}

	// Push the last line out; the next iteration's flush will not happen.
	if f, ok := out.(flusher); ok {
		if err := f.Flush(); err != nil {
			return fmt.Errorf("failed to flush output: %w", err)
		}
	}
	return nil
}

// formatSeconds renders d as seconds with microsecond precision.
func formatSeconds(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', 6, 64)
}
