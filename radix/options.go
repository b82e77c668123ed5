package radix

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/edgesort/workerpool"
)

// ErrInvalidConfig indicates a Config that cannot drive a sort.
var ErrInvalidConfig = errors.New("radix: invalid config")

const (
	// DefaultBase is the decimal radix.
	DefaultBase = 10
	// DefaultWorkerCount is the size of the pool created per call.
	DefaultWorkerCount = 4
	// MaxBase bounds the bucket table of a single pass.
	MaxBase = 1 << 20
)

// Config holds the tunables of a radix sort.
type Config struct {
	// Base is the radix; each pass buckets one base-Base digit. Range [2, MaxBase].
	Base int

	// WorkerCount is the parallelism of the counting phase when Sort creates
	// its own pool. Ignored when a pool is supplied through WithPool.
	WorkerCount int

	// ParallelScatter places edges from all workers concurrently instead of
	// the sequential backward pass.
	ParallelScatter bool
}

// DefaultConfig returns Config{Base: 10, WorkerCount: 4, ParallelScatter: false}.
func DefaultConfig() Config {
	return Config{
		Base:            DefaultBase,
		WorkerCount:     DefaultWorkerCount,
		ParallelScatter: false,
	}
}

// Validate reports ErrInvalidConfig for an out-of-range Base or WorkerCount.
func (c Config) Validate() error {
	if c.Base < 2 || c.Base > MaxBase {
		return fmt.Errorf("base=%d not in [2,%d]: %w", c.Base, MaxBase, ErrInvalidConfig)
	}
	if c.WorkerCount < 1 {
		return fmt.Errorf("workerCount=%d < 1: %w", c.WorkerCount, ErrInvalidConfig)
	}

	return nil
}

// Options is the resolved configuration of one Sort call.
type Options struct {
	Config

	// Pool, if non-nil, runs the parallel regions and is left open on return.
	// Otherwise Sort starts a pool of WorkerCount goroutines and closes it.
	Pool *workerpool.Pool
}

// Option configures a Sort call. Use with Sort(sorted, edges, v, e, opts...).
type Option func(*Options)

// DefaultOptions returns DefaultConfig with no shared pool.
func DefaultOptions() Options {
	return Options{Config: DefaultConfig()}
}

// WithBase sets the radix. Panics if base is outside [2, MaxBase].
func WithBase(base int) Option {
	if base < 2 || base > MaxBase {
		panic(fmt.Sprintf("radix: WithBase(%d)", base))
	}
	return func(o *Options) {
		o.Base = base
	}
}

// WithWorkerCount sets the size of the per-call pool. Panics if n < 1.
func WithWorkerCount(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("radix: WithWorkerCount(%d)", n))
	}
	return func(o *Options) {
		o.WorkerCount = n
	}
}

// WithParallelScatter enables the parallel placement phase.
func WithParallelScatter() Option {
	return func(o *Options) {
		o.ParallelScatter = true
	}
}

// WithConfig replaces the whole Config. The value is validated by Sort, so
// configurations read from files surface as ErrInvalidConfig, not panics.
func WithConfig(c Config) Option {
	return func(o *Options) {
		o.Config = c
	}
}

// WithPool runs the sort on p. The pool must stay open for the duration of
// the call. Panics on nil.
func WithPool(p *workerpool.Pool) Option {
	if p == nil {
		panic("radix: WithPool(nil)")
	}
	return func(o *Options) {
		o.Pool = p
	}
}
