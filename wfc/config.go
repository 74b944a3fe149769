package wfc

import "time"

// Deterministic defaults (named, no magic numbers).
const (
	defaultMaxRecursionDepth = 4 // spec's own floor; the original defaulted to 3
)

// Logger is the injection seam for structured logging. No package in this
// module hard-wires a concrete logging library; callers that want
// observability supply a Logger, callers that don't get noopLogger.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
}

type noopLogger struct{}

func (noopLogger) Debugf(string, ...any) {}
func (noopLogger) Infof(string, ...any)  {}
func (noopLogger) Warnf(string, ...any)  {}

// config aggregates all engine knobs. It is resolved once by newConfig and
// then held immutably by the Engine.
type config struct {
	maxRecursionDepth int
	randomSeed        int64
	seedGiven         bool
	logger            Logger
}

// Option configures an Engine before construction.
type Option func(*config)

// WithMaxRecursionDepth overrides the upper bound on repair-layer depth.
// Values <= 0 are ignored (the default is kept).
func WithMaxRecursionDepth(depth int) Option {
	return func(c *config) {
		if depth > 0 {
			c.maxRecursionDepth = depth
		}
	}
}

// WithRandomSeed fixes the engine's RNG seed, making runs reproducible.
// Without it, the engine draws a seed from a system source and records the
// value used (see Engine.Stats).
func WithRandomSeed(seed int64) Option {
	return func(c *config) {
		c.randomSeed = seed
		c.seedGiven = true
	}
}

// WithLogger injects a structured logger. The default is a silent no-op.
func WithLogger(l Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// newConfig applies opts in order over deterministic defaults, then resolves
// an unset random seed from a system source.
func newConfig(opts ...Option) config {
	cfg := config{
		maxRecursionDepth: defaultMaxRecursionDepth,
		logger:            noopLogger{},
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if !cfg.seedGiven {
		cfg.randomSeed = time.Now().UnixNano()
	}
	return cfg
}
