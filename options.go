package nxcube

import "go.uber.org/zap"

// Option configures Cube behavior.
type Option func(*config)

type config struct {
	steps       int
	parallelism int
	seed        int64
	logger      *zap.Logger
}

func defaultConfig() *config {
	return &config{
		steps:       DefaultSteps,
		parallelism: 1,
		logger:      zap.NewNop(),
	}
}

// WithSteps sets how many increments each turn is split into.
// Values below one are treated as one (an instantaneous move).
func WithSteps(n int) Option {
	return func(c *config) {
		c.steps = max(n, 1)
	}
}

// WithParallelism sets how many goroutines share the per-step work of a
// turn. One (the default) steps pieces sequentially.
func WithParallelism(n int) Option {
	return func(c *config) {
		c.parallelism = max(n, 1)
	}
}

// WithSeed records a seed on the cube. It is reported by Seed and stored
// with persisted cubes; move application does not use it.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.seed = seed
	}
}

// WithLogger sets the logger used for move diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		if l == nil {
			l = zap.NewNop()
		}
		c.logger = l
	}
}
