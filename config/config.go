package config

import (
	"time"

	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/levels"
)

// RunConfig tunes a ModificationSearch invocation.
type RunConfig struct {
	// Depth is the exact trial length (number of rewrite applications)
	// searched at each iterative-deepening level.
	Depth int
	// LimitPerLevel caps the number of embeddings tried per (level,
	// pattern) pair before that branch is abandoned.
	LimitPerLevel int
	// PropertyDeadline bounds each property.Check call.
	PropertyDeadline time.Duration
	// Logger receives a debug line per pattern application, an info line
	// per violator found, and a warning per failed composition or check.
	// A nil Logger is replaced by a silenced logger.
	Logger *gologger.Logger
}

// Option customizes a RunConfig.
type Option func(*RunConfig)

// WithDepth sets the exact search depth. Panics if depth <= 0: a
// non-positive depth is a programmer error, not a runtime condition.
func WithDepth(depth int) Option {
	if depth <= 0 {
		panic("config: WithDepth(depth<=0)")
	}
	return func(c *RunConfig) { c.Depth = depth }
}

// WithLimitPerLevel bounds embeddings tried per (level, pattern) pair.
// Panics if limit <= 0.
func WithLimitPerLevel(limit int) Option {
	if limit <= 0 {
		panic("config: WithLimitPerLevel(limit<=0)")
	}
	return func(c *RunConfig) { c.LimitPerLevel = limit }
}

// WithPropertyDeadline sets the per-call property-check deadline.
// Panics if d <= 0.
func WithPropertyDeadline(d time.Duration) Option {
	if d <= 0 {
		panic("config: WithPropertyDeadline(d<=0)")
	}
	return func(c *RunConfig) { c.PropertyDeadline = d }
}

// WithLogger attaches a structured logger. Panics on nil; use
// DefaultConfig's built-in silenced logger instead of passing nil.
func WithLogger(l *gologger.Logger) Option {
	if l == nil {
		panic("config: WithLogger(nil)")
	}
	return func(c *RunConfig) { c.Logger = l }
}

// DefaultConfig returns depth=1, limitPerLevel=64, a 1-second property
// deadline, and a silenced logger, then applies opts.
func DefaultConfig(opts ...Option) RunConfig {
	l := gologger.NewLogger()
	l.SetMaxLevel(levels.LevelSilent)

	c := RunConfig{
		Depth:            1,
		LimitPerLevel:    64,
		PropertyDeadline: time.Second,
		Logger:           l,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
