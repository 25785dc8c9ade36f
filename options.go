package camfx

import (
	"log/slog"
	"math/rand/v2"
)

// Option configures an Orchestrator during creation.
//
// Example:
//
//	// Reproducible mosaic-only run on four workers
//	o := camfx.New(scene,
//		camfx.WithMode(camfx.ModeRandomMosaic),
//		camfx.WithSeed(42),
//		camfx.WithWorkers(4),
//	)
type Option func(*options)

type options struct {
	mode        Mode
	src         Source
	workers     int
	noiseChance float64
	logger      *slog.Logger
}

func defaultOptions() options {
	return options{
		mode:        ModeFull,
		workers:     1,
		noiseChance: DefaultNoiseChance,
	}
}

// WithMode selects the orchestration mode. Invalid modes are ignored.
func WithMode(m Mode) Option {
	return func(o *options) {
		if m.IsValid() {
			o.mode = m
		}
	}
}

// WithSource sets the random source feeding every stochastic operator.
//
// If src also has a Uint64 method (as *rand.Rand does), each camera gets
// its own stream derived from src in enumeration order, so results do not
// depend on the worker count. Otherwise cameras are processed one at a time
// and share src.
func WithSource(src Source) Option {
	return func(o *options) {
		o.src = src
	}
}

// WithSeed seeds a PCG source for reproducible runs.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.src = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
}

// WithWorkers sets how many cameras are processed in parallel.
// Values below 1 mean one per GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithNoiseChance sets the per-tick probability of the gated salt step in
// ModeRandomSalt. The value is clamped to [0,1].
func WithNoiseChance(p float64) Option {
	return func(o *options) {
		o.noiseChance = p
	}
}

// WithLogger gives the orchestrator its own logger instead of the package
// logger set with SetLogger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
