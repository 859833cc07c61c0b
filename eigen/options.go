// SPDX-License-Identifier: MIT

// Package eigen: functional options for the power-iteration dispatcher.
// Mirrors the package-wide convention: a plain Options struct, Default*
// constants, and With* helpers that panic loudly on nonsensical values
// (misconfiguration is a programmer error, not a runtime condition).

package eigen

// Method selects which iteration variant the dispatcher runs.
type Method int

const (
	// MethodAuto lets the dispatcher probe MethodSquared first and fall
	// back to MethodComplex when the probe stalls or diverges.
	MethodAuto Method = iota - 1

	// MethodDominant is classic power iteration (single real dominant
	// eigenvalue, Rayleigh-quotient estimate).
	MethodDominant

	// MethodSquared iterates on A², recovering a real ±λ dominant pair.
	MethodSquared

	// MethodComplex runs the fully complex iteration recovering a
	// conjugate eigenvalue pair.
	MethodComplex
)

// Tuning defaults. DefaultProbeIterations and DefaultProbeStep shape the
// cheap feasibility probe the auto dispatcher runs before committing to
// the squared method at full precision.
const (
	DefaultMaxIterations   = 100
	DefaultProbeIterations = 10
	DefaultProbeStep       = 5

	// probeTolerance is the loose convergence threshold of the probe run.
	probeTolerance = 0.1
)

// Panic messages for invalid option values.
const (
	panicBadMaxIterations   = "eigen: WithMaxIterations requires a positive count"
	panicBadProbeIterations = "eigen: WithProbeIterations requires a positive count"
	panicBadProbeStep       = "eigen: WithProbeStep requires a step of at least 2"
	panicBadMethod          = "eigen: WithMethod requires a declared Method constant"
)

// Options carries the dispatcher tuning knobs. Zero value is NOT usable;
// construct through gatherOptions.
type Options struct {
	maxIterations   int    // hard cap per iteration run
	probeIterations int    // cap of the loose-tolerance probe run
	probeStep       int    // stall-detection window inside the probe
	method          Method // forced method, or MethodAuto
}

// Option mutates Options during construction.
type Option func(*Options)

// WithMaxIterations caps every full-precision iteration run at n steps.
// Panics when n < 1.
func WithMaxIterations(n int) Option {
	if n < 1 {
		panic(panicBadMaxIterations)
	}

	return func(o *Options) { o.maxIterations = n }
}

// WithProbeIterations caps the loose-tolerance probe run at n steps.
// Panics when n < 1.
func WithProbeIterations(n int) Option {
	if n < 1 {
		panic(panicBadProbeIterations)
	}

	return func(o *Options) { o.probeIterations = n }
}

// WithProbeStep sets the look-back window of the probe's stall detector:
// the probe aborts when the convergence residual fails to shrink over the
// last n recorded steps. Panics when n < 2 (a one-step window compares a
// residual to itself).
func WithProbeStep(n int) Option {
	if n < 2 {
		panic(panicBadProbeStep)
	}

	return func(o *Options) { o.probeStep = n }
}

// WithMethod forces a specific iteration variant, bypassing the probe.
// Panics on undeclared values.
func WithMethod(m Method) Option {
	if m < MethodAuto || m > MethodComplex {
		panic(panicBadMethod)
	}

	return func(o *Options) { o.method = m }
}

// gatherOptions folds opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{
		maxIterations:   DefaultMaxIterations,
		probeIterations: DefaultProbeIterations,
		probeStep:       DefaultProbeStep,
		method:          MethodAuto,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
