// SPDX-License-Identifier: MIT

// Package matrix: static factories and the random-fill configuration.
//
// Random and RandomInts share one process-wide generator, seeded on first use
// and kept across calls so successive draws differ; WithForceReseed rewinds
// it deterministically. The generator is not synchronized (single-threaded
// model, as the rest of the package).

package matrix

import (
	"math/rand"
	"time"
)

// randomConfig stores the effective random-fill configuration after applying
// RandomOption setters. Unexported by design; entry points accept ...RandomOption.
type randomConfig struct {
	seed        int64
	forceReseed bool
}

// RandomOption mutates the random-fill configuration. Safe to apply repeatedly.
type RandomOption func(*randomConfig)

// WithSeed sets the seed used when the shared generator is (re)initialized.
// Without WithForceReseed the seed only matters on the very first draw.
func WithSeed(seed int64) RandomOption {
	return func(c *randomConfig) { c.seed = seed }
}

// WithForceReseed rewinds the shared generator to the configured seed before
// filling, making the draw reproducible regardless of prior calls.
func WithForceReseed() RandomOption {
	return func(c *randomConfig) { c.forceReseed = true }
}

// gatherRandomOptions resolves setters against the defaults (time-based seed,
// no reseed). Last-writer-wins semantics.
func gatherRandomOptions(opts ...RandomOption) randomConfig {
	c := randomConfig{seed: time.Now().UnixNano()}
	for _, set := range opts {
		set(&c)
	}

	return c
}

// rng is the shared generator; nil until the first Random/RandomInts call.
var rng *rand.Rand

// sharedRNG returns the process generator, seeding or reseeding per cfg.
func sharedRNG(cfg randomConfig) *rand.Rand {
	if rng == nil || cfg.forceReseed {
		rng = rand.New(rand.NewSource(cfg.seed))
	}

	return rng
}

// Identity returns the n×n identity matrix.
// Errors: ErrInvalidDimensions. Complexity: O(n²).
func Identity[T Scalar](n int) (*Matrix[T], error) {
	m, err := New[T](n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// Zeros returns an n×m zero matrix.
// Errors: ErrInvalidDimensions. Complexity: O(n*m).
func Zeros[T Scalar](n, m int) (*Matrix[T], error) {
	return New[T](n, m)
}

// Random returns an n×m matrix filled with uniform real values in [min, max).
// The draw uses the shared generator: pass WithSeed on the first call (or
// WithSeed+WithForceReseed on any call) for reproducible output.
//
// Errors: ErrInvalidDimensions. Complexity: O(n*m).
func Random(n, m int, min, max float64, opts ...RandomOption) (*Matrix[float64], error) {
	res, err := New[float64](n, m)
	if err != nil {
		return nil, err
	}
	gen := sharedRNG(gatherRandomOptions(opts...))
	for idx := range res.data {
		res.data[idx] = min + gen.Float64()*(max-min)
	}

	return res, nil
}

// RandomInts returns an n×m matrix of uniform integers in [min, max],
// stored as float64 values. Seeding rules match Random.
//
// Errors: ErrInvalidDimensions. Complexity: O(n*m).
func RandomInts(n, m, min, max int, opts ...RandomOption) (*Matrix[float64], error) {
	res, err := New[float64](n, m)
	if err != nil {
		return nil, err
	}
	gen := sharedRNG(gatherRandomOptions(opts...))
	span := max - min + 1 // inclusive bounds
	for idx := range res.data {
		res.data[idx] = float64(min + gen.Intn(span))
	}

	return res, nil
}
