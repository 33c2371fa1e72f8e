// SPDX-License-Identifier: MIT
// Package: hydroml/synth
//
// options.go - functional options for the generators.
//
// Contract (strict):
//   - Option constructors VALIDATE and PANIC on meaningless inputs.
//     Generators themselves never panic; they return errors.
//   - Determinism is explicit: seeding is done via WithSeed or WithRand.

package synth

import "math/rand"

// Option customizes a generator call.
type Option func(*config)

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("synth: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithSeed creates a new deterministic RNG from seed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithAmplitude sets pulse/chirp height and blob spread (A > 0). Panics if A <= 0.
func WithAmplitude(A float64) Option {
	if A <= 0 {
		panic("synth: WithAmplitude(A<=0)")
	}
	return func(c *config) {
		c.amplitude = A
	}
}

// WithFrequency sets the pulse base frequency in cycles per sample. Panics if f0 <= 0.
func WithFrequency(f0 float64) Option {
	if f0 <= 0 {
		panic("synth: WithFrequency(f0<=0)")
	}
	return func(c *config) {
		c.frequency = f0
	}
}

// WithDuty sets the rectangular pulse duty cycle. Panics outside [0, 1].
func WithDuty(duty float64) Option {
	if duty < 0 || duty > 1 {
		panic("synth: WithDuty(duty∉[0,1])")
	}
	return func(c *config) {
		c.duty = duty
	}
}

// WithTriangular switches pulses from rectangular to triangular.
func WithTriangular() Option {
	return func(c *config) {
		c.triangular = true
	}
}

// WithSweep sets the chirp start and end frequencies. Panics if either is <= 0.
func WithSweep(f0, f1 float64) Option {
	if f0 <= 0 || f1 <= 0 {
		panic("synth: WithSweep(f<=0)")
	}
	return func(c *config) {
		c.chirpF0, c.chirpF1 = f0, f1
	}
}

// WithTrend adds k*i to sample i. Any real value is accepted.
func WithTrend(k float64) Option {
	return func(c *config) {
		c.trend = k
	}
}

// WithOffset adds a constant level to every sample (series) or feature (blobs).
func WithOffset(level float64) Option {
	return func(c *config) {
		c.offset = level
	}
}

// WithNoise adds N(0, sigma²) noise to series samples. Panics if sigma < 0.
func WithNoise(sigma float64) Option {
	if sigma < 0 {
		panic("synth: WithNoise(sigma<0)")
	}
	return func(c *config) {
		c.noise = sigma
	}
}

// WithOutliers makes Blobs replace a fraction of rows with points shifted
// by ±shift spreads on every feature. Panics if fraction ∉ [0, 1) or shift <= 0.
func WithOutliers(fraction, shift float64) Option {
	if fraction < 0 || fraction >= 1 || shift <= 0 {
		panic("synth: WithOutliers(fraction∉[0,1) or shift<=0)")
	}
	return func(c *config) {
		c.outlierFrac, c.outlierShift = fraction, shift
	}
}
