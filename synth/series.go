// SPDX-License-Identifier: MIT
// Package: hydroml/synth
//
// series.go - deterministic one-dimensional generators.
//
// Contract:
//   - Each generator returns a slice of length n, or ErrInvalidLength for n < 1.
//   - Strict determinism per (n, options); O(n) time and memory.
//   - Trend, offset and noise are applied after the base waveform, in that order.

package synth

import (
	"fmt"
	"math"
)

// tau is 2π.
const tau = 2.0 * math.Pi

// Trend returns offset + slope*i (+ noise) for i in 0..n-1.
// Trend(100, 1) is the series 0, 1, ..., 99.
func Trend(n int, slope float64, opts ...Option) ([]float64, error) {
	if n < 1 {
		return nil, fmt.Errorf("Trend(%d): %w", n, ErrInvalidLength)
	}
	cfg := newConfig(append([]Option{WithTrend(slope)}, opts...)...)

	out := make([]float64, n)
	for i := range out {
		out[i] = cfg.decorate(i, 0)
	}

	return out, nil
}

// Pulse returns a length-n pulse sequence.
// Shape:
//   - Rectangular: y ∈ {0, A} chosen by phase fraction < duty.
//   - Triangular:  y ∈ [0, A] via 1 − |2*frac − 1| (no trig).
//
// Complexity:
//   - O(n) time, O(n) memory.
func Pulse(n int, opts ...Option) ([]float64, error) {
	if n < 1 {
		return nil, fmt.Errorf("Pulse(%d): %w", n, ErrInvalidLength)
	}
	cfg := newConfig(opts...)

	out := make([]float64, n)
	var frac, base float64
	for i := 0; i < n; i++ {
		// Phase fraction in [0,1): (i*f0) mod 1.
		frac = math.Mod(float64(i)*cfg.frequency, unitOne)
		if cfg.triangular {
			base = cfg.amplitude * (unitOne - math.Abs(triDouble*frac-triCenter))
		} else if frac < cfg.duty {
			base = cfg.amplitude
		} else {
			base = 0
		}
		out[i] = cfg.decorate(i, base)
	}

	return out, nil
}

// Chirp returns a length-n linear chirp whose frequency sweeps f0 → f1.
// Model:
//   - fi  = f0 + (f1 − f0) * i/(n−1)  (cycles/sample)
//   - θᵢ₊₁ = θᵢ + τ * fi               (phase accumulator, τ=2π)
//   - yᵢ  = A * sin(θᵢ) + trend*i + offset + noise
func Chirp(n int, opts ...Option) ([]float64, error) {
	if n < 1 {
		return nil, fmt.Errorf("Chirp(%d): %w", n, ErrInvalidLength)
	}
	cfg := newConfig(opts...)

	out := make([]float64, n)
	theta := 0.0
	var t, fi float64
	for i := 0; i < n; i++ {
		t = 0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		fi = cfg.chirpF0 + (cfg.chirpF1-cfg.chirpF0)*t
		theta += tau * fi
		out[i] = cfg.decorate(i, cfg.amplitude*math.Sin(theta))
	}

	return out, nil
}
