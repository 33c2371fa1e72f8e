// SPDX-License-Identifier: MIT
// Package: hydroml/synth
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   - config is the single source of truth for all generator knobs.
//   - newConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults:
//   - rng        = seed 1 stream
//   - amplitude  = 1.0     (pulse/chirp height, blob spread)
//   - frequency  = 0.125   (pulse cycles per sample, period 8)
//   - duty       = 0.5
//   - sweep      = 0.02 → 0.25 cycles per sample (chirp)
//   - trend      = 0.0, offset = 0.0, noise = 0.0
//   - outliers   = 0 fraction, shifted 6 spreads from the centre

package synth

import "math/rand"

const (
	defaultSeed          int64 = 1
	defaultAmplitude           = 1.0
	defaultFrequency           = 0.125
	defaultDuty                = 0.5
	defaultChirpF0             = 0.02
	defaultChirpF1             = 0.25
	defaultOutlierShift        = 6.0
	defaultOutlierFrac         = 0.0
	unitOne                    = 1.0
	triDouble                  = 2.0
	triCenter                  = 1.0
)

type config struct {
	rng *rand.Rand

	amplitude  float64
	frequency  float64
	duty       float64
	triangular bool
	chirpF0    float64
	chirpF1    float64
	trend      float64
	offset     float64
	noise      float64

	outlierFrac  float64
	outlierShift float64
}

func newConfig(opts ...Option) config {
	cfg := config{
		amplitude:    defaultAmplitude,
		frequency:    defaultFrequency,
		duty:         defaultDuty,
		chirpF0:      defaultChirpF0,
		chirpF1:      defaultChirpF1,
		outlierFrac:  defaultOutlierFrac,
		outlierShift: defaultOutlierShift,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(defaultSeed))
	}

	return cfg
}

// decorate adds the linear trend, constant offset and Gaussian noise to sample i.
func (c *config) decorate(i int, base float64) float64 {
	v := base + c.offset + c.trend*float64(i)
	if c.noise > 0 {
		v += c.noise * c.rng.NormFloat64()
	}

	return v
}
