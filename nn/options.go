// SPDX-License-Identifier: MIT
// Package: hydroml/nn
//
// options.go - functional options for New.
//
// Contract (strict):
//   - Options are functional (type Option func(*networkConfig)).
//   - Option constructors VALIDATE and PANIC on meaningless inputs.
//     Training itself never panics on user data.
//   - Determinism is explicit: seeding is done via WithSeed or WithRand.

package nn

import (
	"math/rand"

	"github.com/sirupsen/logrus"
)

// DefaultLogEvery is the epoch interval between progress lines of a verbose Train.
const DefaultLogEvery = 10

// Option customizes a Network before its weights are initialised.
type Option func(*networkConfig)

type networkConfig struct {
	rng      *rand.Rand
	logger   *logrus.Logger
	logEvery int
}

func newNetworkConfig(opts []Option) networkConfig {
	cfg := networkConfig{logEvery: DefaultLogEvery}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = NewRand(0)
	}
	if cfg.logger == nil {
		cfg.logger = logrus.StandardLogger()
	}

	return cfg
}

// WithSeed creates a deterministic RNG from seed (0 maps to a fixed default).
// Complexity: O(1) time, O(1) space.
func WithSeed(seed int64) Option {
	return func(c *networkConfig) {
		c.rng = NewRand(seed)
	}
}

// WithRand provides an explicit RNG used for initialisation and shuffling.
// The network takes ownership; do not share r with a concurrently training network.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("nn: WithRand(nil)")
	}
	return func(c *networkConfig) {
		c.rng = r
	}
}

// WithLogger routes training progress to l instead of the logrus standard logger.
// Panics on nil.
func WithLogger(l *logrus.Logger) Option {
	if l == nil {
		panic("nn: WithLogger(nil)")
	}
	return func(c *networkConfig) {
		c.logger = l
	}
}

// WithLogEvery sets the epoch interval of verbose progress lines. Panics if k < 1.
func WithLogEvery(k int) Option {
	if k < 1 {
		panic("nn: WithLogEvery(k<1)")
	}
	return func(c *networkConfig) {
		c.logEvery = k
	}
}
