// SPDX-License-Identifier: MIT
// Package nn - seeded random streams for weight draws and batch order.
//
// A *rand.Rand is not safe for concurrent use. Networks that train in
// parallel each need their own stream; DeriveRand splits one off a parent.

package nn

import "math/rand"

// defaultRNGSeed stands in for seed 0.
const defaultRNGSeed int64 = 1

// golden is the SplitMix64 increment.
const golden uint64 = 0x9e3779b97f4a7c15

// NewRand returns a stream seeded with seed, or with defaultRNGSeed when seed is 0.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return rand.New(rand.NewSource(seed))
}

// DeriveRand returns a stream keyed by one draw from base (defaultRNGSeed when
// base is nil) and the stream id. The autoencoder uses one id per network.
func DeriveRand(base *rand.Rand, stream uint64) *rand.Rand {
	parent := defaultRNGSeed
	if base != nil {
		parent = base.Int63()
	}

	return rand.New(rand.NewSource(mix(uint64(parent) ^ (stream + golden))))
}

// mix is the SplitMix64 output step applied to x + golden.
func mix(x uint64) int64 {
	x += golden
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb

	return int64(x ^ (x >> 31))
}

// shuffleIntsInPlace permutes a with a descending Fisher–Yates walk.
// A nil rng falls back to NewRand(0).
func shuffleIntsInPlace(a []int, rng *rand.Rand) {
	if len(a) < 2 {
		return
	}
	if rng == nil {
		rng = NewRand(0)
	}
	for i := len(a) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

// identityPerm returns 0..n-1.
func identityPerm(n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}

	return p
}
