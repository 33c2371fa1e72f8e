// Package synth generates deterministic synthetic series and matrices:
// linear trends, rectangular/triangular pulses, linear chirps and Gaussian
// blobs with injected outliers.
//
// Every generator draws randomness only from the RNG configured with
// WithSeed or WithRand; without either a fixed default seed is used, so
// identical calls return identical data.
package synth
