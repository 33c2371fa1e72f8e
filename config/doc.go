// Package config loads the YAML model document that drives the hydroml CLI.
//
// A document has one section per model:
//
//	seed: 42
//	forecast:
//	  window_size: 10
//	  hidden_size: 32
//	  activation: relu
//	  epochs: 100
//	distance:
//	  contamination: 0.1
//	autoencoder:
//	  encoding_dim: 2
//	  hidden_dims: [16, 8]
//
// Missing keys keep the values of Default(); unknown keys are rejected.
// The section accessors translate a validated document into the library
// configs of the forecast and anomaly packages.
package config
