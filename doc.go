// Package hydroml is a small, dependency-light toolkit for univariate
// forecasting and multivariate anomaly detection built on a dense
// feed-forward network engine.
//
// Packages:
//
//	matrix/   row-major Dense matrix, linear-algebra kernels, column statistics
//	nn/       feed-forward network: forward, backward, mini-batch training
//	sequence/ z-score normalization, sliding windows, window summary features
//	forecast/ LSTMPredictor: windowed one-step forecaster with autoregressive rollout
//	anomaly/  IsolationForestDetector (mean/covariance distance) and AutoencoderDetector
//	synth/    seeded synthetic series and Gaussian blobs with injected outliers
//	config/   YAML model document for the CLI
//	dataset/  numeric CSV reading and writing
//
// The hydroml command (cmd/hydroml) wires them together:
// generate, forecast, detect and model.
//
// Every component that draws random numbers takes an explicit seed or
// *rand.Rand; identical seeds reproduce identical models.
package hydroml
