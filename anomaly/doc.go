// Package anomaly flags rows of a numeric matrix as normal (+1) or
// anomalous (-1).
//
// Both detectors score rows (larger = more anomalous) and fix a threshold once,
// at fit time, as the (1-contamination)·100-th percentile of the training
// scores:
//
//   - IsolationForestDetector scores by Mahalanobis distance from the training
//     mean (Euclidean on z-scored rows when the covariance cannot be inverted).
//     Despite its name it builds no trees; the name is kept for compatibility.
//   - AutoencoderDetector scores by per-row reconstruction error of an
//     encoder/decoder pair of nn.Networks trained in two separate stages.
package anomaly

// Labels returned by Predict.
const (
	Normal    = 1
	Anomalous = -1
)

// DefaultContamination is the assumed outlier fraction of training data.
const DefaultContamination = 0.1
