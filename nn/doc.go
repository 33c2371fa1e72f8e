// Package nn implements a small dense feed-forward network for regression.
//
// A Network is an arena of layer boundaries (weight matrix, bias vector)
// built once from a list of widths. Hidden boundaries share a single
// Activation; the last boundary is always linear. Training is plain
// mini-batch gradient descent on mean-squared error:
//
//	net, err := nn.New([]int{8, 16, 1}, nn.ReLU, 0.01, nn.WithSeed(7))
//	hist, err := net.Train(x, y, nn.DefaultTrainOptions())
//	yHat, err := net.Predict(xNew)
//
// Randomness (He initialisation, per-epoch row shuffling) comes only from the
// *rand.Rand supplied through WithSeed or WithRand; a Network built without
// either uses a fixed default seed, so runs are reproducible by default.
//
// A Network is not safe for concurrent use: Train mutates weights in place.
package nn
