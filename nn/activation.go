// SPDX-License-Identifier: MIT
// Package nn - activation kinds.
//
// Activation is a closed set; the value and derivative functions are
// resolved by a switch on a small integer, never by string comparison
// inside the forward/backward loops.

package nn

import (
	"fmt"
	"math"
	"strings"
)

// sigmoidClamp bounds the logistic input so exp(-x) never overflows.
const sigmoidClamp = 500.0

// Activation selects the non-linearity applied on hidden boundaries.
type Activation int

const (
	// Identity passes values through unchanged.
	Identity Activation = iota
	// ReLU is max(0, x).
	ReLU
	// Sigmoid is 1 / (1 + exp(-x)), with x clamped to ±500.
	Sigmoid
	// Tanh is the hyperbolic tangent.
	Tanh
)

var activationNames = [...]string{
	Identity: "identity",
	ReLU:     "relu",
	Sigmoid:  "sigmoid",
	Tanh:     "tanh",
}

// String returns the lower-case name used in configuration files.
func (a Activation) String() string {
	if a < Identity || a > Tanh {
		return fmt.Sprintf("Activation(%d)", int(a))
	}

	return activationNames[a]
}

// Valid reports whether a is one of the four known kinds.
func (a Activation) Valid() bool { return a >= Identity && a <= Tanh }

// ParseActivation maps a case-insensitive name ("relu", "sigmoid", "tanh",
// "identity" or "linear") to its Activation.
func ParseActivation(name string) (Activation, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "identity", "linear":
		return Identity, nil
	case "relu":
		return ReLU, nil
	case "sigmoid", "logistic":
		return Sigmoid, nil
	case "tanh":
		return Tanh, nil
	default:
		return Identity, fmt.Errorf("ParseActivation(%q): %w", name, ErrUnknownActivation)
	}
}

// apply evaluates the activation at x.
func (a Activation) apply(x float64) float64 {
	switch a {
	case ReLU:
		if x > 0 {
			return x
		}
		return 0
	case Sigmoid:
		if x > sigmoidClamp {
			x = sigmoidClamp
		} else if x < -sigmoidClamp {
			x = -sigmoidClamp
		}
		return 1.0 / (1.0 + math.Exp(-x))
	case Tanh:
		return math.Tanh(x)
	default:
		return x
	}
}

// derivative returns f'(pre). The sigmoid derivative is computed from the
// already-evaluated activation act = σ(pre) as act*(1-act); the others
// use the pre-activation.
func (a Activation) derivative(pre, act float64) float64 {
	switch a {
	case ReLU:
		if pre > 0 {
			return 1
		}
		return 0
	case Sigmoid:
		return act * (1 - act)
	case Tanh:
		t := math.Tanh(pre)
		return 1 - t*t
	default:
		return 1
	}
}
