// SPDX-License-Identifier: MIT

package anomaly

import (
	"fmt"
	"math"
	"sort"
)

// Percentile returns the q-th percentile (q in [0, 100]) of values using
// linear interpolation between closest ranks: position q/100·(n-1) in the
// sorted data. values is not modified.
func Percentile(values []float64, q float64) (float64, error) {
	if len(values) == 0 || math.IsNaN(q) || q < 0 || q > 100 {
		return 0, fmt.Errorf("Percentile(n=%d, q=%g): %w", len(values), q, ErrInvalidPercentile)
	}

	s := append([]float64(nil), values...)
	sort.Float64s(s)

	pos := q / 100 * float64(len(s)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return s[lo], nil
	}

	return s[lo] + (pos-float64(lo))*(s[hi]-s[lo]), nil
}

// thresholdFor fixes the decision threshold of a fitted detector.
func thresholdFor(scores []float64, contamination float64) (float64, error) {
	return Percentile(scores, (1-contamination)*100)
}

// validContamination reports whether c lies in (0, 1).
func validContamination(c float64) bool { return c > 0 && c < 1 }

// label maps scores to Normal (at or below threshold) or Anomalous.
func label(scores []float64, threshold float64) []int {
	out := make([]int, len(scores))
	for i, s := range scores {
		if s <= threshold {
			out[i] = Normal
		} else {
			out[i] = Anomalous
		}
	}

	return out
}
