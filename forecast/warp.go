// SPDX-License-Identifier: MIT

package forecast

import (
	"fmt"
	"math"
)

// WarpDistance returns the dynamic-time-warping distance between a and b:
// the minimal sum of |a[i]-b[j]| along a monotone alignment of the two
// sequences from (0,0) to (n-1,m-1).
//
// Alignment cells with |i-j| > band are excluded (Sakoe–Chiba band). A band
// of 0 or less means no constraint; a band narrower than |n-m| is widened to
// |n-m| so the end cell stays reachable.
//
// Implementation:
//   - Stage 1: D[0][0] = 0, every other border cell = +Inf.
//   - Stage 2: D[i][j] = cost(i,j) + min(D[i-1][j], D[i][j-1], D[i-1][j-1]),
//     keeping only the previous and the current row.
//
// Errors: ErrEmptySequence.
//
// Complexity: Time O(n·m) (O(n·band) when banded), Space O(m).
func WarpDistance(a, b []float64, band int) (float64, error) {
	n, m := len(a), len(b)
	if n == 0 || m == 0 {
		return 0, fmt.Errorf("WarpDistance(%d,%d): %w", n, m, ErrEmptySequence)
	}
	if band > 0 {
		if d := n - m; d > band || -d > band {
			band = max(d, -d)
		}
	}

	inf := math.Inf(1)
	prev := make([]float64, m+1)
	curr := make([]float64, m+1)
	for j := 1; j <= m; j++ {
		prev[j] = inf
	}

	var lo, hi int
	for i := 1; i <= n; i++ {
		for j := range curr {
			curr[j] = inf
		}
		lo, hi = 1, m
		if band > 0 {
			lo, hi = max(1, i-band), min(m, i+band)
		}
		for j := lo; j <= hi; j++ {
			curr[j] = math.Abs(a[i-1]-b[j-1]) + min(prev[j], curr[j-1], prev[j-1])
		}
		prev, curr = curr, prev
	}

	return prev[m], nil
}
