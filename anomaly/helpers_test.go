// SPDX-License-Identifier: MIT

package anomaly_test

import "github.com/katalvlaran/hydroml/anomaly"

func countAnomalous(labels []int) int {
	n := 0
	for _, l := range labels {
		if l == anomaly.Anomalous {
			n++
		}
	}

	return n
}
