// SPDX-License-Identifier: MIT

package anomaly_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/hydroml/anomaly"
	"github.com/katalvlaran/hydroml/matrix"
	"github.com/katalvlaran/hydroml/synth"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

func TestDistanceDetectorContaminationRate(t *testing.T) {
	x, _, err := synth.Blobs(500, 3, synth.WithSeed(11))
	require.NoError(t, err)

	det, err := anomaly.NewIsolationForestDetector(anomaly.DefaultDistanceConfig())
	require.NoError(t, err)
	require.NoError(t, det.Fit(x))
	assert.False(t, det.Euclidean())
	assert.Greater(t, det.Threshold(), 0.0)

	labels, err := det.Predict(x)
	require.NoError(t, err)
	require.Len(t, labels, 500)
	assert.InDelta(t, 0.1, float64(countAnomalous(labels))/500, 0.02)
}

func TestDistanceDetectorKnownGeometry(t *testing.T) {
	x, err := matrix.NewDenseFrom([][]float64{{0, 0}, {2, 0}, {0, 2}, {2, 2}})
	require.NoError(t, err)
	det, err := anomaly.NewIsolationForestDetector(anomaly.DistanceConfig{Contamination: 0.25})
	require.NoError(t, err)
	require.NoError(t, det.Fit(x))

	assert.Equal(t, []float64{1, 1}, det.Mean())
	assert.InDeltaSlice(t, []float64{1, 1}, det.StdDev(), 1e-12)
	cov := det.Covariance()
	v, _ := cov.At(0, 0)
	assert.InDelta(t, 4.0/3, v, 1e-12)

	points, err := matrix.NewDenseFrom([][]float64{{1, 1}, {3, 1}, {11, 1}})
	require.NoError(t, err)
	scores, err := det.DecisionFunction(points)
	require.NoError(t, err)
	assert.InDelta(t, 0, scores[0], 1e-12)
	assert.InDelta(t, math.Sqrt(3), scores[1], 1e-9)
	assert.Greater(t, scores[2], scores[1])

	labels, err := det.Predict(points)
	require.NoError(t, err)
	assert.Equal(t, []int{anomaly.Normal, anomaly.Anomalous, anomaly.Anomalous}, labels)
}

func TestDistanceDetectorCorrelatedFeatures(t *testing.T) {
	rows := [][]float64{{0, 0}, {1, 1.5}, {2, 1.8}, {3, 3.4}, {4, 3.9}, {5, 5.2}, {1.5, 0.5}, {3.5, 4.4}}
	x, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)
	det, err := anomaly.NewIsolationForestDetector(anomaly.DefaultDistanceConfig())
	require.NoError(t, err)
	require.NoError(t, det.Fit(x))
	require.False(t, det.Euclidean())

	flat := make([]float64, 0, 2*len(rows))
	for _, r := range rows {
		flat = append(flat, r...)
	}
	var cov mat.SymDense
	stat.CovarianceMatrix(&cov, mat.NewDense(len(rows), 2, flat), nil)
	var inv mat.Dense
	require.NoError(t, inv.Inverse(&cov))
	mu := mat.NewVecDense(2, det.Mean())

	points := [][]float64{{2.5, 2.5}, {4, 1}, {0, 5}}
	m, err := matrix.NewDenseFrom(points)
	require.NoError(t, err)
	scores, err := det.DecisionFunction(m)
	require.NoError(t, err)
	for i, p := range points {
		var d mat.VecDense
		d.SubVec(mat.NewVecDense(2, p), mu)
		assert.InDelta(t, math.Sqrt(mat.Inner(&d, &inv, &d)), scores[i], 1e-9, "row %d", i)
	}
	// Off-diagonal points are far in Mahalanobis terms even when close in Euclidean terms.
	assert.Greater(t, scores[1], scores[0])
}

func TestDistanceDetectorFindsInjectedOutliers(t *testing.T) {
	x, truth, err := synth.Blobs(300, 3, synth.WithSeed(2), synth.WithOutliers(0.05, 10))
	require.NoError(t, err)

	det, err := anomaly.NewIsolationForestDetector(anomaly.DistanceConfig{Contamination: 0.05})
	require.NoError(t, err)
	require.NoError(t, det.Fit(x))
	labels, err := det.Predict(x)
	require.NoError(t, err)

	var hit, total int
	for i, isOut := range truth {
		if isOut {
			total++
			if labels[i] == anomaly.Anomalous {
				hit++
			}
		}
	}
	require.Equal(t, 15, total)
	assert.GreaterOrEqual(t, float64(hit)/float64(total), 0.8)
}

func TestDistanceDetectorSingularFallback(t *testing.T) {
	base, _, err := synth.Blobs(200, 2, synth.WithSeed(8))
	require.NoError(t, err)
	rows := base.ToRows()
	for i := range rows {
		rows[i] = append(rows[i], rows[i][0]) // duplicated feature
	}
	x, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)

	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	det, err := anomaly.NewIsolationForestDetector(anomaly.DistanceConfig{Contamination: 0.1, Logger: logger})
	require.NoError(t, err)
	require.NoError(t, det.Fit(x))
	assert.True(t, det.Euclidean())
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.DebugLevel, hook.LastEntry().Level)

	labels, err := det.Predict(x)
	require.NoError(t, err)
	assert.Equal(t, 20, countAnomalous(labels))
}

func TestDistanceDetectorErrors(t *testing.T) {
	_, err := anomaly.NewIsolationForestDetector(anomaly.DistanceConfig{Contamination: 0})
	require.ErrorIs(t, err, anomaly.ErrInvalidContamination)
	_, err = anomaly.NewIsolationForestDetector(anomaly.DistanceConfig{Contamination: 1})
	require.ErrorIs(t, err, anomaly.ErrInvalidContamination)

	det, err := anomaly.NewIsolationForestDetector(anomaly.DefaultDistanceConfig())
	require.NoError(t, err)
	one, err := matrix.NewDenseFrom([][]float64{{1, 2}})
	require.NoError(t, err)
	_, err = det.DecisionFunction(one)
	require.ErrorIs(t, err, anomaly.ErrNotFitted)
	require.ErrorIs(t, det.Fit(one), anomaly.ErrTooFewRows)
	require.ErrorIs(t, det.Fit(nil), matrix.ErrNilMatrix)

	x, _, err := synth.Blobs(20, 3, synth.WithSeed(1))
	require.NoError(t, err)
	require.NoError(t, det.Fit(x))
	_, err = det.Predict(one)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
