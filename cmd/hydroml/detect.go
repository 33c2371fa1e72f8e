// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/katalvlaran/hydroml/anomaly"
	"github.com/katalvlaran/hydroml/dataset"
	"github.com/katalvlaran/hydroml/matrix"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const (
	methodDistance    = "distance"
	methodAutoencoder = "autoencoder"
)

type detectOptions struct {
	input   string
	method  string
	format  string
	verbose bool
}

// detector is the scoring surface shared by both anomaly detectors.
type detector interface {
	DecisionFunction(x matrix.Matrix) ([]float64, error)
	Predict(x matrix.Matrix) ([]int, error)
	Threshold() float64
}

type detectReport struct {
	Method    string    `json:"method"`
	Threshold float64   `json:"threshold"`
	Anomalies int       `json:"anomalies"`
	Scores    []float64 `json:"scores"`
	Labels    []int     `json:"labels"`
}

func newDetectCmd(ro *rootOptions) *cobra.Command {
	do := &detectOptions{}
	cmd := &cobra.Command{
		Use:   "detect",
		Short: "Fit an anomaly detector on a CSV matrix and label every row",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDetect(cmd, ro, do)
		},
	}
	cmd.Flags().StringVar(&do.input, "input", "", "CSV file with one row per observation (required)")
	cmd.Flags().StringVar(&do.method, "method", methodDistance, "detector: distance or autoencoder")
	cmd.Flags().StringVar(&do.format, "format", formatText, "output format: text (score,label per row) or json")
	cmd.Flags().BoolVar(&do.verbose, "verbose", false, "log autoencoder training progress")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func runDetect(cmd *cobra.Command, ro *rootOptions, do *detectOptions) error {
	if err := checkFormat(do.format); err != nil {
		return err
	}
	model, err := ro.loadModel()
	if err != nil {
		return err
	}
	x, err := dataset.ReadMatrix(do.input)
	if err != nil {
		return err
	}

	var det detector
	switch do.method {
	case methodDistance:
		cfg, err := model.DistanceConfig(ro.log)
		if err != nil {
			return err
		}
		d, err := anomaly.NewIsolationForestDetector(cfg)
		if err != nil {
			return err
		}
		if err = d.Fit(x); err != nil {
			return err
		}
		det = d
	case methodAutoencoder:
		cfg, fit, err := model.AutoencoderConfig(ro.log)
		if err != nil {
			return err
		}
		fit.Verbose = do.verbose
		d, err := anomaly.NewAutoencoderDetector(cfg)
		if err != nil {
			return err
		}
		if err = d.Fit(x, fit); err != nil {
			return err
		}
		det = d
	default:
		return fmt.Errorf("unknown --method %q (want %s or %s)", do.method, methodDistance, methodAutoencoder)
	}

	report := detectReport{Method: do.method, Threshold: det.Threshold()}
	if report.Scores, err = det.DecisionFunction(x); err != nil {
		return err
	}
	if report.Labels, err = det.Predict(x); err != nil {
		return err
	}
	for _, l := range report.Labels {
		if l == anomaly.Anomalous {
			report.Anomalies++
		}
	}
	rows, cols := x.Shape()
	ro.log.WithFields(logrus.Fields{
		"method":    do.method,
		"rows":      rows,
		"features":  cols,
		"anomalies": report.Anomalies,
		"threshold": report.Threshold,
	}).Info("detection finished")

	out := cmd.OutOrStdout()
	if do.format == formatJSON {
		return writeJSON(out, report)
	}
	fmt.Fprintln(out, "score,label")
	for i, s := range report.Scores {
		fmt.Fprintf(out, "%g,%d\n", s, report.Labels[i])
	}

	return nil
}
