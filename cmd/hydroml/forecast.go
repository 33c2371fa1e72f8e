// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"math"

	"github.com/katalvlaran/hydroml/dataset"
	"github.com/katalvlaran/hydroml/forecast"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type forecastOptions struct {
	input   string
	column  int
	steps   int
	holdout float64
	format  string
	verbose bool
}

type forecastReport struct {
	Predictions []float64         `json:"predictions"`
	Loss        []float64         `json:"loss"`
	Holdout     *forecast.Metrics `json:"holdout,omitempty"`
}

func newForecastCmd(ro *rootOptions) *cobra.Command {
	fo := &forecastOptions{}
	cmd := &cobra.Command{
		Use:   "forecast",
		Short: "Fit the windowed forecaster on a CSV series and predict the next values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runForecast(cmd, ro, fo)
		},
	}
	cmd.Flags().StringVar(&fo.input, "input", "", "CSV file holding the series (required)")
	cmd.Flags().IntVar(&fo.column, "column", 0, "zero-based CSV column of the series")
	cmd.Flags().IntVar(&fo.steps, "steps", 10, "values to forecast past the end of the series")
	cmd.Flags().Float64Var(&fo.holdout, "holdout", 0, "trailing fraction of the series kept out of training and scored")
	cmd.Flags().StringVar(&fo.format, "format", formatText, "output format: text or json")
	cmd.Flags().BoolVar(&fo.verbose, "verbose", false, "log training progress")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func runForecast(cmd *cobra.Command, ro *rootOptions, fo *forecastOptions) error {
	if err := checkFormat(fo.format); err != nil {
		return err
	}
	if fo.holdout < 0 || fo.holdout >= 1 {
		return fmt.Errorf("--holdout %g: must be in [0, 1)", fo.holdout)
	}
	model, err := ro.loadModel()
	if err != nil {
		return err
	}
	cfg, fit, err := model.ForecastConfig(ro.log)
	if err != nil {
		return err
	}
	fit.Verbose = fo.verbose

	series, err := dataset.ReadSeries(fo.input, fo.column)
	if err != nil {
		return err
	}
	p, err := forecast.NewLSTMPredictor(cfg)
	if err != nil {
		return err
	}

	split := len(series) - int(math.Round(fo.holdout*float64(len(series))))
	report := forecastReport{}
	if report.Loss, err = p.Fit(series[:split], fit); err != nil {
		return err
	}
	if split < len(series) {
		// The scored tail starts early enough for its first target to be series[split].
		start := split - (cfg.WindowSize + cfg.TargetOffset - 1)
		m, err := p.Evaluate(series[start:], fit.UseFeatures)
		if err != nil {
			return err
		}
		report.Holdout = &m
		ro.log.WithFields(logrus.Fields{"points": len(series) - split, "rmse": m.RMSE}).Info("holdout scored")
	}
	if report.Predictions, err = p.Predict(series, fo.steps, fit.UseFeatures); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if fo.format == formatJSON {
		return writeJSON(out, report)
	}
	if report.Holdout != nil {
		fmt.Fprintf(out, "# holdout %s\n", report.Holdout)
	}
	for _, v := range report.Predictions {
		fmt.Fprintf(out, "%g\n", v)
	}

	return nil
}
