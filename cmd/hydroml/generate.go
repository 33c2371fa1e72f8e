// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/katalvlaran/hydroml/dataset"
	"github.com/katalvlaran/hydroml/synth"
	"github.com/spf13/cobra"
)

type generateOptions struct {
	output    string
	seed      int64
	length    int
	noise     float64
	amplitude float64
	offset    float64

	slope     float64
	frequency float64
	duty      float64
	triangle  bool
	f0, f1    float64

	rows, cols int
	outliers   float64
	shift      float64
	labels     string
}

func newGenerateCmd(ro *rootOptions) *cobra.Command {
	g := &generateOptions{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write deterministic synthetic data as CSV",
	}
	pf := cmd.PersistentFlags()
	pf.StringVarP(&g.output, "output", "o", "-", "output file (- for stdout)")
	pf.Int64Var(&g.seed, "seed", 1, "random seed")
	pf.Float64Var(&g.amplitude, "amplitude", 1, "signal height (series) or feature spread (blobs)")
	pf.Float64Var(&g.offset, "offset", 0, "constant level added to every value")

	series := func(use, short string, gen func() ([]float64, error)) *cobra.Command {
		c := &cobra.Command{
			Use:   use,
			Short: short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				if err := g.checkSeries(); err != nil {
					return err
				}
				values, err := gen()
				if err != nil {
					return err
				}
				return g.write(cmd, func(w io.Writer) error {
					return dataset.WriteSeries(w, "value", values)
				})
			},
		}
		c.Flags().IntVar(&g.length, "length", 200, "number of samples")
		c.Flags().Float64Var(&g.noise, "noise", 0, "standard deviation of added Gaussian noise")

		return c
	}

	trend := series("trend", "Linear trend plus noise", func() ([]float64, error) {
		return synth.Trend(g.length, g.slope, g.seriesOptions()...)
	})
	trend.Flags().Float64Var(&g.slope, "slope", 1, "increase per sample")

	pulse := series("pulse", "Rectangular or triangular pulse train", func() ([]float64, error) {
		opts := append(g.seriesOptions(), synth.WithFrequency(g.frequency), synth.WithDuty(g.duty))
		if g.triangle {
			opts = append(opts, synth.WithTriangular())
		}
		return synth.Pulse(g.length, opts...)
	})
	pulse.Flags().Float64Var(&g.frequency, "frequency", 0.05, "pulses per sample")
	pulse.Flags().Float64Var(&g.duty, "duty", 0.5, "fraction of each period spent high")
	pulse.Flags().BoolVar(&g.triangle, "triangular", false, "triangular instead of rectangular pulses")

	chirp := series("chirp", "Sine sweep between two frequencies", func() ([]float64, error) {
		return synth.Chirp(g.length, append(g.seriesOptions(), synth.WithSweep(g.f0, g.f1))...)
	})
	chirp.Flags().Float64Var(&g.f0, "f0", 0.01, "start frequency in cycles per sample")
	chirp.Flags().Float64Var(&g.f1, "f1", 0.1, "end frequency in cycles per sample")

	cmd.AddCommand(trend, pulse, chirp, g.blobsCmd(ro))

	return cmd
}

func (g *generateOptions) blobsCmd(ro *rootOptions) *cobra.Command {
	c := &cobra.Command{
		Use:   "blobs",
		Short: "Gaussian feature rows with injected outliers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if g.amplitude <= 0 {
				return fmt.Errorf("--amplitude %g: must be > 0", g.amplitude)
			}
			opts := []synth.Option{synth.WithSeed(g.seed), synth.WithAmplitude(g.amplitude), synth.WithOffset(g.offset)}
			if g.outliers > 0 {
				if g.outliers >= 1 || g.shift <= 0 {
					return fmt.Errorf("--outliers %g --shift %g: need outliers in [0, 1) and shift > 0", g.outliers, g.shift)
				}
				opts = append(opts, synth.WithOutliers(g.outliers, g.shift))
			}
			x, truth, err := synth.Blobs(g.rows, g.cols, opts...)
			if err != nil {
				return err
			}
			header := make([]string, g.cols)
			for j := range header {
				header[j] = fmt.Sprintf("x%d", j)
			}
			if err = g.write(cmd, func(w io.Writer) error { return dataset.WriteMatrix(w, header, x) }); err != nil {
				return err
			}

			injected := make([]float64, len(truth))
			var n int
			for i, out := range truth {
				if out {
					injected[i] = 1
					n++
				}
			}
			ro.log.WithField("outliers", n).Debug("blobs generated")
			if g.labels == "" {
				return nil
			}
			return withOutput(g.labels, nil, func(w io.Writer) error { return dataset.WriteSeries(w, "outlier", injected) })
		},
	}
	c.Flags().IntVar(&g.rows, "rows", 500, "number of rows")
	c.Flags().IntVar(&g.cols, "cols", 3, "number of features")
	c.Flags().Float64Var(&g.outliers, "outliers", 0, "fraction of rows replaced by outliers")
	c.Flags().Float64Var(&g.shift, "shift", 6, "outlier displacement in spreads")
	c.Flags().StringVar(&g.labels, "labels", "", "optional CSV receiving 1 for injected outliers, 0 otherwise")

	return c
}

func (g *generateOptions) checkSeries() error {
	switch {
	case g.amplitude <= 0:
		return fmt.Errorf("--amplitude %g: must be > 0", g.amplitude)
	case g.noise < 0:
		return fmt.Errorf("--noise %g: must be >= 0", g.noise)
	case g.frequency <= 0 || g.f0 <= 0 || g.f1 <= 0:
		return fmt.Errorf("frequencies must be > 0")
	case g.duty < 0 || g.duty > 1:
		return fmt.Errorf("--duty %g: must be in [0, 1]", g.duty)
	}

	return nil
}

func (g *generateOptions) seriesOptions() []synth.Option {
	return []synth.Option{
		synth.WithSeed(g.seed),
		synth.WithAmplitude(g.amplitude),
		synth.WithOffset(g.offset),
		synth.WithNoise(g.noise),
	}
}

func (g *generateOptions) write(cmd *cobra.Command, fn func(w io.Writer) error) error {
	return withOutput(g.output, cmd.OutOrStdout(), fn)
}
