// SPDX-License-Identifier: MIT

// Command hydroml trains the hydroml models on CSV data.
//
//	hydroml generate trend --length 200 --noise 0.5 > series.csv
//	hydroml forecast --input series.csv --steps 10 --holdout 0.2
//	hydroml generate blobs --rows 500 --cols 3 --outliers 0.05 > points.csv
//	hydroml detect --input points.csv --method autoencoder
//
// Hyperparameters come from a YAML model document (--model, see
// "hydroml model"). Every flag can also be set in the --config file or
// through a HYDROML_<FLAG> environment variable (dashes become underscores).
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/katalvlaran/hydroml/config"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	buildVersion = "unknown"
	envPrefix    = "HYDROML"
)

// rootOptions carries the persistent flags and the state built from them.
type rootOptions struct {
	cfgFile   string
	modelFile string
	logLevel  string

	log *logrus.Logger
}

func newRootCmd() *cobra.Command {
	ro := &rootOptions{}
	root := &cobra.Command{
		Use:           "hydroml",
		Short:         "Forecast series and flag anomalous rows with small neural models",
		Version:       buildVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return ro.initConfig(cmd)
		},
	}
	root.PersistentFlags().StringVar(&ro.cfgFile, "config", "", "settings file providing flag values (yaml, json or toml)")
	root.PersistentFlags().StringVar(&ro.modelFile, "model", "", "YAML model document (default: built-in hyperparameters)")
	root.PersistentFlags().StringVar(&ro.logLevel, "log-level", "info", "Log level: debug, info, warning, error")

	root.AddCommand(
		newForecastCmd(ro),
		newDetectCmd(ro),
		newGenerateCmd(ro),
		newModelCmd(ro),
	)

	return root
}

// initConfig applies the settings file and HYDROML_* variables to every flag
// the user did not set, then builds the logger.
func (ro *rootOptions) initConfig(cmd *cobra.Command) error {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if ro.cfgFile != "" {
		v.SetConfigFile(ro.cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", ro.cfgFile, err)
		}
	}

	if err := bindFlags(cmd, v); err != nil {
		return err
	}
	ro.initLogger(cmd)

	return nil
}

func bindFlags(cmd *cobra.Command, v *viper.Viper) error {
	var err error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if err != nil || f.Changed || !v.IsSet(f.Name) {
			return
		}
		if setErr := cmd.Flags().Set(f.Name, v.GetString(f.Name)); setErr != nil {
			err = fmt.Errorf("flag --%s from config: %w", f.Name, setErr)
		}
	})

	return err
}

func (ro *rootOptions) initLogger(cmd *cobra.Command) {
	ro.log = logrus.New()
	ro.log.SetOutput(cmd.ErrOrStderr())
	ro.log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, PadLevelText: true, DisableQuote: true})
	ll, err := logrus.ParseLevel(ro.logLevel)
	if err != nil {
		ro.log.Warnf("log level %q not recognized, using info", ro.logLevel)
		ll = logrus.InfoLevel
	}
	ro.log.SetLevel(ll)
}

// loadModel returns the --model document, or the defaults.
func (ro *rootOptions) loadModel() (*config.Model, error) {
	if ro.modelFile == "" {
		return config.Default(), nil
	}

	return config.Load(ro.modelFile)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
