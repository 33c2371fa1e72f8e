// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"
)

func newModelCmd(ro *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "model",
		Short: "Print the effective model document (--model, or the defaults) as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := ro.loadModel()
			if err != nil {
				return err
			}
			raw, err := m.Marshal()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(raw)

			return err
		},
	}
}
