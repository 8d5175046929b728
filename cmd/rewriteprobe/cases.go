package main

import (
	"github.com/metalagman/rewriteprobe"
	"github.com/spf13/cobra"
)

func newCasesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cases",
		Short: "Print the built-in cases as a YAML case file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := rewriteprobe.MarshalCasesYAML(rewriteprobe.DefaultCases())
			if err != nil {
				return err
			}

			_, err = cmd.OutOrStdout().Write(data)

			return err
		},
	}
}
