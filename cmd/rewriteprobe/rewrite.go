package main

import (
	"github.com/metalagman/rewriteprobe"
	"github.com/spf13/cobra"
)

func newRewriteCmd() *cobra.Command {
	opts := &probeOptions{}
	c := rewriteprobe.Case{}

	cmd := &cobra.Command{
		Use:   "rewrite",
		Short: "Run a single ad-hoc rewrite case",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			runner, err := buildRunner(cmd, opts)
			if err != nil {
				return err
			}

			runSuite(cmd, runner, []rewriteprobe.Case{c}, false)

			return nil
		},
	}

	addCommonFlags(cmd, opts)
	cmd.Flags().StringVar(&c.Name, "name", "Rewrite", "case name shown in the report")
	cmd.Flags().StringVar(&c.Instruction, "instruction", "", "rewrite instruction")
	cmd.Flags().StringVar(&c.Input, "input", "", "text to rewrite")
	cmd.Flags().StringVar(&c.ContextBefore, "context-before", "", "text preceding the input")
	cmd.Flags().StringVar(&c.ContextAfter, "context-after", "", "text following the input")

	return cmd
}
