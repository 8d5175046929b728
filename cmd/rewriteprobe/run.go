package main

import (
	"github.com/metalagman/rewriteprobe"
	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	opts := &probeOptions{}

	var casesFile string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the smoke-test cases and print each result",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cases := rewriteprobe.DefaultCases()

			if casesFile != "" {
				loaded, err := rewriteprobe.LoadCases(casesFile)
				if err != nil {
					return err
				}

				cases = loaded
			}

			runner, err := buildRunner(cmd, opts)
			if err != nil {
				return err
			}

			runSuite(cmd, runner, cases, true)

			return nil
		},
	}

	addCommonFlags(cmd, opts)
	cmd.Flags().StringVar(&casesFile, "cases", "", "JSON or YAML case file (default: built-in cases)")

	return cmd
}

// runSuite reports every case to stdout. Per-case failures never fail the command.
func runSuite(cmd *cobra.Command, runner rewriteprobe.CaseRunner, cases []rewriteprobe.Case, summary bool) []rewriteprobe.Result {
	reporter := rewriteprobe.NewReporter(cmd.OutOrStdout())
	results := rewriteprobe.NewSuite(runner, reporter).Run(cmd.Context(), cases)

	if summary {
		reporter.Summary(results)
	}

	return results
}
