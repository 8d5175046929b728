package main

import "github.com/spf13/cobra"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "rewriteprobe",
		Short:         "Smoke-test rewrite prompts against the Gemini API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newRunCmd())
	root.AddCommand(newRewriteCmd())
	root.AddCommand(newCasesCmd())
	root.AddCommand(newQuickstartCmd())

	return root
}
