package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func newQuickstartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "quickstart",
		Short: "Show examples and usage instructions",
		Run: func(cmd *cobra.Command, _ []string) {
			printQuickstart(cmd.OutOrStdout())
		},
	}
}

func printQuickstart(w io.Writer) {
	_, _ = fmt.Fprintln(w, `Quickstart Guide for rewriteprobe

1. Credentials
   Export the key or put it in a .env file next to where you run the tool.

   export GEMINI_API_KEY=...

2. Built-in smoke test
   Runs the Grammar Check, Warm Tone and Refine cases in order.

   rewriteprobe run

3. Custom cases
   Dump the built-in cases, edit them, and run the file.

   rewriteprobe cases > cases.yaml
   rewriteprobe run --cases cases.yaml --model gemini-flash-latest

4. One-off rewrite

   rewriteprobe rewrite \
     --instruction="Rewrite the text in a warm tone." \
     --input="stop spamming me right now" \
     --context-before="Hi Sam," --context-after="Thanks!"

5. SDK transport and debugging

   rewriteprobe run --transport sdk --timeout 30s --debug`)
}
