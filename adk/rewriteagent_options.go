package adk

import "github.com/metalagman/rewriteprobe"

//go:generate go tool options-gen -from-struct=RewriteAgentOptions -out-filename=rewriteagent_options_generated.go -out-prefix=RewriteAgent -defaults-from=none
type RewriteAgentOptions struct {
	name          string                  `option:"mandatory" validate:"required"`
	description   string                  `option:"mandatory" validate:"required"`
	instruction   string                  `option:"mandatory"`
	runner        rewriteprobe.CaseRunner `option:"mandatory" validate:"required"`
	contextBefore string
	contextAfter  string
}

// RewriteAgentOption sets an optional RewriteAgent field.
type RewriteAgentOption = OptRewriteAgentOptionsSetter

// WithRewriteAgentContext sets text that surrounds every user input.
func WithRewriteAgentContext(before, after string) RewriteAgentOption {
	return func(o *RewriteAgentOptions) {
		WithRewriteAgentContextBefore(before)(o)
		WithRewriteAgentContextAfter(after)(o)
	}
}
