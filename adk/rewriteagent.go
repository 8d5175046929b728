// Package adk exposes rewrite cases as ADK agents.
package adk

import (
	"fmt"
	"iter"

	"github.com/metalagman/rewriteprobe"
	"google.golang.org/adk/agent"
	"google.golang.org/adk/session"
	"google.golang.org/genai"
)

// RewriteAgent rewrites the user's text with a fixed instruction.
type RewriteAgent struct {
	agent.Agent
	opts RewriteAgentOptions
}

// NewRewriteAgent creates a new RewriteAgent instance using functional options.
func NewRewriteAgent(
	name string,
	description string,
	instruction string,
	runner rewriteprobe.CaseRunner,
	setters ...RewriteAgentOption,
) (*RewriteAgent, error) {
	opts := NewRewriteAgentOptions(name, description, instruction, runner, setters...)
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	a := &RewriteAgent{opts: opts}

	ag, err := agent.New(agent.Config{
		Name:        a.opts.name,
		Description: a.opts.description,
		Run:         a.Run,
	})
	if err != nil {
		return nil, fmt.Errorf("create agent: %w", err)
	}

	a.Agent = ag

	return a, nil
}

// Run implements the agent.Agent interface.
// The first text part of the user content is rewritten in a single call.
func (a *RewriteAgent) Run(ctx agent.InvocationContext) iter.Seq2[*session.Event, error] {
	return func(yield func(*session.Event, error) bool) {
		c := rewriteprobe.Case{
			Name:          a.opts.name,
			Instruction:   a.opts.instruction,
			Input:         getUserInput(ctx),
			ContextBefore: a.opts.contextBefore,
			ContextAfter:  a.opts.contextAfter,
		}

		res := a.opts.runner.Run(ctx, c)
		if err := res.Error(); err != nil {
			if len(res.Payload) > 0 {
				yield(nil, fmt.Errorf("rewrite %s: %w (response: %s)", c.Name, err, string(res.Payload)))

				return
			}

			yield(nil, fmt.Errorf("rewrite %s: %w", c.Name, err))

			return
		}

		event := session.NewEvent(ctx.InvocationID())
		event.LLMResponse.Content = genai.NewContentFromText(res.Text, genai.RoleModel)
		event.Author = a.opts.name

		yield(event, nil)
	}
}

func getUserInput(ctx agent.InvocationContext) string {
	userContent := ctx.UserContent()
	if userContent != nil && len(userContent.Parts) > 0 {
		return userContent.Parts[0].Text
	}

	return ""
}
