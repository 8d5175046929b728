package adk

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/metalagman/rewriteprobe"
	"google.golang.org/adk/agent"
	"google.golang.org/adk/session"
	"google.golang.org/genai"
)

type mockInvocationContext struct {
	context.Context
	userContent *genai.Content
}

func (m *mockInvocationContext) UserContent() *genai.Content {
	return m.userContent
}

func (m *mockInvocationContext) InvocationID() string {
	return "test-id"
}

func (m *mockInvocationContext) Artifacts() agent.Artifacts {
	return nil
}

func (m *mockInvocationContext) Memory() agent.Memory {
	return nil
}

func (m *mockInvocationContext) Session() session.Session {
	return nil
}

func (m *mockInvocationContext) Agent() agent.Agent {
	return nil
}

func (m *mockInvocationContext) Branch() string {
	return ""
}

func (m *mockInvocationContext) RunConfig() *agent.RunConfig {
	return nil
}

func (m *mockInvocationContext) EndInvocation() {}
func (m *mockInvocationContext) Ended() bool    { return false }

type fakeRunner struct {
	result rewriteprobe.Result
	got    rewriteprobe.Case
}

func (f *fakeRunner) Run(_ context.Context, c rewriteprobe.Case) rewriteprobe.Result {
	f.got = c
	res := f.result
	res.Case = c

	return res
}

func TestRewriteAgent(t *testing.T) {
	tests := []struct {
		name     string
		input    *genai.Content
		result   rewriteprobe.Result
		expected string
		wantErr  error
	}{
		{
			name:     "success",
			input:    genai.NewContentFromText("me fail english yes", genai.RoleUser),
			result:   rewriteprobe.Result{Outcome: rewriteprobe.OutcomeSuccess, Text: "I fail English. Yes."},
			expected: "I fail English. Yes.",
		},
		{
			name:    "no candidates",
			input:   genai.NewContentFromText("x", genai.RoleUser),
			result:  rewriteprobe.Result{Outcome: rewriteprobe.OutcomeNoCandidates, Payload: []byte(`{"candidates":[]}`)},
			wantErr: rewriteprobe.ErrNoCandidates,
		},
		{
			name:    "failure",
			input:   nil,
			result:  rewriteprobe.Result{Outcome: rewriteprobe.OutcomeFailure, Err: rewriteprobe.ErrRequestFailed},
			wantErr: rewriteprobe.ErrRequestFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := &fakeRunner{result: tt.result}

			a, err := NewRewriteAgent("GrammarAgent", "Fixes grammar", rewriteprobe.GrammarInstruction, runner)
			if err != nil {
				t.Fatalf("failed to create rewrite agent: %v", err)
			}

			ctx := &mockInvocationContext{
				Context:     context.Background(),
				userContent: tt.input,
			}

			found := false
			for event, err := range a.Run(ctx) {
				if err != nil {
					if tt.wantErr == nil || !errors.Is(err, tt.wantErr) {
						t.Errorf("unexpected error: %v", err)
					}
					found = true
					continue
				}

				if event.Author != "GrammarAgent" {
					t.Errorf("unexpected author %q", event.Author)
				}
				if event.LLMResponse.Content != nil && len(event.LLMResponse.Content.Parts) > 0 {
					got := event.LLMResponse.Content.Parts[0].Text
					if got != tt.expected {
						t.Errorf("got %q, want %q", got, tt.expected)
					}
					found = true
				}
			}

			if !found {
				t.Error("expected an event or an error")
			}

			if runner.got.Instruction != rewriteprobe.GrammarInstruction {
				t.Errorf("unexpected instruction %q", runner.got.Instruction)
			}
		})
	}
}

func TestRewriteAgentPassesInputAndContext(t *testing.T) {
	runner := &fakeRunner{result: rewriteprobe.Result{Outcome: rewriteprobe.OutcomeSuccess, Text: "ok"}}

	a, err := NewRewriteAgent("Warm", "Warm tone", rewriteprobe.WarmInstruction, runner,
		WithRewriteAgentContext("Hi Sam,", "Thanks!"))
	if err != nil {
		t.Fatalf("failed to create rewrite agent: %v", err)
	}

	ctx := &mockInvocationContext{
		Context:     context.Background(),
		userContent: genai.NewContentFromText("stop spamming me right now", genai.RoleUser),
	}

	for _, err := range a.Run(ctx) {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	want := rewriteprobe.Case{
		Name:          "Warm",
		Instruction:   rewriteprobe.WarmInstruction,
		Input:         "stop spamming me right now",
		ContextBefore: "Hi Sam,",
		ContextAfter:  "Thanks!",
	}
	if runner.got != want {
		t.Errorf("runner got %+v, want %+v", runner.got, want)
	}
}

func TestRewriteAgentErrorIncludesPayload(t *testing.T) {
	runner := &fakeRunner{result: rewriteprobe.Result{
		Outcome: rewriteprobe.OutcomeFailure,
		Err:     rewriteprobe.ErrUnexpectedStatus,
		Payload: []byte(`{"error":{"message":"quota"}}`),
	}}

	a, err := NewRewriteAgent("Refine", "Refines text", rewriteprobe.RefineInstruction, runner)
	if err != nil {
		t.Fatalf("failed to create rewrite agent: %v", err)
	}

	ctx := &mockInvocationContext{Context: context.Background()}

	for _, err := range a.Run(ctx) {
		if err == nil || !strings.Contains(err.Error(), "quota") {
			t.Errorf("expected error with payload, got %v", err)
		}
	}
}

func TestNewRewriteAgentValidation(t *testing.T) {
	runner := &fakeRunner{}

	tests := []struct {
		name        string
		agentName   string
		description string
		runner      rewriteprobe.CaseRunner
		wantField   string
	}{
		{name: "valid", agentName: "A", description: "d", runner: runner},
		{name: "empty name", agentName: "", description: "d", runner: runner, wantField: "name"},
		{name: "empty description", agentName: "A", description: "", runner: runner, wantField: "description"},
		{name: "nil runner", agentName: "A", description: "d", runner: nil, wantField: "runner"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := NewRewriteAgent(tt.agentName, tt.description, "instruction", tt.runner)
			wantErr := tt.wantField != ""
			if (err != nil) != wantErr {
				t.Errorf("NewRewriteAgent() error = %v, wantErr %v", err, wantErr)
				return
			}
			if wantErr && !strings.Contains(err.Error(), "`"+tt.wantField+"`") {
				t.Errorf("expected error naming %q, got %v", tt.wantField, err)
			}
			if !wantErr && a == nil {
				t.Error("expected non-nil agent")
			}
		})
	}
}
