package rewriteprobe

import (
	"strings"
	"testing"
)

func TestBuildPrompt(t *testing.T) {
	tests := []struct {
		name     string
		c        Case
		expected string
	}{
		{
			name: "plain",
			c:    Case{Instruction: "Fix it.", Input: "me fail english yes"},
			expected: SystemDirective + "\n\n" +
				"Instruction: Fix it.\n" +
				"Text to Rewrite: me fail english yes",
		},
		{
			name: "empty fields pass through",
			c:    Case{},
			expected: SystemDirective + "\n\n" +
				"Instruction: \n" +
				"Text to Rewrite: ",
		},
		{
			name: "with context",
			c:    Case{Instruction: "Be polite.", Input: "give me that", ContextBefore: "Hi Sam,", ContextAfter: "Thanks!"},
			expected: SystemDirective + "\n\n" +
				"Context: Hi Sam, [TARGET] Thanks!\n" +
				"Task: Rewrite the [TARGET] text based on the following instructions.\n" +
				"Instruction: Be polite.\n" +
				"Text to Rewrite: give me that",
		},
		{
			name: "markup is not escaped",
			c:    Case{Instruction: "Keep <b> & \"quotes\"", Input: "a < b"},
			expected: SystemDirective + "\n\n" +
				"Instruction: Keep <b> & \"quotes\"\n" +
				"Text to Rewrite: a < b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BuildPrompt(tt.c)
			if err != nil {
				t.Fatalf("BuildPrompt() error = %v", err)
			}
			if got != tt.expected {
				t.Errorf("BuildPrompt() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestBuildPromptOrder(t *testing.T) {
	for _, c := range DefaultCases() {
		got, err := BuildPrompt(c)
		if err != nil {
			t.Fatalf("BuildPrompt(%s): %v", c.Name, err)
		}

		directive := strings.Index(got, SystemDirective)
		instruction := strings.Index(got, c.Instruction)
		input := strings.LastIndex(got, c.Input)

		if directive != 0 || instruction <= directive || input <= instruction {
			t.Errorf("%s: unexpected order directive=%d instruction=%d input=%d", c.Name, directive, instruction, input)
		}
	}
}
